// Package dashboard holds the static views shown to each role.
//
// Dashboard is a closed set: only this package can implement it, and For is the
// single place that maps a role onto its view.
package dashboard

import (
	"github.com/pkg/errors"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// Dashboard is implemented by UserDashboard, AdminDashboard and SuperAdminDashboard only
type Dashboard interface {
	Role() model.Role
	sealed()
}

// For returns the dashboard of a role. Unknown roles are an error, never a default view.
func For(role model.Role) (Dashboard, error) {
	switch role {
	case model.RoleUser:
		return newUserDashboard(), nil
	case model.RoleAdmin:
		return newAdminDashboard()
	case model.RoleSuperAdmin:
		return newSuperAdminDashboard(), nil
	}
	return nil, errors.Wrapf(model.ErrUnknownRole, "no dashboard for %q", role)
}

// Transaction as listed on the dashboards
type Transaction struct {
	ID          string              `json:"id"`
	User        string              `json:"user,omitempty"`
	Amount      model.Amount        `json:"amount"`
	Currency    string              `json:"currency"`
	Status      model.PaymentStatus `json:"status"`
	Description string              `json:"description"`
	Date        string              `json:"date"`
	Reference   string              `json:"reference"`
}

// UserDashboard wallet overview of a regular user
type UserDashboard struct {
	WalletBalance     model.Amount  `json:"wallet_balance"`
	Currency          string        `json:"currency"`
	TotalTransactions int           `json:"total_transactions"`
	PendingPayments   int           `json:"pending_payments"`
	WeeklyUsage       int           `json:"weekly_usage"`
	Transactions      []Transaction `json:"transactions"`
}

func (UserDashboard) Role() model.Role { return model.RoleUser }
func (UserDashboard) sealed()          {}

// ManagedUser is a customer account shown to admins
type ManagedUser struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	TotalPayments model.Amount `json:"total_payments"`
	IsActive      bool         `json:"is_active"`
	JoinDate      string       `json:"join_date"`
}

// AdminStats summary cards of the admin view
type AdminStats struct {
	TotalUsers     int          `json:"total_users"`
	ActiveUsers    int          `json:"active_users"`
	TotalPayments  model.Amount `json:"total_payments"`
	ActivationRate int          `json:"activation_rate"`
}

// AdminDashboard user management view
type AdminDashboard struct {
	Stats AdminStats    `json:"stats"`
	Users []ManagedUser `json:"users"`
}

func (AdminDashboard) Role() model.Role { return model.RoleAdmin }
func (AdminDashboard) sealed()          {}

// Administrator listed on the super admin view
type Administrator struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt string     `json:"created_at"`
}

// SystemStats platform wide figures
type SystemStats struct {
	TotalPayments     model.Amount `json:"total_payments"`
	ActiveUsers       int          `json:"active_users"`
	TotalTransactions int          `json:"total_transactions"`
	SuccessRate       float64      `json:"success_rate"`
}

// SuperAdminDashboard platform overview
type SuperAdminDashboard struct {
	System       SystemStats     `json:"system"`
	Admins       []Administrator `json:"admins"`
	Transactions []Transaction   `json:"transactions"`
}

func (SuperAdminDashboard) Role() model.Role { return model.RoleSuperAdmin }
func (SuperAdminDashboard) sealed()          {}
