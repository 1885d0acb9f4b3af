package dashboard

import (
	"math"

	"github.com/pkg/errors"
	"gitlab.com/paramountdax-exchange/psp_dashboard/conv"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

func recentTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Amount: "500", Currency: "ETB", Status: model.PaymentSuccess, Description: "Payment to Merchant ABC", Date: "2024-01-15", Reference: "John-Doe-1754527913281"},
		{ID: "2", Amount: "250", Currency: "ETB", Status: model.PaymentPending, Description: "Transfer to John Doe", Date: "2024-01-14", Reference: "invalid-transaction-ref"},
		{ID: "3", Amount: "1000", Currency: "ETB", Status: model.PaymentFailed, Description: "Payment to Service XYZ", Date: "2024-01-13", Reference: "failed-payment-123"},
	}
}

func newUserDashboard() UserDashboard {
	return UserDashboard{
		WalletBalance:     "15750.50",
		Currency:          "ETB",
		TotalTransactions: 47,
		PendingPayments:   3,
		WeeklyUsage:       43,
		Transactions:      recentTransactions(),
	}
}

func newAdminDashboard() (AdminDashboard, error) {
	users := []ManagedUser{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", TotalPayments: "15420.50", IsActive: true, JoinDate: "2024-01-10"},
		{ID: "2", Name: "Bob Smith", Email: "bob@example.com", TotalPayments: "8750.25", IsActive: false, JoinDate: "2024-01-08"},
		{ID: "3", Name: "Carol Davis", Email: "carol@example.com", TotalPayments: "22100.75", IsActive: true, JoinDate: "2024-01-05"},
	}
	stats, err := adminStats(users)
	if err != nil {
		return AdminDashboard{}, err
	}
	return AdminDashboard{Stats: stats, Users: users}, nil
}

func adminStats(users []ManagedUser) (AdminStats, error) {
	stats := AdminStats{TotalUsers: len(users)}
	amounts := make([]string, 0, len(users))
	for _, u := range users {
		amounts = append(amounts, u.TotalPayments.String())
		if u.IsActive {
			stats.ActiveUsers++
		}
	}
	total, err := conv.SumAmounts(amounts...)
	if err != nil {
		return stats, errors.Wrap(err, "admin stats")
	}
	stats.TotalPayments = model.Amount(conv.FormatAmount(total))
	if stats.TotalUsers > 0 {
		stats.ActivationRate = int(math.Round(float64(stats.ActiveUsers) / float64(stats.TotalUsers) * 100))
	}
	return stats, nil
}

func newSuperAdminDashboard() SuperAdminDashboard {
	txs := recentTransactions()
	for i, name := range []string{"Jane Smith", "Mike Johnson", "Jane Smith"} {
		txs[i].User = name
	}
	return SuperAdminDashboard{
		System: SystemStats{
			TotalPayments:     "1250000",
			ActiveUsers:       2847,
			TotalTransactions: 15420,
			SuccessRate:       98.5,
		},
		Admins: []Administrator{
			{ID: "1", Name: "Jane Smith", Email: "admin@chapa.co", Role: model.RoleAdmin, IsActive: true, CreatedAt: "2024-01-01"},
			{ID: "2", Name: "Mike Johnson", Email: "superadmin@chapa.co", Role: model.RoleSuperAdmin, IsActive: true, CreatedAt: "2024-01-01"},
		},
		Transactions: txs,
	}
}
