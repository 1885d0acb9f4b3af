package model

import "github.com/pkg/errors"

// Role of a dashboard user. The set is closed: any other value is rejected by ParseRole.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Roles lists every valid role
var Roles = []Role{RoleUser, RoleAdmin, RoleSuperAdmin}

// ErrUnknownRole is returned for any string outside the role set
var ErrUnknownRole = errors.New("unknown role")

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", errors.Wrapf(ErrUnknownRole, "%q", s)
	}
	return r, nil
}

// Permission aliases checked by the HasPerm middleware
const (
	PermPaymentCreate     = "payment.create"
	PermTransactionVerify = "transaction.verify"
	PermBanksView         = "banks.view"
	PermTransferCreate    = "transfer.create"
	PermAdminManage       = "admin.manage"
)

// RolePermissions is the static permission table. Every role inherits the permissions of the roles below it.
func RolePermissions() map[Role][]string {
	user := []string{PermPaymentCreate, PermTransactionVerify}
	admin := append(append([]string{}, user...), PermBanksView)
	superAdmin := append(append([]string{}, admin...), PermTransferCreate, PermAdminManage)
	return map[Role][]string{
		RoleUser:       user,
		RoleAdmin:      admin,
		RoleSuperAdmin: superAdmin,
	}
}
