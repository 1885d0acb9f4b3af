package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/pkg/errors"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    Role
		wantErr bool
	}{
		{name: "Success case. User role", arg: "user", want: RoleUser},
		{name: "Success case. Admin role", arg: "admin", want: RoleAdmin},
		{name: "Success case. Super admin role", arg: "super_admin", want: RoleSuperAdmin},
		{name: "Fail case. Empty role", arg: "", wantErr: true},
		{name: "Fail case. Upper case role", arg: "ADMIN", wantErr: true},
		{name: "Fail case. Unknown role", arg: "member", wantErr: true},
		{name: "Fail case. Role with spaces", arg: " user", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.arg)
			assert.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr {
				assert.Equal(t, true, errors.Is(err, ErrUnknownRole))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolePermissions(t *testing.T) {
	perms := RolePermissions()
	tests := []struct {
		name string
		role Role
		perm string
		want bool
	}{
		{name: "User can create payments", role: RoleUser, perm: PermPaymentCreate, want: true},
		{name: "User can verify transactions", role: RoleUser, perm: PermTransactionVerify, want: true},
		{name: "User cannot view banks", role: RoleUser, perm: PermBanksView, want: false},
		{name: "Admin can view banks", role: RoleAdmin, perm: PermBanksView, want: true},
		{name: "Admin cannot create transfers", role: RoleAdmin, perm: PermTransferCreate, want: false},
		{name: "Super admin can create transfers", role: RoleSuperAdmin, perm: PermTransferCreate, want: true},
		{name: "Super admin can manage admins", role: RoleSuperAdmin, perm: PermAdminManage, want: true},
		{name: "Super admin inherits payment create", role: RoleSuperAdmin, perm: PermPaymentCreate, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := false
			for _, p := range perms[tt.role] {
				if p == tt.perm {
					got = true
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, len(Roles), len(perms))
}
