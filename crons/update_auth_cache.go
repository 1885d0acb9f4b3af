package crons

import (
	"github.com/rs/zerolog/log"
	cache "gitlab.com/paramountdax-exchange/psp_dashboard/cache/auth"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// CronUpdateAuthCache godoc
func CronUpdateAuthCache() {
	roles := formatRolePermissions(model.RolePermissions())
	cache.SetAll(roles)
	log.Debug().Str("section", "cron:auth_cache").Int("count", len(roles)).Msg("Auth cache updated")
}

func formatRolePermissions(rolePermissions map[model.Role][]string) map[model.Role]map[string]bool {
	roles := make(map[model.Role]map[string]bool, len(rolePermissions))
	for role, perms := range rolePermissions {
		if _, ok := roles[role]; !ok {
			roles[role] = make(map[string]bool)
		}
		for _, perm := range perms {
			roles[role][perm] = true
		}
	}
	return roles
}
