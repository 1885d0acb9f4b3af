package auth

import (
	"sync"

	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// Cache godoc
type Cache struct {
	// set of permissions for each role
	roles map[model.Role]map[string]bool
	lock  *sync.RWMutex
}

var cache *Cache

func init() {
	cache = &Cache{
		roles: make(map[model.Role]map[string]bool),
		lock:  &sync.RWMutex{},
	}
}

// HasPerm godoc
func HasPerm(role model.Role, perm string) (hasPerm bool) {
	cache.lock.RLock()
	if perms, ok := cache.roles[role]; ok {
		hasPerm = perms[perm]
	}
	cache.lock.RUnlock()
	return
}

// Permissions returns the aliases granted to a role
func Permissions(role model.Role) []string {
	cache.lock.RLock()
	defer cache.lock.RUnlock()
	perms := make([]string, 0, len(cache.roles[role]))
	for _, r := range model.RolePermissions()[role] {
		if cache.roles[role][r] {
			perms = append(perms, r)
		}
	}
	return perms
}

// IsLoaded is false until the first SetAll call
func IsLoaded() bool {
	cache.lock.RLock()
	defer cache.lock.RUnlock()
	return len(cache.roles) > 0
}

// SetAll replaces the whole cache
func SetAll(roles map[model.Role]map[string]bool) {
	cache.lock.Lock()
	cache.roles = roles
	cache.lock.Unlock()
}
