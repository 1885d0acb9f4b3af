package actions

import (
	"strings"

	"github.com/gin-gonic/gin"
	cache "gitlab.com/paramountdax-exchange/psp_dashboard/cache/auth"
	"gitlab.com/paramountdax-exchange/psp_dashboard/service/auth_service"
)

// Restrict middleware
func (actions *Actions) Restrict() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actions.restrictByToken(c) {
			c.Next()
		}
	}
}

// HasPerm middleware
func (actions *Actions) HasPerm(alias string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actions.hasPerm(c, alias) {
			c.Next()
		}
	}
}

// RelayPerm guards a relay route with a permission only when auth is enabled.
// With auth disabled the relay stays open to any same origin caller.
func (actions *Actions) RelayPerm(alias string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !actions.cfg.Auth.Enabled {
			c.Next()
			return
		}
		if actions.restrictByToken(c) && actions.hasPerm(c, alias) {
			c.Next()
		}
	}
}

func (actions *Actions) restrictByToken(c *gin.Context) bool {
	log := getlog(c)
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		log.Warn().Str("section", "restrict").Msg("Missing token")
		abortWithError(c, Unauthorized, "Unauthorized")
		return false
	}
	claims, err := auth_service.ParseUserToken(token, actions.jwtTokenSecret)
	if err != nil {
		_ = c.Error(err)
		log.Warn().Err(err).Str("section", "restrict:token").Msg("Invalid token received")
		abortWithError(c, Unauthorized, "Unauthorized")
		return false
	}
	c.Set("auth_user_id", claims.UserID)
	c.Set("auth_role_alias", claims.Role)
	return true
}

func (actions *Actions) hasPerm(c *gin.Context, alias string) bool {
	role, ok := getRole(c)
	if ok && cache.HasPerm(role, alias) {
		return true
	}
	l := getlog(c)
	l.Debug().Str("section", "has_perm").
		Str("perm_alias", alias).
		Str("role_alias", string(role)).
		Msg("Invalid access to restricted resource")
	abortWithError(c, AccessDenied, "Access Denied")
	return false
}
