package actions

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gitlab.com/paramountdax-exchange/psp_dashboard/httputils"
	"gitlab.com/paramountdax-exchange/psp_dashboard/logger"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// Ping godoc
func Ping(c *gin.Context) {
	c.JSON(OK, "pong")
}

func abortWithError(c *gin.Context, code int, message string) {
	l := getlog(c)
	l.Debug().Int("resp_code", code).Msg(message)
	c.AbortWithStatusJSON(code, httputils.RequestError{Error: message})
}

func getUserID(c *gin.Context) (string, bool) {
	iUserID, ok := c.Get("auth_user_id")
	if !ok {
		return "", false
	}
	return iUserID.(string), true
}

func getRole(c *gin.Context) (model.Role, bool) {
	iRole, ok := c.Get("auth_role_alias")
	if !ok {
		return "", false
	}
	return iRole.(model.Role), true
}

func getlog(c *gin.Context) zerolog.Logger {
	return logger.GetLogger(c)
}
