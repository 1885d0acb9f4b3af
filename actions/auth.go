package actions

import (
	"github.com/gin-gonic/gin"
	cache "gitlab.com/paramountdax-exchange/psp_dashboard/cache/auth"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
	"gitlab.com/paramountdax-exchange/psp_dashboard/service/auth_service"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token       string     `json:"token"`
	User        model.User `json:"user"`
	Permissions []string   `json:"permissions"`
}

// Login godoc
// POST /auth/login
//
// Authenticates one of the demo accounts and issues a session token.
func (actions *Actions) Login(c *gin.Context) {
	log := getlog(c)
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, BadRequest, "Email and password are required")
		return
	}

	user, ok := model.FindUserByEmail(req.Email)
	if !ok || req.Password != model.MockPassword {
		log.Info().Str("section", "auth").Msg("Invalid login attempt")
		abortWithError(c, Unauthorized, "Invalid email or password")
		return
	}

	token, err := auth_service.CreateUserToken(user, actions.jwtTokenSecret, actions.cfg.Auth.TokenTTLHours)
	if err != nil {
		log.Error().Err(err).Str("section", "auth").Msg("Unable to create token")
		abortWithError(c, ServerError, "Unable to create token")
		return
	}

	log.Info().Str("section", "auth").Str("user_id", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	c.JSON(OK, loginResponse{
		Token:       token,
		User:        user,
		Permissions: cache.Permissions(user.Role),
	})
}

// Logout godoc
// DELETE /auth/logout
//
// Tokens are stateless; logging out drops the browser session and its payment record.
func (actions *Actions) Logout(c *gin.Context) {
	if err := actions.clearSession(c); err != nil {
		l := getlog(c)
		l.Warn().Err(err).Str("section", "auth").Msg("Unable to clear session")
	}
	c.JSON(OK, map[string]string{"message": "Logged out"})
}

// Me godoc
// GET /auth/me
func (actions *Actions) Me(c *gin.Context) {
	userID, _ := getUserID(c)
	user, ok := model.FindUserByID(userID)
	if !ok {
		abortWithError(c, NotFound, "User not found")
		return
	}
	c.JSON(OK, loginResponse{User: user, Permissions: cache.Permissions(user.Role)})
}
