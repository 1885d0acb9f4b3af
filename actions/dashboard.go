package actions

import (
	"github.com/gin-gonic/gin"
	"gitlab.com/paramountdax-exchange/psp_dashboard/dashboard"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

type dashboardResponse struct {
	User      model.User          `json:"user"`
	Role      model.Role          `json:"role"`
	Dashboard dashboard.Dashboard `json:"dashboard"`
}

// GetDashboard godoc
// GET /dashboard
func (actions *Actions) GetDashboard(c *gin.Context) {
	role, _ := getRole(c)
	userID, _ := getUserID(c)
	user, ok := model.FindUserByID(userID)
	if !ok {
		abortWithError(c, NotFound, "User not found")
		return
	}
	view, err := dashboard.For(role)
	if err != nil {
		abortWithError(c, AccessDenied, "Access Denied")
		return
	}
	c.JSON(OK, dashboardResponse{User: user, Role: role, Dashboard: view})
}
