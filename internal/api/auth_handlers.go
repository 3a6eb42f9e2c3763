package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"` // "employee" or "hr"
}

// PostLogin authenticates by employee id and issues a session token. The
// only unauthenticated route besides the question catalog.
func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		empID := strings.ToUpper(strings.TrimSpace(req.EmployeeID))
		if empID == "" {
			HandleError(c, app.Logger(), errEmployeeIDRequired, 400, "Login failed")
			return
		}

		emp, err := app.Directory().Employee(empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Login failed")
			return
		}

		role := req.Role
		if role != "hr" {
			role = "employee"
		}

		token := app.Directory().CreateSession(emp)
		HandleSuccess(c, app.Logger(), emp, map[string]any{
			"token":    token,
			"login_as": role,
		})
	}
}
