package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/service"
)

func PostHRAction(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.HRActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		req.EmployeeID = strings.ToUpper(strings.TrimSpace(req.EmployeeID))
		if err := service.ValidateHRActionRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "HR action validation failed")
			return
		}

		emp, err := app.Directory().Employee(req.EmployeeID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		action, err := service.CreateAction(c.Request.Context(), app.ActionRepo(), emp, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save hr action")
			return
		}

		HandleSuccess(c, app.Logger(), action, map[string]any{
			"message": "HR action '" + action.ActionType + "' created for " + emp.Name + ".",
		})
	}
}

func GetHRActions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		empID := strings.ToUpper(c.Param("id"))
		emp, err := app.Directory().Employee(empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		actions, err := app.ActionRepo().ListActions(c.Request.Context(), empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch hr actions")
			return
		}

		HandleSuccess(c, app.Logger(), actions, map[string]any{
			"employee_id":   empID,
			"employee_name": emp.Name,
			"total":         len(actions),
		})
	}
}

func CompleteHRAction(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		actionID := c.Param("id")
		action, err := app.ActionRepo().CompleteAction(c.Request.Context(), actionID, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Action not found")
			return
		}
		HandleSuccess(c, app.Logger(), action, nil)
	}
}
