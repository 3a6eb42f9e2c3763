package api

import (
	"errors"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/service"
)

var errEmployeeIDRequired = errors.New("employee id is required")

// ListEmployees is the HR overview: every employee with their burnout score,
// optionally filtered by department or risk level, sorted worst first.
func ListEmployees(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		department := c.Query("department")
		riskLevel := c.Query("risk_level")

		summaries := make([]service.EmployeeSummary, 0)
		for _, emp := range app.Directory().Employees() {
			if department != "" && emp.Department != department {
				continue
			}

			res, err := service.AnalyzeEmployee(c.Request.Context(), app.Directory(), app.AssessmentRepo(), emp.ID)
			if err != nil {
				HandleError(c, app.Logger(), err, 500, "Failed to analyze employee")
				return
			}
			summary := service.Summarize(emp, res)
			if riskLevel != "" && summary.RiskLevel != riskLevel {
				continue
			}
			summaries = append(summaries, summary)
		}

		sort.Slice(summaries, func(i, j int) bool {
			return summaries[i].BurnoutScore > summaries[j].BurnoutScore
		})

		HandleSuccess(c, app.Logger(), summaries, map[string]any{"total": len(summaries)})
	}
}

// GetEmployee returns the detailed burnout analysis for one employee.
func GetEmployee(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		empID := strings.ToUpper(c.Param("id"))
		emp, err := app.Directory().Employee(empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		res, err := service.AnalyzeEmployee(c.Request.Context(), app.Directory(), app.AssessmentRepo(), empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to analyze employee")
			return
		}

		actions, err := app.ActionRepo().ListActions(c.Request.Context(), empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch hr actions")
			return
		}

		reportCount, err := app.PeerReportRepo().CountReportsFor(c.Request.Context(), empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to count peer reports")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{
			"employee":           emp,
			"burnout":            res,
			"hr_actions":         actions,
			"peer_reports_count": reportCount,
		}, nil)
	}
}

func GetDepartments(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Directory().Departments(), nil)
	}
}
