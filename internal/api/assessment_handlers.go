package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/burnout"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/service"
)

// GetQuestions serves the static questionnaire catalog.
func GetQuestions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), internal.AssessmentQuestions, map[string]any{
			"scale":           internal.AnswerScale,
			"total_questions": len(internal.AssessmentQuestions),
		})
	}
}

// SubmitAssessment stores a questionnaire submission and returns the updated
// burnout analysis, including any alerts the submission triggered.
func SubmitAssessment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SubmitAssessmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		// Employees usually submit for themselves; HR tooling may submit on
		// someone's behalf by setting employee_id explicitly.
		if strings.TrimSpace(req.EmployeeID) == "" {
			req.EmployeeID = currentEmployee(c).ID
		}

		if err := service.ValidateSubmitAssessment(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		empID := strings.ToUpper(strings.TrimSpace(req.EmployeeID))
		emp, err := app.Directory().Employee(empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		rec, err := service.SubmitAssessment(c.Request.Context(), app.AssessmentRepo(), emp, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save assessment")
			return
		}

		res, err := service.AnalyzeEmployee(c.Request.Context(), app.Directory(), app.AssessmentRepo(), empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to analyze employee")
			return
		}
		alerts := burnout.GenerateAlerts(emp, res)

		HandleSuccess(c, app.Logger(), gin.H{
			"assessment_id":    rec.ID,
			"burnout_score":    res.AdjustedScore,
			"risk_level":       res.RiskLevel,
			"breakdown":        res.Breakdown,
			"faking_detection": res.Faking,
			"alerts_generated": len(alerts),
		}, map[string]any{
			"message": fmt.Sprintf("Assessment submitted. Your burnout score is %.1f%%.", res.AdjustedScore),
		})
	}
}

// GetAssessmentHistory lists per-assessment scores for one employee.
func GetAssessmentHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		empID := strings.ToUpper(c.Param("id"))
		if _, err := app.Directory().Employee(empID); err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		assessments, err := service.EmployeeAssessments(c.Request.Context(), app.Directory(), app.AssessmentRepo(), empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch assessments")
			return
		}

		history := make([]gin.H, 0, len(assessments))
		for _, a := range assessments {
			history = append(history, gin.H{
				"id":        a.ID,
				"timestamp": a.Timestamp,
				"score":     burnout.AssessmentScore(a.Answers),
			})
		}

		HandleSuccess(c, app.Logger(), history, map[string]any{
			"employee_id": empID,
			"total":       len(history),
		})
	}
}
