package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/auth"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/config"
)

// NewRouter wires every route. Login and the question catalog are public;
// everything else sits behind the auth middleware.
func NewRouter(app App, cfg *config.Config, provider auth.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	r.POST("/api/login", PostLogin(app))
	r.GET("/api/assessment/questions", GetQuestions(app))

	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware(provider, cfg))
	{
		protected.GET("/employees", ListEmployees(app))
		protected.GET("/employees/:id", GetEmployee(app))
		protected.GET("/departments", GetDepartments(app))

		protected.POST("/assessment/submit", SubmitAssessment(app))
		protected.GET("/assessment/history/:id", GetAssessmentHistory(app))

		protected.GET("/work-log/:id", GetWorkLog(app))
		protected.GET("/sentiment/:id", GetSentiment(app))
		protected.GET("/alerts", GetAlerts(app))
		protected.GET("/dashboard/stats", GetDashboardStats(app))

		protected.POST("/hr-actions", PostHRAction(app))
		protected.GET("/hr-actions/:id", GetHRActions(app))
		protected.POST("/hr-actions/:id/complete", CompleteHRAction(app))

		protected.POST("/peer-reports", PostPeerReport(app))
		protected.GET("/peer-reports", GetPeerReports(app))
		protected.POST("/peer-reports/:id/resolve", ResolvePeerReport(app))
	}

	return r
}
