package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/service"
)

func PostPeerReport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.PeerReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		req.ReporterID = strings.ToUpper(strings.TrimSpace(req.ReporterID))
		req.ReportedEmployeeID = strings.ToUpper(strings.TrimSpace(req.ReportedEmployeeID))
		if err := service.ValidatePeerReportRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Peer report validation failed")
			return
		}

		reporter, err := app.Directory().Employee(req.ReporterID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Reporter not found")
			return
		}
		reported, err := app.Directory().Employee(req.ReportedEmployeeID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		report, err := service.CreateReport(c.Request.Context(), app.PeerReportRepo(), reporter, reported, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save peer report")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{"report_id": report.ID}, map[string]any{
			"message": "Your concern has been submitted to HR. Thank you for looking out for your colleague.",
		})
	}
}

func GetPeerReports(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		reports, err := app.PeerReportRepo().ListReports(c.Request.Context(), status)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch peer reports")
			return
		}
		HandleSuccess(c, app.Logger(), reports, map[string]any{"total": len(reports)})
	}
}

type resolveReportRequest struct {
	Resolution string `json:"resolution"`
}

func ResolvePeerReport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID := c.Param("id")

		var req resolveReportRequest
		_ = c.ShouldBindJSON(&req)
		if req.Resolution == "" {
			req.Resolution = "Addressed by HR"
		}

		report, err := app.PeerReportRepo().ResolveReport(c.Request.Context(), reportID, req.Resolution, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Report not found")
			return
		}
		HandleSuccess(c, app.Logger(), report, nil)
	}
}
