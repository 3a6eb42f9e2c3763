package api

import (
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/burnout"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/service"
)

// GetWorkLog returns an employee's weekly work logs plus recent aggregates.
func GetWorkLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		empID := strings.ToUpper(c.Param("id"))
		if _, err := app.Directory().Employee(empID); err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		logs := app.Directory().WorkLogs(empID)

		var avgHours, avgWeekend, avgTasks, avgLateNights float64
		if len(logs) > 0 {
			recent := logs
			if len(logs) > 4 {
				recent = logs[len(logs)-4:]
			}
			for _, l := range recent {
				avgHours += l.AvgDailyHours
				avgWeekend += l.WeekendHours
				avgTasks += float64(l.TasksCompleted)
				avgLateNights += float64(l.LateNightSessions)
			}
			n := float64(len(recent))
			avgHours, avgWeekend, avgTasks, avgLateNights = avgHours/n, avgWeekend/n, avgTasks/n, avgLateNights/n
		}

		HandleSuccess(c, app.Logger(), logs, map[string]any{
			"employee_id": empID,
			"summary": gin.H{
				"avg_daily_hours_recent":     avgHours,
				"avg_weekend_hours_recent":   avgWeekend,
				"avg_tasks_completed_recent": avgTasks,
				"avg_late_nights_recent":     avgLateNights,
				"total_weeks_tracked":        len(logs),
			},
		})
	}
}

// GetSentiment returns the sentiment analysis of an employee's messages.
func GetSentiment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		empID := strings.ToUpper(c.Param("id"))
		emp, err := app.Directory().Employee(empID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Employee not found")
			return
		}

		analysis := burnout.AnalyzeMessages(app.Directory().Messages(empID))
		HandleSuccess(c, app.Logger(), analysis, map[string]any{
			"employee_id":   empID,
			"employee_name": emp.Name,
		})
	}
}

var alertSeverityOrder = map[string]int{
	"critical": 0,
	"high":     1,
	"warning":  2,
	"moderate": 3,
}

// GetAlerts generates HR alerts across the whole roster, severity first.
func GetAlerts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		allAlerts := make([]burnout.Alert, 0)

		for _, emp := range app.Directory().Employees() {
			res, err := service.AnalyzeEmployee(c.Request.Context(), app.Directory(), app.AssessmentRepo(), emp.ID)
			if err != nil {
				HandleError(c, app.Logger(), err, 500, "Failed to analyze employee")
				return
			}
			for _, alert := range burnout.GenerateAlerts(emp, res) {
				alert.EmployeeID = emp.ID
				alert.EmployeeName = emp.Name
				alert.Department = emp.Department
				alert.Timestamp = now
				allAlerts = append(allAlerts, alert)
			}
		}

		sort.SliceStable(allAlerts, func(i, j int) bool {
			oi, ok := alertSeverityOrder[allAlerts[i].Severity]
			if !ok {
				oi = 4
			}
			oj, ok := alertSeverityOrder[allAlerts[j].Severity]
			if !ok {
				oj = 4
			}
			return oi < oj
		})

		HandleSuccess(c, app.Logger(), allAlerts, map[string]any{"total": len(allAlerts)})
	}
}

type departmentStats struct {
	Total      int     `json:"total"`
	TotalScore float64 `json:"total_score"`
	AvgScore   float64 `json:"avg_score"`
	HighRisk   int     `json:"high_risk"`
}

// GetDashboardStats aggregates roster-wide numbers for the HR dashboard.
func GetDashboardStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		riskCounts := map[string]int{"low": 0, "moderate": 0, "high": 0, "critical": 0}
		deptStats := make(map[string]*departmentStats)
		var totalScore float64

		employees := app.Directory().Employees()
		for _, emp := range employees {
			res, err := service.AnalyzeEmployee(c.Request.Context(), app.Directory(), app.AssessmentRepo(), emp.ID)
			if err != nil {
				HandleError(c, app.Logger(), err, 500, "Failed to analyze employee")
				return
			}

			riskCounts[res.RiskLevel]++
			totalScore += res.AdjustedScore

			ds := deptStats[emp.Department]
			if ds == nil {
				ds = &departmentStats{}
				deptStats[emp.Department] = ds
			}
			ds.Total++
			ds.TotalScore += res.AdjustedScore
			if res.RiskLevel == "high" || res.RiskLevel == "critical" {
				ds.HighRisk++
			}
		}

		for _, ds := range deptStats {
			if ds.Total > 0 {
				ds.AvgScore = float64(int(ds.TotalScore/float64(ds.Total)*10+0.5)) / 10
			}
		}

		avgScore := 0.0
		if len(employees) > 0 {
			avgScore = float64(int(totalScore/float64(len(employees))*10+0.5)) / 10
		}

		pendingReports, err := app.PeerReportRepo().ListReports(c.Request.Context(), "pending")
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch peer reports")
			return
		}
		allReports, err := app.PeerReportRepo().ListReports(c.Request.Context(), "")
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch peer reports")
			return
		}
		totalActions, err := app.ActionRepo().CountActions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to count hr actions")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{
			"total_employees":         len(employees),
			"avg_burnout_score":       avgScore,
			"risk_distribution":       riskCounts,
			"at_risk_count":           riskCounts["high"] + riskCounts["critical"],
			"department_stats":        deptStats,
			"departments":             app.Directory().Departments(),
			"total_hr_actions":        totalActions,
			"total_peer_reports":      len(allReports),
			"unresolved_peer_reports": len(pendingReports),
		}, nil)
	}
}
