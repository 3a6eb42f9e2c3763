package burnout

import (
	"fmt"
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

type Recommendation struct {
	Action      string `json:"action"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type Alert struct {
	Type               string           `json:"type"`
	Severity           string           `json:"severity"`
	Title              string           `json:"title"`
	Message            string           `json:"message"`
	Details            []string         `json:"details,omitempty"`
	RecommendedActions []Recommendation `json:"recommended_actions,omitempty"`
	EmployeeID         string           `json:"employee_id,omitempty"`
	EmployeeName       string           `json:"employee_name,omitempty"`
	Department         string           `json:"department,omitempty"`
	Timestamp          time.Time        `json:"timestamp,omitempty"`
}

// GenerateAlerts produces HR alerts for an employee's burnout analysis:
// burnout risk at high/critical levels, suspected assessment faking, and
// declining communication sentiment.
func GenerateAlerts(emp *internal.Employee, res Result) []Alert {
	var alerts []Alert

	if res.RiskLevel == "high" || res.RiskLevel == "critical" {
		alerts = append(alerts, Alert{
			Type:     "burnout_risk",
			Severity: res.RiskLevel,
			Title:    fmt.Sprintf("High Burnout Risk: %s", emp.Name),
			Message: fmt.Sprintf("%s (%s, %s) has a burnout score of %.1f%%. Immediate attention recommended.",
				emp.Name, emp.Role, emp.Department, res.AdjustedScore),
			RecommendedActions: Recommendations(res),
		})
	}

	if res.Faking.IsSuspicious {
		alerts = append(alerts, Alert{
			Type:     "faking_detected",
			Severity: "warning",
			Title:    fmt.Sprintf("Possible Assessment Faking: %s", emp.Name),
			Message: fmt.Sprintf("The system has detected potential inconsistencies in %s's self-assessment. Confidence: %.0f%%",
				emp.Name, res.Faking.Confidence*100),
			Details: res.Faking.Reasons,
		})
	}

	if res.Sentiment.Trend == "declining" {
		alerts = append(alerts, Alert{
			Type:     "sentiment_decline",
			Severity: "moderate",
			Title:    fmt.Sprintf("Declining Sentiment: %s", emp.Name),
			Message: fmt.Sprintf("%s's communication sentiment has been declining over recent weeks. Current average polarity: %.2f",
				emp.Name, res.Sentiment.AveragePolarity),
		})
	}

	return alerts
}

// Recommendations derives HR intervention suggestions from the score
// breakdown.
func Recommendations(res Result) []Recommendation {
	var recs []Recommendation

	if res.Breakdown.WorkPattern.Score > 60 {
		recs = append(recs,
			Recommendation{
				Action:      "reduce_workload",
				Priority:    "high",
				Description: "Reduce weekly work hours. Employee shows excessive overtime and limited breaks.",
			},
			Recommendation{
				Action:      "enforce_time_off",
				Priority:    "high",
				Description: "Mandate minimum 2 days off in the next 2 weeks. PTO balance appears low.",
			})
	}

	if res.Breakdown.Sentiment.Score > 60 {
		recs = append(recs, Recommendation{
			Action:      "schedule_1on1",
			Priority:    "high",
			Description: "Schedule a private check-in with the employee to discuss workload and well-being.",
		})
	}

	if res.Breakdown.Assessment.Score > 70 {
		recs = append(recs, Recommendation{
			Action:      "counseling_referral",
			Priority:    "medium",
			Description: "Refer employee to the Employee Assistance Program (EAP) for professional support.",
		})
	}

	if res.Breakdown.Productivity.Score > 60 {
		recs = append(recs, Recommendation{
			Action:      "task_redistribution",
			Priority:    "medium",
			Description: "Redistribute some tasks to other team members to reduce cognitive overload.",
		})
	}

	if res.AdjustedScore >= RiskCriticalAt {
		recs = append(recs, Recommendation{
			Action:      "immediate_intervention",
			Priority:    "critical",
			Description: "This employee is at critical risk. Consider immediate workload reduction and mandatory time off.",
		})
	}

	return recs
}
