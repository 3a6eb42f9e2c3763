package service

import (
	"context"
	"sort"
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/burnout"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

// EmployeeSummary is the HR dashboard view of one employee: identity plus
// derived scores, never the hidden profile.
type EmployeeSummary struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Department         string     `json:"department"`
	Role               string     `json:"role"`
	JoinDate           time.Time  `json:"join_date"`
	BurnoutScore       float64    `json:"burnout_score"`
	RiskLevel          string     `json:"risk_level"`
	LastAssessmentDate *time.Time `json:"last_assessment_date"`
	FakingSuspected    bool       `json:"faking_suspected"`
}

// EmployeeAssessments merges the generated seed history with live
// submissions, ordered oldest first.
func EmployeeAssessments(ctx context.Context, dir *storage.Directory, repo storage.AssessmentRepository, employeeID string) ([]*internal.AssessmentRecord, error) {
	submitted, err := repo.ListAssessments(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	seed := dir.SeedAssessments(employeeID)
	merged := make([]*internal.AssessmentRecord, 0, len(seed)+len(submitted))
	merged = append(merged, seed...)
	for i := range submitted {
		merged = append(merged, &submitted[i])
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})
	return merged, nil
}

// AnalyzeEmployee runs the full burnout analysis over everything known
// about the employee.
func AnalyzeEmployee(ctx context.Context, dir *storage.Directory, repo storage.AssessmentRepository, employeeID string) (burnout.Result, error) {
	assessments, err := EmployeeAssessments(ctx, dir, repo, employeeID)
	if err != nil {
		return burnout.Result{}, err
	}
	return burnout.Score(employeeID, assessments, dir.WorkLogs(employeeID), dir.Messages(employeeID)), nil
}

// Summarize builds the dashboard summary for one employee.
func Summarize(emp *internal.Employee, res burnout.Result) EmployeeSummary {
	return EmployeeSummary{
		ID:                 emp.ID,
		Name:               emp.Name,
		Email:              emp.Email,
		Department:         emp.Department,
		Role:               emp.Role,
		JoinDate:           emp.JoinDate,
		BurnoutScore:       res.AdjustedScore,
		RiskLevel:          res.RiskLevel,
		LastAssessmentDate: res.LastAssessmentDate,
		FakingSuspected:    res.Faking.IsSuspicious,
	}
}
