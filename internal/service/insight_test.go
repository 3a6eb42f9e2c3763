package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

func TestEmployeeAssessmentsMergesSeedAndSubmitted(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	dir := storage.NewDirectory(&internal.Dataset{
		Employees: []*internal.Employee{{ID: "EMP001", Name: "Dana Reyes"}},
		WorkLogs:  map[string][]*internal.WorkLogEntry{},
		Messages:  map[string][]*internal.Message{},
		Assessments: map[string][]*internal.AssessmentRecord{
			"EMP001": {
				{ID: "ASM-EMP001-01", EmployeeID: "EMP001", Timestamp: now.AddDate(0, 0, -14)},
				{ID: "ASM-EMP001-02", EmployeeID: "EMP001", Timestamp: now.AddDate(0, 0, -7)},
			},
		},
	})

	repo := &fakeAssessmentRepo{}
	assert.NoError(t, repo.SaveAssessment(context.Background(), &internal.AssessmentRecord{
		ID: "live-1", EmployeeID: "EMP001", Timestamp: now.AddDate(0, 0, -10),
	}))

	merged, err := EmployeeAssessments(context.Background(), dir, repo, "EMP001")
	assert.NoError(t, err)
	assert.Len(t, merged, 3)
	assert.Equal(t, "ASM-EMP001-01", merged[0].ID)
	assert.Equal(t, "live-1", merged[1].ID)
	assert.Equal(t, "ASM-EMP001-02", merged[2].ID)
}

func TestSummarizeHidesProfile(t *testing.T) {
	emp := &internal.Employee{
		ID: "EMP001", Name: "Dana Reyes", Email: "dana.reyes@nimbuscorp.io",
		Department: "Engineering", Role: "Engineer",
		Profile: internal.ProfileBurnout,
	}
	res, err := AnalyzeEmployee(context.Background(), storage.NewDirectory(&internal.Dataset{
		Employees:   []*internal.Employee{emp},
		WorkLogs:    map[string][]*internal.WorkLogEntry{},
		Messages:    map[string][]*internal.Message{},
		Assessments: map[string][]*internal.AssessmentRecord{},
	}), &fakeAssessmentRepo{}, "EMP001")
	assert.NoError(t, err)

	summary := Summarize(emp, res)
	assert.Equal(t, "EMP001", summary.ID)
	assert.Equal(t, "low", summary.RiskLevel)
	assert.Equal(t, 0.0, summary.BurnoutScore)
	assert.Nil(t, summary.LastAssessmentDate)
}
