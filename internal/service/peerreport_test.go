package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

type fakeReportRepo struct {
	saved []*internal.PeerReport
}

func (r *fakeReportRepo) SaveReport(_ context.Context, report *internal.PeerReport) error {
	r.saved = append(r.saved, report)
	return nil
}

func (r *fakeReportRepo) ListReports(_ context.Context, _ string) ([]internal.PeerReport, error) {
	return nil, nil
}

func (r *fakeReportRepo) CountReportsFor(_ context.Context, _ string) (int, error) {
	return len(r.saved), nil
}

func (r *fakeReportRepo) ResolveReport(_ context.Context, _, _ string, _ time.Time) (*internal.PeerReport, error) {
	return nil, nil
}

func TestValidatePeerReportRequest(t *testing.T) {
	valid := &PeerReportRequest{
		ReporterID:         "EMP001",
		ReportedEmployeeID: "EMP002",
		ConcernType:        "workload",
		Description:        "Working every weekend for a month.",
	}
	assert.NoError(t, ValidatePeerReportRequest(valid))

	self := &PeerReportRequest{
		ReporterID:         "EMP001",
		ReportedEmployeeID: "EMP001",
		Description:        "I'm worried about myself.",
	}
	assert.ErrorIs(t, ValidatePeerReportRequest(self), ErrSelfReport)

	noDescription := &PeerReportRequest{
		ReporterID:         "EMP001",
		ReportedEmployeeID: "EMP002",
	}
	assert.Error(t, ValidatePeerReportRequest(noDescription))
}

func TestCreateReport(t *testing.T) {
	repo := &fakeReportRepo{}
	reporter := &internal.Employee{ID: "EMP001", Name: "Dana Reyes"}
	reported := &internal.Employee{ID: "EMP002", Name: "Sam Okafor", Department: "Finance"}

	report, err := CreateReport(context.Background(), repo, reporter, reported, &PeerReportRequest{
		ReporterID:         "EMP001",
		ReportedEmployeeID: "EMP002",
		ConcernType:        "made_up_type",
		Description:        "Seems exhausted in every meeting.",
	})
	assert.NoError(t, err)
	assert.Equal(t, "other", report.ConcernType, "unknown concern types fall back to other")
	assert.Equal(t, "Dana Reyes", report.ReporterName)
	assert.Equal(t, "pending", report.Status)

	anon, err := CreateReport(context.Background(), repo, reporter, reported, &PeerReportRequest{
		ReporterID:         "EMP001",
		ReportedEmployeeID: "EMP002",
		ConcernType:        "burnout",
		Description:        "Messages at 2am most nights.",
		Anonymous:          true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "anonymous", anon.ReporterID)
	assert.Equal(t, "Anonymous", anon.ReporterName)
	assert.Len(t, repo.saved, 2)
}
