package storage

import (
	"context"
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// The repositories cover the three mutable streams; the generated dataset
// itself is immutable for a process lifetime and lives in the Directory.

type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, rec *internal.AssessmentRecord) error
	ListAssessments(ctx context.Context, employeeID string) ([]internal.AssessmentRecord, error)
}

type ActionRepository interface {
	SaveAction(ctx context.Context, action *internal.HRAction) error
	ListActions(ctx context.Context, employeeID string) ([]internal.HRAction, error)
	CountActions(ctx context.Context) (int, error)
	CompleteAction(ctx context.Context, actionID string, at time.Time) (*internal.HRAction, error)
}

type PeerReportRepository interface {
	SaveReport(ctx context.Context, report *internal.PeerReport) error
	ListReports(ctx context.Context, status string) ([]internal.PeerReport, error)
	CountReportsFor(ctx context.Context, employeeID string) (int, error)
	ResolveReport(ctx context.Context, reportID, resolution string, at time.Time) (*internal.PeerReport, error)
}
