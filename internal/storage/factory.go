package storage

import (
	"io"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// Repositories bundles the three mutable-stream repositories behind one
// backend plus its closer.
type Repositories struct {
	Assessments AssessmentRepository
	Actions     ActionRepository
	PeerReports PeerReportRepository
	Closer      io.Closer
}

func NewFileRepositories(assessmentsFile, actionsFile, reportsFile string, logger internal.Logger) (*Repositories, error) {
	s, err := NewFileStorage(assessmentsFile, actionsFile, reportsFile, logger)
	if err != nil {
		return nil, err
	}
	return &Repositories{Assessments: s, Actions: s, PeerReports: s, Closer: s}, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (*Repositories, error) {
	s, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, err
	}
	return &Repositories{Assessments: s, Actions: s, PeerReports: s, Closer: s}, nil
}
