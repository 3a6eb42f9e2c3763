package api

import (
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Directory() *storage.Directory
	AssessmentRepo() storage.AssessmentRepository
	ActionRepo() storage.ActionRepository
	PeerReportRepo() storage.PeerReportRepository
}
