package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/xid"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

// ErrSelfReport is returned when an employee tries to file a peer concern
// about themselves.
var ErrSelfReport = errors.New("you cannot report yourself, please use the assessment instead")

var validConcernTypes = map[string]bool{
	"workload":        true,
	"burnout":         true,
	"behavior_change": true,
	"health":          true,
	"other":           true,
}

type PeerReportRequest struct {
	ReporterID         string `json:"reporter_id" validate:"required"`
	ReportedEmployeeID string `json:"reported_employee_id" validate:"required"`
	ConcernType        string `json:"concern_type"`
	Description        string `json:"description" validate:"required"`
	Anonymous          bool   `json:"anonymous"`
}

func ValidatePeerReportRequest(req *PeerReportRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if req.ReporterID == req.ReportedEmployeeID {
		return ErrSelfReport
	}
	return nil
}

func CreateReport(ctx context.Context, repo storage.PeerReportRepository, reporter, reported *internal.Employee, req *PeerReportRequest) (*internal.PeerReport, error) {
	concernType := req.ConcernType
	if !validConcernTypes[concernType] {
		concernType = "other"
	}

	reporterID, reporterName := reporter.ID, reporter.Name
	if req.Anonymous {
		reporterID, reporterName = "anonymous", "Anonymous"
	}

	report := &internal.PeerReport{
		ID:                   xid.New().String(),
		ReporterID:           reporterID,
		ReporterName:         reporterName,
		ReportedEmployeeID:   reported.ID,
		ReportedEmployeeName: reported.Name,
		ReportedDepartment:   reported.Department,
		ConcernType:          concernType,
		Description:          req.Description,
		Anonymous:            req.Anonymous,
		Status:               "pending",
		CreatedAt:            time.Now(),
	}
	if err := repo.SaveReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
