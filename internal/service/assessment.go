package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/xid"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

var validate = validator.New()

type SubmitAssessmentRequest struct {
	EmployeeID    string             `json:"employee_id" validate:"required"`
	Answers       map[string]int     `json:"answers" validate:"required"`
	ResponseTimes map[string]float64 `json:"response_times"`
}

// ValidateSubmitAssessment checks the request shape, answer ranges and
// questionnaire completeness.
func ValidateSubmitAssessment(req *SubmitAssessmentRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	for qid, value := range req.Answers {
		if internal.QuestionByID(qid) == nil {
			return fmt.Errorf("unknown question id %q", qid)
		}
		if value < 1 || value > 5 {
			return fmt.Errorf("answer for %s must be an integer between 1 and 5", qid)
		}
	}

	var missing []string
	for _, q := range internal.AssessmentQuestions {
		if _, ok := req.Answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing answers for: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SubmitAssessment stores a live questionnaire submission. Unlike generated
// records, submissions are never flagged as fake attempts at write time;
// the detector judges them on read.
func SubmitAssessment(ctx context.Context, repo storage.AssessmentRepository, emp *internal.Employee, req *SubmitAssessmentRequest) (*internal.AssessmentRecord, error) {
	rec := &internal.AssessmentRecord{
		ID:            xid.New().String(),
		EmployeeID:    emp.ID,
		Timestamp:     time.Now(),
		Answers:       req.Answers,
		ResponseTimes: req.ResponseTimes,
		IsFakeAttempt: false,
	}
	if err := repo.SaveAssessment(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
