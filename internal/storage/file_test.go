package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func newTestStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	logger := testLogger()
	s, err := NewFileStorage(
		filepath.Join(dir, "assessments.json"),
		filepath.Join(dir, "hr_actions.json"),
		filepath.Join(dir, "peer_reports.json"),
		logger,
	)
	assert.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func TestFileStorageAssessments(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	rec := &internal.AssessmentRecord{
		ID:            "asm-1",
		EmployeeID:    "EMP001",
		Timestamp:     time.Now().UTC(),
		Answers:       map[string]int{"q1": 3},
		ResponseTimes: map[string]float64{"q1": 4.5},
	}
	assert.NoError(t, s.SaveAssessment(ctx, rec))

	list, err := s.ListAssessments(ctx, "EMP001")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "asm-1", list[0].ID)

	other, err := s.ListAssessments(ctx, "EMP999")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestFileStorageActions(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	action := &internal.HRAction{
		ID:         "act-1",
		EmployeeID: "EMP001",
		ActionType: "reduce_workload",
		Status:     "active",
		CreatedAt:  time.Now().UTC(),
	}
	assert.NoError(t, s.SaveAction(ctx, action))

	list, err := s.ListActions(ctx, "EMP001")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "active", list[0].Status)

	total, err := s.CountActions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)

	at := time.Now().UTC()
	completed, err := s.CompleteAction(ctx, "act-1", at)
	assert.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	if assert.NotNil(t, completed.CompletedAt) {
		assert.Equal(t, at, *completed.CompletedAt)
	}

	_, err = s.CompleteAction(ctx, "missing", at)
	assert.Error(t, err)
}

func TestFileStorageReports(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	first := &internal.PeerReport{
		ID:                 "rep-1",
		ReporterID:         "EMP002",
		ReportedEmployeeID: "EMP001",
		ConcernType:        "workload",
		Status:             "pending",
		CreatedAt:          time.Now().UTC().Add(-time.Hour),
	}
	second := &internal.PeerReport{
		ID:                 "rep-2",
		ReporterID:         "EMP003",
		ReportedEmployeeID: "EMP001",
		ConcernType:        "behavior_change",
		Status:             "pending",
		CreatedAt:          time.Now().UTC(),
	}
	assert.NoError(t, s.SaveReport(ctx, first))
	assert.NoError(t, s.SaveReport(ctx, second))

	count, err := s.CountReportsFor(ctx, "EMP001")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	resolved, err := s.ResolveReport(ctx, "rep-1", "Spoke with the manager.", time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)
	assert.Equal(t, "Spoke with the manager.", resolved.Resolution)

	pending, err := s.ListReports(ctx, "pending")
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "rep-2", pending[0].ID)

	all, err := s.ListReports(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, "rep-2", all[0].ID)

	_, err = s.ResolveReport(ctx, "missing", "", time.Now().UTC())
	assert.Error(t, err)
}

func TestFileStoragePersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	logger := testLogger()
	paths := [3]string{
		filepath.Join(dir, "assessments.json"),
		filepath.Join(dir, "hr_actions.json"),
		filepath.Join(dir, "peer_reports.json"),
	}
	ctx := context.Background()

	s, err := NewFileStorage(paths[0], paths[1], paths[2], logger)
	assert.NoError(t, err)

	assert.NoError(t, s.SaveAssessment(ctx, &internal.AssessmentRecord{
		ID: "asm-1", EmployeeID: "EMP001", Timestamp: time.Now().UTC(),
		Answers: map[string]int{"q1": 2}, ResponseTimes: map[string]float64{"q1": 6.0},
	}))
	assert.NoError(t, s.SaveAction(ctx, &internal.HRAction{
		ID: "act-1", EmployeeID: "EMP001", ActionType: "time_off", Status: "active", CreatedAt: time.Now().UTC(),
	}))
	assert.NoError(t, s.SaveReport(ctx, &internal.PeerReport{
		ID: "rep-1", ReporterID: "EMP002", ReportedEmployeeID: "EMP001",
		ConcernType: "overwork", Status: "pending", CreatedAt: time.Now().UTC(),
	}))
	assert.NoError(t, s.Close())

	for _, p := range paths {
		info, statErr := os.Stat(p)
		assert.NoError(t, statErr)
		assert.Greater(t, info.Size(), int64(0))
	}

	reopened, err := NewFileStorage(paths[0], paths[1], paths[2], logger)
	assert.NoError(t, err)
	defer reopened.Close()

	assessments, err := reopened.ListAssessments(ctx, "EMP001")
	assert.NoError(t, err)
	assert.Len(t, assessments, 1)

	actions, err := reopened.ListActions(ctx, "EMP001")
	assert.NoError(t, err)
	assert.Len(t, actions, 1)

	count, err := reopened.CountReportsFor(ctx, "EMP001")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
