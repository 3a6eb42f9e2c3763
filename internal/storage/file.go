package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// FileStorage persists the mutable streams as JSON files. Writes are
// debounced through per-file save workers so bursts of submissions don't
// hammer the disk, and each save goes through an atomic rename.
type FileStorage struct {
	assessments     map[string][]*internal.AssessmentRecord // employeeID -> records (ascending by timestamp)
	actions         map[string]*internal.HRAction           // id -> action
	actionIndex     map[string][]*internal.HRAction         // employeeID -> actions
	reports         []*internal.PeerReport
	mu              sync.RWMutex
	assessmentsFile string
	actionsFile     string
	reportsFile     string
	saveAssessments chan struct{}
	saveActions     chan struct{}
	saveReports     chan struct{}
	shutdownChan    chan struct{}
	shutdownOnce    sync.Once
	saveDebounce    time.Duration
	logger          internal.Logger
}

func NewFileStorage(assessmentsFile, actionsFile, reportsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		assessments:     make(map[string][]*internal.AssessmentRecord),
		actions:         make(map[string]*internal.HRAction),
		actionIndex:     make(map[string][]*internal.HRAction),
		assessmentsFile: assessmentsFile,
		actionsFile:     actionsFile,
		reportsFile:     reportsFile,
		saveAssessments: make(chan struct{}, 1),
		saveActions:     make(chan struct{}, 1),
		saveReports:     make(chan struct{}, 1),
		shutdownChan:    make(chan struct{}),
		saveDebounce:    500 * time.Millisecond,
		logger:          logger,
	}

	if err := s.loadAssessments(); err != nil {
		logger.Errorf("storage: failed to load assessments: %v", err)
		return nil, err
	}
	if err := s.loadActions(); err != nil {
		logger.Errorf("storage: failed to load hr actions: %v", err)
		return nil, err
	}
	if err := s.loadReports(); err != nil {
		logger.Errorf("storage: failed to load peer reports: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveAssessments, "assessments", s.flushAssessments)
	go s.saveWorker(s.saveActions, "hr actions", s.flushActions)
	go s.saveWorker(s.saveReports, "peer reports", s.flushReports)

	return s, nil
}

func loadJSONFile[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var items []T
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *FileStorage) loadAssessments() error {
	records, err := loadJSONFile[*internal.AssessmentRecord](s.assessmentsFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.assessments[r.EmployeeID] = append(s.assessments[r.EmployeeID], r)
	}
	for id := range s.assessments {
		sort.Slice(s.assessments[id], func(i, j int) bool {
			return s.assessments[id][i].Timestamp.Before(s.assessments[id][j].Timestamp)
		})
	}
	return nil
}

func (s *FileStorage) loadActions() error {
	actions, err := loadJSONFile[*internal.HRAction](s.actionsFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.actions[a.ID] = a
		s.actionIndex[a.EmployeeID] = append(s.actionIndex[a.EmployeeID], a)
	}
	return nil
}

func (s *FileStorage) loadReports() error {
	reports, err := loadJSONFile[*internal.PeerReport](s.reportsFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = reports
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) flushAssessments() error {
	s.mu.RLock()
	records := make([]*internal.AssessmentRecord, 0, len(s.assessments))
	for _, list := range s.assessments {
		records = append(records, list...)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].EmployeeID != records[j].EmployeeID {
			return records[i].EmployeeID < records[j].EmployeeID
		}
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return atomicWriteFileJSON(s.assessmentsFile, records)
}

func (s *FileStorage) flushActions() error {
	s.mu.RLock()
	actions := make([]*internal.HRAction, 0, len(s.actions))
	for _, a := range s.actions {
		actions = append(actions, a)
	}
	s.mu.RUnlock()

	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })
	return atomicWriteFileJSON(s.actionsFile, actions)
}

func (s *FileStorage) flushReports() error {
	s.mu.RLock()
	reports := make([]*internal.PeerReport, len(s.reports))
	copy(reports, s.reports)
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.reportsFile, reports)
}

// saveWorker batches save signals so rapid writes collapse into one flush.
func (s *FileStorage) saveWorker(signal chan struct{}, name string, flush func() error) {
	timer := time.NewTimer(s.saveDebounce)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDebounce)
		case <-timer.C:
			if err := flush(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", name, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func signalSave(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// --- AssessmentRepository ---

func (s *FileStorage) SaveAssessment(ctx context.Context, rec *internal.AssessmentRecord) error {
	s.mu.Lock()
	s.assessments[rec.EmployeeID] = append(s.assessments[rec.EmployeeID], rec)
	s.mu.Unlock()

	signalSave(s.saveAssessments)
	return nil
}

func (s *FileStorage) ListAssessments(ctx context.Context, employeeID string) ([]internal.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.assessments[employeeID]
	out := make([]internal.AssessmentRecord, len(list))
	for i, r := range list {
		out[i] = *r
	}
	return out, nil
}

// --- ActionRepository ---

func (s *FileStorage) SaveAction(ctx context.Context, action *internal.HRAction) error {
	s.mu.Lock()
	s.actions[action.ID] = action
	s.actionIndex[action.EmployeeID] = append(s.actionIndex[action.EmployeeID], action)
	s.mu.Unlock()

	signalSave(s.saveActions)
	return nil
}

func (s *FileStorage) ListActions(ctx context.Context, employeeID string) ([]internal.HRAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.actionIndex[employeeID]
	out := make([]internal.HRAction, len(list))
	for i, a := range list {
		out[i] = *a
	}
	return out, nil
}

func (s *FileStorage) CountActions(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actions), nil
}

func (s *FileStorage) CompleteAction(ctx context.Context, actionID string, at time.Time) (*internal.HRAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.actions[actionID]
	if !ok {
		return nil, fmt.Errorf("storage: hr action %s not found", actionID)
	}
	a.Status = "completed"
	a.CompletedAt = &at

	signalSave(s.saveActions)
	copied := *a
	return &copied, nil
}

// --- PeerReportRepository ---

func (s *FileStorage) SaveReport(ctx context.Context, report *internal.PeerReport) error {
	s.mu.Lock()
	s.reports = append(s.reports, report)
	s.mu.Unlock()

	signalSave(s.saveReports)
	return nil
}

func (s *FileStorage) ListReports(ctx context.Context, status string) ([]internal.PeerReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]internal.PeerReport, 0, len(s.reports))
	for _, r := range s.reports {
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *FileStorage) CountReportsFor(ctx context.Context, employeeID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.reports {
		if r.ReportedEmployeeID == employeeID {
			count++
		}
	}
	return count, nil
}

func (s *FileStorage) ResolveReport(ctx context.Context, reportID, resolution string, at time.Time) (*internal.PeerReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reports {
		if r.ID == reportID {
			r.Status = "resolved"
			r.Resolution = resolution
			r.ResolvedAt = &at

			signalSave(s.saveReports)
			copied := *r
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("storage: peer report %s not found", reportID)
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	s.shutdownOnce.Do(func() { close(s.shutdownChan) })

	if err := s.flushAssessments(); err != nil {
		return err
	}
	if err := s.flushActions(); err != nil {
		return err
	}
	return s.flushReports()
}

var _ AssessmentRepository = (*FileStorage)(nil)
var _ ActionRepository = (*FileStorage)(nil)
var _ PeerReportRepository = (*FileStorage)(nil)
