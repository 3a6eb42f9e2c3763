package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// --- AssessmentRepository ---

func (p *PostgresStorage) SaveAssessment(ctx context.Context, rec *internal.AssessmentRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return err
	}
	responseTimes, err := json.Marshal(rec.ResponseTimes)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO assessments (id, employee_id, created_at, answers, response_times, is_fake_attempt) VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.EmployeeID, rec.Timestamp, answers, responseTimes, rec.IsFakeAttempt)
	if err != nil {
		p.logger.Errorf("failed to insert assessment: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListAssessments(ctx context.Context, employeeID string) ([]internal.AssessmentRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, employee_id, created_at, answers, response_times, is_fake_attempt FROM assessments WHERE employee_id = $1 ORDER BY created_at ASC`,
		employeeID)
	if err != nil {
		p.logger.Errorf("failed to query assessments: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []internal.AssessmentRecord
	for rows.Next() {
		var (
			r             internal.AssessmentRecord
			answers       []byte
			responseTimes []byte
		)
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Timestamp, &answers, &responseTimes, &r.IsFakeAttempt); err != nil {
			p.logger.Errorf("failed to scan assessment: %v", err)
			return nil, err
		}
		if err := json.Unmarshal(answers, &r.Answers); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(responseTimes, &r.ResponseTimes); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// --- ActionRepository ---

func (p *PostgresStorage) SaveAction(ctx context.Context, action *internal.HRAction) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO hr_actions (id, employee_id, employee_name, action_type, details, hr_manager_id, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		action.ID, action.EmployeeID, action.EmployeeName, action.ActionType, action.Details, action.HRManagerID, action.Status, action.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert hr action: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListActions(ctx context.Context, employeeID string) ([]internal.HRAction, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, employee_id, employee_name, action_type, details, hr_manager_id, status, created_at, completed_at FROM hr_actions WHERE employee_id = $1 ORDER BY created_at ASC`,
		employeeID)
	if err != nil {
		p.logger.Errorf("failed to query hr actions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var actions []internal.HRAction
	for rows.Next() {
		var a internal.HRAction
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.ActionType, &a.Details, &a.HRManagerID, &a.Status, &a.CreatedAt, &a.CompletedAt); err != nil {
			p.logger.Errorf("failed to scan hr action: %v", err)
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (p *PostgresStorage) CountActions(ctx context.Context) (int, error) {
	row := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hr_actions`)
	var count int
	if err := row.Scan(&count); err != nil {
		p.logger.Errorf("failed to count hr actions: %v", err)
		return 0, err
	}
	return count, nil
}

func (p *PostgresStorage) CompleteAction(ctx context.Context, actionID string, at time.Time) (*internal.HRAction, error) {
	row := p.pool.QueryRow(ctx,
		`UPDATE hr_actions SET status = 'completed', completed_at = $2 WHERE id = $1
		 RETURNING id, employee_id, employee_name, action_type, details, hr_manager_id, status, created_at, completed_at`,
		actionID, at)
	var a internal.HRAction
	if err := row.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.ActionType, &a.Details, &a.HRManagerID, &a.Status, &a.CreatedAt, &a.CompletedAt); err != nil {
		p.logger.Errorf("hr action not found: %v", err)
		return nil, err
	}
	return &a, nil
}

// --- PeerReportRepository ---

func (p *PostgresStorage) SaveReport(ctx context.Context, report *internal.PeerReport) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO peer_reports (id, reporter_id, reporter_name, reported_employee_id, reported_employee_name, reported_department, concern_type, description, anonymous, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		report.ID, report.ReporterID, report.ReporterName, report.ReportedEmployeeID, report.ReportedEmployeeName,
		report.ReportedDepartment, report.ConcernType, report.Description, report.Anonymous, report.Status, report.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert peer report: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListReports(ctx context.Context, status string) ([]internal.PeerReport, error) {
	query := `SELECT id, reporter_id, reporter_name, reported_employee_id, reported_employee_name, reported_department, concern_type, description, anonymous, status, resolution, created_at, resolved_at
		 FROM peer_reports`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query peer reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	var reports []internal.PeerReport
	for rows.Next() {
		var (
			r          internal.PeerReport
			resolution *string
		)
		if err := rows.Scan(&r.ID, &r.ReporterID, &r.ReporterName, &r.ReportedEmployeeID, &r.ReportedEmployeeName,
			&r.ReportedDepartment, &r.ConcernType, &r.Description, &r.Anonymous, &r.Status, &resolution, &r.CreatedAt, &r.ResolvedAt); err != nil {
			p.logger.Errorf("failed to scan peer report: %v", err)
			return nil, err
		}
		if resolution != nil {
			r.Resolution = *resolution
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (p *PostgresStorage) CountReportsFor(ctx context.Context, employeeID string) (int, error) {
	row := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM peer_reports WHERE reported_employee_id = $1`, employeeID)
	var count int
	if err := row.Scan(&count); err != nil {
		p.logger.Errorf("failed to count peer reports: %v", err)
		return 0, err
	}
	return count, nil
}

func (p *PostgresStorage) ResolveReport(ctx context.Context, reportID, resolution string, at time.Time) (*internal.PeerReport, error) {
	row := p.pool.QueryRow(ctx,
		`UPDATE peer_reports SET status = 'resolved', resolution = $2, resolved_at = $3 WHERE id = $1
		 RETURNING id, reporter_id, reporter_name, reported_employee_id, reported_employee_name, reported_department, concern_type, description, anonymous, status, resolution, created_at, resolved_at`,
		reportID, resolution, at)
	var r internal.PeerReport
	if err := row.Scan(&r.ID, &r.ReporterID, &r.ReporterName, &r.ReportedEmployeeID, &r.ReportedEmployeeName,
		&r.ReportedDepartment, &r.ConcernType, &r.Description, &r.Anonymous, &r.Status, &r.Resolution, &r.CreatedAt, &r.ResolvedAt); err != nil {
		p.logger.Errorf("peer report not found: %v", err)
		return nil, err
	}
	return &r, nil
}

// Close releases the connection pool.
func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- Compile-time assertions ---
var _ AssessmentRepository = (*PostgresStorage)(nil)
var _ ActionRepository = (*PostgresStorage)(nil)
var _ PeerReportRepository = (*PostgresStorage)(nil)
