package internal

import "time"

// Profile is the hidden ground-truth burnout category assigned at roster
// creation. It drives every synthesized signal but is never serialized, so
// consumers of the dataset only ever see the derived streams.
type Profile string

const (
	ProfileHealthy Profile = "healthy"
	ProfileAtRisk  Profile = "at_risk"
	ProfileBurnout Profile = "burnout"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Profile    Profile   `json:"-"`
	JoinDate   time.Time `json:"join_date"`
	ManagerID  string    `json:"manager_id"`
}

// WorkLogEntry is one employee-week of activity metrics.
type WorkLogEntry struct {
	EmployeeID        string    `json:"employee_id"`
	WeekStart         time.Time `json:"week_start"`
	AvgDailyHours     float64   `json:"avg_daily_hours"`
	WeekendHours      float64   `json:"weekend_hours"`
	TasksCompleted    int       `json:"tasks_completed"`
	TasksAssigned     int       `json:"tasks_assigned"`
	LateNightSessions int       `json:"late_night_sessions"`
	BreaksPerDay      float64   `json:"breaks_taken_per_day"`
	Absences          int       `json:"absences"`
	PTOBalanceDays    float64   `json:"pto_balance_days"`
}

type Message struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Timestamp  time.Time `json:"timestamp"`
	Channel    string    `json:"channel"`
	Content    string    `json:"content"`
}

// AssessmentRecord is one submitted questionnaire: answers keyed by question
// id (1-5 scale) and per-question response latency in seconds. IsFakeAttempt
// marks records whose answers were generated to look healthy despite the
// employee's true profile.
type AssessmentRecord struct {
	ID            string             `json:"id"`
	EmployeeID    string             `json:"employee_id"`
	Timestamp     time.Time          `json:"timestamp"`
	Answers       map[string]int     `json:"answers"`
	ResponseTimes map[string]float64 `json:"response_times"`
	IsFakeAttempt bool               `json:"is_fake_attempt"`
}

type AssessmentQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Dataset is the complete generated output: the roster plus the three
// derived streams keyed by employee id.
type Dataset struct {
	Employees   []*Employee                    `json:"employees"`
	WorkLogs    map[string][]*WorkLogEntry     `json:"work_logs"`
	Messages    map[string][]*Message          `json:"messages"`
	Assessments map[string][]*AssessmentRecord `json:"assessments"`
}

// HRAction is an intervention recorded by an HR manager for an employee.
type HRAction struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	ActionType   string     `json:"action_type"`
	Details      string     `json:"details"`
	HRManagerID  string     `json:"hr_manager_id"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// PeerReport is a concern raised by one employee about a co-worker.
type PeerReport struct {
	ID                   string     `json:"id"`
	ReporterID           string     `json:"reporter_id"`
	ReporterName         string     `json:"reporter_name"`
	ReportedEmployeeID   string     `json:"reported_employee_id"`
	ReportedEmployeeName string     `json:"reported_employee_name"`
	ReportedDepartment   string     `json:"reported_department"`
	ConcernType          string     `json:"concern_type"`
	Description          string     `json:"description"`
	Anonymous            bool       `json:"anonymous"`
	Status               string     `json:"status"`
	Resolution           string     `json:"resolution,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	ResolvedAt           *time.Time `json:"resolved_at,omitempty"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
