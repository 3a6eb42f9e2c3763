package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// Directory is the in-memory view of a generated dataset plus the session
// store. The dataset never mutates after construction; sessions do, so both
// are guarded by the same RWMutex for the session paths.
type Directory struct {
	mu          sync.RWMutex
	employees   map[string]*internal.Employee
	order       []string // roster order for stable listings
	workLogs    map[string][]*internal.WorkLogEntry
	messages    map[string][]*internal.Message
	assessments map[string][]*internal.AssessmentRecord
	sessions    map[string]*internal.Employee // token -> employee
}

func NewDirectory(ds *internal.Dataset) *Directory {
	d := &Directory{
		employees:   make(map[string]*internal.Employee, len(ds.Employees)),
		order:       make([]string, 0, len(ds.Employees)),
		workLogs:    ds.WorkLogs,
		messages:    ds.Messages,
		assessments: ds.Assessments,
		sessions:    make(map[string]*internal.Employee),
	}
	for _, e := range ds.Employees {
		d.employees[e.ID] = e
		d.order = append(d.order, e.ID)
	}
	return d
}

func (d *Directory) Employee(id string) (*internal.Employee, error) {
	e, ok := d.employees[id]
	if !ok {
		return nil, fmt.Errorf("storage: employee %s not found", id)
	}
	return e, nil
}

func (d *Directory) Employees() []*internal.Employee {
	out := make([]*internal.Employee, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.employees[id])
	}
	return out
}

func (d *Directory) Departments() []string {
	seen := make(map[string]struct{})
	for _, e := range d.employees {
		seen[e.Department] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for dept := range seen {
		out = append(out, dept)
	}
	sort.Strings(out)
	return out
}

func (d *Directory) WorkLogs(employeeID string) []*internal.WorkLogEntry {
	return d.workLogs[employeeID]
}

func (d *Directory) Messages(employeeID string) []*internal.Message {
	return d.messages[employeeID]
}

// SeedAssessments returns the generated assessment history; submissions made
// through the API live in the AssessmentRepository and are merged by the
// service layer.
func (d *Directory) SeedAssessments(employeeID string) []*internal.AssessmentRecord {
	return d.assessments[employeeID]
}

// CreateSession issues a bearer token for the employee.
func (d *Directory) CreateSession(emp *internal.Employee) string {
	token := uuid.NewString()
	d.mu.Lock()
	d.sessions[token] = emp
	d.mu.Unlock()
	return token
}

func (d *Directory) SessionEmployee(token string) (*internal.Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.sessions[token]
	if !ok {
		return nil, fmt.Errorf("storage: session not found")
	}
	return e, nil
}
