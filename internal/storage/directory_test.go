package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

func testDataset() *internal.Dataset {
	return &internal.Dataset{
		Employees: []*internal.Employee{
			{ID: "EMP001", Name: "Dana Reyes", Department: "Engineering"},
			{ID: "EMP002", Name: "Sam Okafor", Department: "Finance"},
			{ID: "EMP003", Name: "Priya Nair", Department: "Engineering"},
		},
		WorkLogs: map[string][]*internal.WorkLogEntry{
			"EMP001": {{EmployeeID: "EMP001", AvgDailyHours: 8}},
		},
		Messages: map[string][]*internal.Message{
			"EMP001": {{ID: "MSG-EMP001-001", EmployeeID: "EMP001", Content: "hi"}},
		},
		Assessments: map[string][]*internal.AssessmentRecord{},
	}
}

func TestDirectoryLookups(t *testing.T) {
	d := NewDirectory(testDataset())

	emp, err := d.Employee("EMP002")
	assert.NoError(t, err)
	assert.Equal(t, "Sam Okafor", emp.Name)

	_, err = d.Employee("EMP999")
	assert.Error(t, err)

	all := d.Employees()
	assert.Len(t, all, 3)
	// Roster order is preserved.
	assert.Equal(t, "EMP001", all[0].ID)
	assert.Equal(t, "EMP003", all[2].ID)

	assert.Equal(t, []string{"Engineering", "Finance"}, d.Departments())
	assert.Len(t, d.WorkLogs("EMP001"), 1)
	assert.Len(t, d.Messages("EMP001"), 1)
	assert.Empty(t, d.SeedAssessments("EMP001"))
}

func TestDirectorySessions(t *testing.T) {
	d := NewDirectory(testDataset())
	emp, err := d.Employee("EMP001")
	assert.NoError(t, err)

	token := d.CreateSession(emp)
	assert.NotEmpty(t, token)

	got, err := d.SessionEmployee(token)
	assert.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	_, err = d.SessionEmployee("bogus")
	assert.Error(t, err)
}
