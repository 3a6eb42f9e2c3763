package mockgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

func avgDailyHours(logs []*internal.WorkLogEntry) float64 {
	total := 0.0
	for _, l := range logs {
		total += l.AvgDailyHours
	}
	return total / float64(len(logs))
}

func TestWorkLogsSeparateProfiles(t *testing.T) {
	ds, err := testGenerator(17).Generate(30)
	assert.NoError(t, err)

	for _, emp := range ds.Employees {
		logs := ds.WorkLogs[emp.ID]
		switch emp.Profile {
		case internal.ProfileHealthy:
			for _, l := range logs {
				assert.LessOrEqual(t, l.AvgDailyHours, 8.5)
				assert.LessOrEqual(t, l.WeekendHours, 1.5)
				assert.LessOrEqual(t, l.LateNightSessions, 1)
			}
		case internal.ProfileBurnout:
			for _, l := range logs {
				assert.GreaterOrEqual(t, l.AvgDailyHours, 10.0)
				assert.GreaterOrEqual(t, l.WeekendHours, 4.0)
				assert.GreaterOrEqual(t, l.LateNightSessions, 3)
			}
		}
	}
}

func TestWorkLogTaskCountsAreConsistent(t *testing.T) {
	ds, err := testGenerator(17).Generate(20)
	assert.NoError(t, err)

	for _, logs := range ds.WorkLogs {
		for _, l := range logs {
			assert.Greater(t, l.TasksAssigned, 0)
			assert.GreaterOrEqual(t, l.TasksCompleted, 0)
			assert.LessOrEqual(t, l.TasksCompleted, l.TasksAssigned)
		}
	}
}

// At-risk metrics must drift toward burnout as severity falls: the last weeks
// of the window always look worse than the first.
func TestAtRiskMetricsDrift(t *testing.T) {
	ds, err := testGenerator(29).Generate(40)
	assert.NoError(t, err)

	checked := 0
	for _, emp := range ds.Employees {
		if emp.Profile != internal.ProfileAtRisk {
			continue
		}
		checked++
		logs := ds.WorkLogs[emp.ID]
		early := avgDailyHours(logs[:2])
		late := avgDailyHours(logs[len(logs)-2:])
		assert.Greater(t, late, early, "employee %s", emp.ID)
	}
	assert.Greater(t, checked, 0)
}

func TestWorkLogWeeksArePastAndOrdered(t *testing.T) {
	ds, err := testGenerator(29).Generate(10)
	assert.NoError(t, err)

	for _, logs := range ds.WorkLogs {
		for i, l := range logs {
			assert.True(t, l.WeekStart.Before(testNow))
			if i > 0 {
				assert.True(t, logs[i-1].WeekStart.Before(l.WeekStart))
			}
		}
	}
}
