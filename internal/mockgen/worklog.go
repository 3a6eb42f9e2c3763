package mockgen

import (
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

type band struct{ lo, hi float64 }

// lerp shifts band a toward band b by w in [0,1].
func lerp(a, b band, w float64) band {
	return band{
		lo: a.lo + (b.lo-a.lo)*w,
		hi: a.hi + (b.hi-a.hi)*w,
	}
}

// weekBands holds the sampling ranges for one employee-week. Healthy and
// burnout profiles use fixed disjoint ranges; the at-risk profile
// interpolates between a near-healthy baseline and a near-burnout target
// with weight (1 - severity), so its metrics drift toward burnout-like
// values as the week approaches the present.
type weekBands struct {
	dailyHours   band
	weekendHours band
	assigned     band
	completion   band // fraction of assigned tasks completed
	lateNights   band
	breaks       band
	absences     band
	ptoBalance   band
}

var (
	healthyBands = weekBands{
		dailyHours:   band{7.5, 8.5},
		weekendHours: band{0, 1.5},
		assigned:     band{8, 12},
		completion:   band{0.85, 1.0},
		lateNights:   band{0, 1},
		breaks:       band{3, 5},
		absences:     band{0, 1},
		ptoBalance:   band{10, 20},
	}
	burnoutBands = weekBands{
		dailyHours:   band{10, 13},
		weekendHours: band{4, 8},
		assigned:     band{10, 15},
		completion:   band{0.4, 0.7},
		lateNights:   band{3, 6},
		breaks:       band{0, 2},
		absences:     band{0, 3},
		ptoBalance:   band{0, 4},
	}
	// The at-risk endpoints: starts just shy of healthy, ends just shy of
	// full burnout.
	atRiskStart = weekBands{
		dailyHours:   band{7.5, 9},
		weekendHours: band{0, 2},
		assigned:     band{9, 13},
		completion:   band{0.8, 0.95},
		lateNights:   band{0, 1},
		breaks:       band{3, 5},
		absences:     band{0, 1},
		ptoBalance:   band{8, 15},
	}
	atRiskEnd = weekBands{
		dailyHours:   band{10.5, 12.5},
		weekendHours: band{3, 6},
		assigned:     band{10, 14},
		completion:   band{0.5, 0.75},
		lateNights:   band{2, 5},
		breaks:       band{1, 2},
		absences:     band{0, 2},
		ptoBalance:   band{2, 6},
	}
)

func lerpBands(a, b weekBands, w float64) weekBands {
	return weekBands{
		dailyHours:   lerp(a.dailyHours, b.dailyHours, w),
		weekendHours: lerp(a.weekendHours, b.weekendHours, w),
		assigned:     lerp(a.assigned, b.assigned, w),
		completion:   lerp(a.completion, b.completion, w),
		lateNights:   lerp(a.lateNights, b.lateNights, w),
		breaks:       lerp(a.breaks, b.breaks, w),
		absences:     lerp(a.absences, b.absences, w),
		ptoBalance:   lerp(a.ptoBalance, b.ptoBalance, w),
	}
}

func (g *Generator) bandsFor(profile internal.Profile, week int) weekBands {
	switch profile {
	case internal.ProfileBurnout:
		return burnoutBands
	case internal.ProfileAtRisk:
		return lerpBands(atRiskStart, atRiskEnd, 1-g.severity(week))
	default:
		return healthyBands
	}
}

// workLogs synthesizes one entry per trailing week for emp.
func (g *Generator) workLogs(emp *internal.Employee) []*internal.WorkLogEntry {
	logs := make([]*internal.WorkLogEntry, 0, g.opts.Weeks)
	for week := 0; week < g.opts.Weeks; week++ {
		b := g.bandsFor(emp.Profile, week)

		assigned := g.intBetween(int(b.assigned.lo), int(b.assigned.hi))
		completed := int(float64(assigned) * g.between(b.completion.lo, b.completion.hi))

		logs = append(logs, &internal.WorkLogEntry{
			EmployeeID:        emp.ID,
			WeekStart:         g.weekStart(week),
			AvgDailyHours:     round1(g.between(b.dailyHours.lo, b.dailyHours.hi)),
			WeekendHours:      round1(g.between(b.weekendHours.lo, b.weekendHours.hi)),
			TasksCompleted:    completed,
			TasksAssigned:     assigned,
			LateNightSessions: g.intBetween(int(b.lateNights.lo), int(b.lateNights.hi)),
			BreaksPerDay:      round1(g.between(b.breaks.lo, b.breaks.hi)),
			Absences:          g.intBetween(int(b.absences.lo), int(b.absences.hi)),
			PTOBalanceDays:    round1(g.between(b.ptoBalance.lo, b.ptoBalance.hi)),
		})
	}
	return logs
}
