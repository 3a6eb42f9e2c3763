// Package mockgen synthesizes a self-consistent mock dataset for the burnout
// prediction demo: a roster of employees with hidden burnout profiles, plus
// weekly work logs, chat messages and self-assessments whose statistical
// signatures reflect those profiles. A small fraction of burnout-profile
// employees submit "fake attempts" (healthy-looking answers with anomalous
// response timing) for downstream anomaly detection to catch.
package mockgen

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// ErrInvalidCount is returned by Generate for employee counts below one.
var ErrInvalidCount = errors.New("mockgen: employee count must be at least 1")

const (
	defaultWeeks = 12

	// Weekly probability that an employee submits an assessment.
	assessmentSubmitProb = 0.7
	// Probability that a burnout-profile employee's submission is a fake
	// attempt with healthy-looking answers.
	fakeAttemptProb = 0.1
)

// Options tune a Generator. Zero values fall back to defaults.
type Options struct {
	// Weeks of trailing history to synthesize per employee.
	Weeks int
	// Now anchors the newest week. Defaults to the current day; tests pin
	// it for reproducible timestamps.
	Now time.Time
}

// Generator produces datasets from an injected seed. All randomness flows
// through the seeded rng and faker instance, so two generators built with
// the same seed and options yield identical datasets.
type Generator struct {
	rng  *rand.Rand
	fake faker.Faker
	opts Options
}

func New(seed int64) *Generator {
	return NewWithOptions(seed, Options{})
}

func NewWithOptions(seed int64, opts Options) *Generator {
	if opts.Weeks <= 0 {
		opts.Weeks = defaultWeeks
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().Truncate(24 * time.Hour)
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		opts: opts,
	}
}

// Generate builds the complete dataset for count employees.
func (g *Generator) Generate(count int) (*internal.Dataset, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	roster := g.buildRoster(count)

	ds := &internal.Dataset{
		Employees:   roster,
		WorkLogs:    make(map[string][]*internal.WorkLogEntry, count),
		Messages:    make(map[string][]*internal.Message, count),
		Assessments: make(map[string][]*internal.AssessmentRecord, count),
	}

	for _, emp := range roster {
		ds.WorkLogs[emp.ID] = g.workLogs(emp)
		ds.Messages[emp.ID] = g.messages(emp)
		ds.Assessments[emp.ID] = g.assessments(emp)
	}

	return ds, nil
}

// weekStart returns the start of week i, where week 0 is the oldest of the
// configured trailing window and the last week ends at Now.
func (g *Generator) weekStart(i int) time.Time {
	return g.opts.Now.AddDate(0, 0, -7*(g.opts.Weeks-i))
}

// severity is the at-risk interpolation factor for week i: the fraction of
// the window still remaining. It starts at 1 for the oldest week and falls
// toward 0 as the week approaches the present, so at-risk metrics drift
// toward burnout-like values over time in proportion to (1 - severity).
func (g *Generator) severity(i int) float64 {
	return float64(g.opts.Weeks-i) / float64(g.opts.Weeks)
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// round1 keeps generated floats at the precision the downstream demo
// displays.
func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
