package mockgen

import (
	"fmt"
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// Response latency ranges in seconds. Genuine answers take human time to
// think about; fake attempts are rushed and narrow, always landing below the
// downstream detector's 3.0s suspicion threshold.
const (
	genuineLatencyLo = 3.0
	genuineLatencyHi = 15.0
	fakeLatencyLo    = 1.0
	fakeLatencyHi    = 2.5
)

// answerBand holds the inclusive answer range for one question polarity.
// "negative" covers the burnout-indicating categories; "positive" covers the
// reverse-scored ones (high answer = healthy).
type answerBands struct {
	negative band
	positive band
}

var profileAnswers = map[internal.Profile]answerBands{
	internal.ProfileHealthy: {negative: band{1, 2}, positive: band{4, 5}},
	internal.ProfileAtRisk:  {negative: band{2, 4}, positive: band{2, 4}},
	internal.ProfileBurnout: {negative: band{4, 5}, positive: band{1, 2}},
}

// assessments runs one submission trial per trailing week: most weeks the
// employee answers the questionnaire, some weeks they skip it. Burnout
// employees occasionally submit a fake attempt whose answers are drawn from
// the healthy ranges but whose response timings give them away.
func (g *Generator) assessments(emp *internal.Employee) []*internal.AssessmentRecord {
	records := make([]*internal.AssessmentRecord, 0, g.opts.Weeks)
	for week := 0; week < g.opts.Weeks; week++ {
		if g.rng.Float64() >= assessmentSubmitProb {
			continue
		}

		fake := emp.Profile == internal.ProfileBurnout && g.rng.Float64() < fakeAttemptProb

		bands := profileAnswers[emp.Profile]
		latencyLo, latencyHi := genuineLatencyLo, genuineLatencyHi
		if fake {
			bands = profileAnswers[internal.ProfileHealthy]
			latencyLo, latencyHi = fakeLatencyLo, fakeLatencyHi
		}

		answers := make(map[string]int, len(internal.AssessmentQuestions))
		latencies := make(map[string]float64, len(internal.AssessmentQuestions))
		for _, q := range internal.AssessmentQuestions {
			b := bands.negative
			if internal.ReverseScored(q.Category) {
				b = bands.positive
			}
			answers[q.ID] = g.intBetween(int(b.lo), int(b.hi))
			latencies[q.ID] = round1(g.between(latencyLo, latencyHi))
		}

		start := g.weekStart(week)
		records = append(records, &internal.AssessmentRecord{
			ID:            fmt.Sprintf("ASM-%s-%02d", emp.ID, week+1),
			EmployeeID:    emp.ID,
			Timestamp:     start.Add(time.Duration(g.rng.Intn(7*24*3600)) * time.Second),
			Answers:       answers,
			ResponseTimes: latencies,
			IsFakeAttempt: fake,
		})
	}
	return records
}
