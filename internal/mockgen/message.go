package mockgen

import (
	"fmt"
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// atRiskSplit is the severity threshold below which an at-risk employee's
// messages switch from the "better" early mix to the "worse" late mix.
const atRiskSplit = 0.4

var messageChannels = []string{"slack", "email", "teams"}

var positivePool = []string{
	"Really happy with how the sprint went, great teamwork everyone!",
	"Just wrapped up the release, feeling good about the quality.",
	"Thanks for the help today, made my week so much easier.",
	"Excited about the new project kickoff next Monday.",
	"Had a great 1:1 with my manager, lots of useful feedback.",
	"Love how smoothly the deploy went this time.",
	"The workshop this morning was genuinely fun and useful.",
	"Proud of what the team shipped this quarter.",
}

var neutralPool = []string{
	"Can someone review my PR when they get a chance?",
	"Moving the standup to 10am tomorrow.",
	"I'll pick up the reporting task this week.",
	"Notes from the planning meeting are in the shared doc.",
	"Heads up, I'll be in the office Wednesday and Thursday.",
	"The vendor call got rescheduled to Friday.",
	"Updated the ticket with the latest findings.",
	"Lunch plans? Thinking about the new place downstairs.",
}

var negativePool = []string{
	"I'm completely exhausted, this deadline is killing me.",
	"Another late night... I can't keep doing this every week.",
	"Honestly I don't see the point of these meetings anymore.",
	"Feeling really overwhelmed with the backlog right now.",
	"I had to cancel my weekend plans again because of work.",
	"Too tired to think straight today, sorry for the slow replies.",
	"Everything is urgent and nothing gets finished, it's frustrating.",
	"My head is pounding and I still have three reviews to do.",
}

// poolWeights is the cumulative sampling mix (positive, neutral, negative).
type poolWeights struct{ positive, neutral float64 }

var (
	healthyMix     = poolWeights{0.70, 0.95}
	burnoutMix     = poolWeights{0.10, 0.35}
	atRiskEarlyMix = poolWeights{0.45, 0.80}
	atRiskLateMix  = poolWeights{0.15, 0.45}
)

func (g *Generator) mixFor(profile internal.Profile, week int) poolWeights {
	switch profile {
	case internal.ProfileBurnout:
		return burnoutMix
	case internal.ProfileAtRisk:
		if g.severity(week) > atRiskSplit {
			return atRiskEarlyMix
		}
		return atRiskLateMix
	default:
		return healthyMix
	}
}

func (g *Generator) sampleContent(mix poolWeights) string {
	r := g.rng.Float64()
	switch {
	case r < mix.positive:
		return positivePool[g.rng.Intn(len(positivePool))]
	case r < mix.neutral:
		return neutralPool[g.rng.Intn(len(neutralPool))]
	default:
		return negativePool[g.rng.Intn(len(negativePool))]
	}
}

// messages samples 1-4 messages per trailing week, each placed at a random
// moment within that week.
func (g *Generator) messages(emp *internal.Employee) []*internal.Message {
	msgs := make([]*internal.Message, 0, g.opts.Weeks*2)
	seq := 0
	for week := 0; week < g.opts.Weeks; week++ {
		mix := g.mixFor(emp.Profile, week)
		n := g.intBetween(1, 4)
		start := g.weekStart(week)
		for i := 0; i < n; i++ {
			seq++
			msgs = append(msgs, &internal.Message{
				ID:         fmt.Sprintf("MSG-%s-%03d", emp.ID, seq),
				EmployeeID: emp.ID,
				Timestamp:  start.Add(time.Duration(g.rng.Intn(7*24*3600)) * time.Second),
				Channel:    messageChannels[g.rng.Intn(len(messageChannels))],
				Content:    g.sampleContent(mix),
			})
		}
	}
	return msgs
}
