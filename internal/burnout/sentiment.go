// Package burnout computes composite burnout scores from assessment answers,
// communication sentiment, work patterns and productivity trends, flags
// suspicious self-assessments, and generates HR alerts.
package burnout

import (
	"fmt"
	"math"
	"sort"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// ScoredMessage is a message annotated with its sentiment polarity.
type ScoredMessage struct {
	internal.Message
	Polarity float64 `json:"polarity"`
	Label    string  `json:"label"`
}

type WeeklySentiment struct {
	Week         string  `json:"week"`
	AvgPolarity  float64 `json:"avg_polarity"`
	MessageCount int     `json:"message_count"`
}

// SentimentReport summarizes communication tone across all of an employee's
// messages: per-message polarity, the overall average, and a trend computed
// by comparing the first half of the timeline against the second.
type SentimentReport struct {
	Messages        []ScoredMessage   `json:"messages"`
	AveragePolarity float64           `json:"average_polarity"`
	Trend           string            `json:"trend"`
	SentimentLabel  string            `json:"sentiment_label"`
	TotalMessages   int               `json:"total_messages"`
	PositiveCount   int               `json:"positive_count"`
	NeutralCount    int               `json:"neutral_count"`
	NegativeCount   int               `json:"negative_count"`
	WeeklyBreakdown []WeeklySentiment `json:"weekly_breakdown"`
}

// Polarity scores text in [-1, 1] using the VADER lexicon.
func Polarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return round3(sentitext.PolarityScore(parsed).Compound)
}

func polarityLabel(p float64) string {
	switch {
	case p > 0.1:
		return "positive"
	case p < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

// AnalyzeMessages scores every message and derives the overall stats and
// trend direction. An empty message list yields a neutral, stable report.
func AnalyzeMessages(msgs []*internal.Message) SentimentReport {
	if len(msgs) == 0 {
		return SentimentReport{
			Messages:        []ScoredMessage{},
			Trend:           "stable",
			SentimentLabel:  "neutral",
			WeeklyBreakdown: []WeeklySentiment{},
		}
	}

	scored := make([]ScoredMessage, 0, len(msgs))
	for _, m := range msgs {
		p := Polarity(m.Content)
		scored = append(scored, ScoredMessage{
			Message:  *m,
			Polarity: p,
			Label:    polarityLabel(p),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Timestamp.Before(scored[j].Timestamp)
	})

	var sum float64
	rep := SentimentReport{
		Messages:      scored,
		TotalMessages: len(scored),
	}
	for _, m := range scored {
		sum += m.Polarity
		switch m.Label {
		case "positive":
			rep.PositiveCount++
		case "negative":
			rep.NegativeCount++
		default:
			rep.NeutralCount++
		}
	}
	rep.AveragePolarity = round3(sum / float64(len(scored)))
	rep.SentimentLabel = polarityLabel(rep.AveragePolarity)
	rep.Trend = trend(scored)
	rep.WeeklyBreakdown = weeklyBreakdown(scored)
	return rep
}

// trend compares average polarity of the first half of the timeline against
// the second half; a swing past 0.15 either way counts as a direction.
func trend(scored []ScoredMessage) string {
	mid := len(scored) / 2
	if mid == 0 {
		return "stable"
	}
	var first, second float64
	for i, m := range scored {
		if i < mid {
			first += m.Polarity
		} else {
			second += m.Polarity
		}
	}
	diff := second/float64(len(scored)-mid) - first/float64(mid)
	switch {
	case diff < -0.15:
		return "declining"
	case diff > 0.15:
		return "improving"
	default:
		return "stable"
	}
}

func weeklyBreakdown(scored []ScoredMessage) []WeeklySentiment {
	type bucket struct {
		sum   float64
		count int
	}
	weeks := make(map[string]*bucket)
	for _, m := range scored {
		y, w := m.Timestamp.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", y, w)
		b := weeks[key]
		if b == nil {
			b = &bucket{}
			weeks[key] = b
		}
		b.sum += m.Polarity
		b.count++
	}

	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]WeeklySentiment, 0, len(keys))
	for _, k := range keys {
		b := weeks[k]
		out = append(out, WeeklySentiment{
			Week:         k,
			AvgPolarity:  round3(b.sum / float64(b.count)),
			MessageCount: b.count,
		})
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
