package burnout

import (
	"time"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// Composite score weights. The latest self-assessment dominates; the
// behavioral streams are supporting signals.
const (
	WeightAssessment   = 0.75
	WeightSentiment    = 0.10
	WeightWorkPattern  = 0.10
	WeightProductivity = 0.05
)

// Risk level thresholds on the 0-100 adjusted score.
const (
	RiskModerateAt = 55
	RiskHighAt     = 75
	RiskCriticalAt = 90
)

type Factor struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

type Breakdown struct {
	Assessment   Factor `json:"assessment"`
	Sentiment    Factor `json:"sentiment"`
	WorkPattern  Factor `json:"work_pattern"`
	Productivity Factor `json:"productivity"`
}

type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// Result is the full burnout analysis for one employee.
type Result struct {
	EmployeeID         string          `json:"employee_id"`
	CompositeScore     float64         `json:"composite_score"`
	AdjustedScore      float64         `json:"adjusted_score"`
	RiskLevel          string          `json:"risk_level"`
	Breakdown          Breakdown       `json:"breakdown"`
	Sentiment          SentimentReport `json:"sentiment_analysis"`
	Faking             FakingResult    `json:"faking_detection"`
	AssessmentTrend    []TrendPoint    `json:"assessment_trend"`
	LastAssessmentDate *time.Time      `json:"last_assessment_date"`
}

// AssessmentScore converts questionnaire answers into a 0-100 burnout
// percentage. Burnout-indicating categories weigh 3x the reverse-scored
// ones, which are inverted so high answers stay healthy.
func AssessmentScore(answers map[string]int) float64 {
	if len(answers) == 0 {
		return 0
	}

	var weightedTotal, totalWeight float64
	for _, q := range internal.AssessmentQuestions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		score := float64(answer)
		weight := 3.0
		if internal.ReverseScored(q.Category) {
			score = 6 - score
			weight = 1.0
		}
		weightedTotal += score * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}

	raw := weightedTotal / totalWeight // 1 to 5
	return round1((raw - 1) / 4 * 100)
}

// WorkPatternScore rates burnout risk from the most recent four weeks of
// work logs. Factors: daily hours past 8 (0.30), weekend work (0.20),
// late-night sessions (0.20), missing breaks (0.15), depleted PTO (0.15).
func WorkPatternScore(logs []*internal.WorkLogEntry) float64 {
	if len(logs) == 0 {
		return 50
	}
	recent := recentLogs(logs, 4)

	var hours, weekend, lateNights, breaks, pto float64
	for _, l := range recent {
		hours += l.AvgDailyHours
		weekend += l.WeekendHours
		lateNights += float64(l.LateNightSessions)
		breaks += l.BreaksPerDay
		pto += l.PTOBalanceDays
	}
	n := float64(len(recent))
	hours, weekend, lateNights, breaks, pto = hours/n, weekend/n, lateNights/n, breaks/n, pto/n

	score := clamp((hours-8)/6*100)*0.30 +
		clamp(weekend/6*100)*0.20 +
		clamp(lateNights/5*100)*0.20 +
		clamp((5-breaks)/5*100)*0.15 +
		clamp((15-pto)/15*100)*0.15

	return round1(score)
}

// ProductivityScore rates burnout risk from task completion: half from the
// recent completion rate, half from the decline against older weeks.
func ProductivityScore(logs []*internal.WorkLogEntry) float64 {
	if len(logs) < 2 {
		return 50
	}
	recent := recentLogs(logs, 4)
	older := logs
	if len(logs) >= 4 {
		older = logs[:4]
	} else {
		older = logs[:1]
	}

	var recentCompleted, recentAssigned float64
	for _, l := range recent {
		recentCompleted += float64(l.TasksCompleted)
		recentAssigned += float64(l.TasksAssigned)
	}
	recentCompleted /= float64(len(recent))
	recentAssigned /= float64(len(recent))

	var olderCompleted float64
	for _, l := range older {
		olderCompleted += float64(l.TasksCompleted)
	}
	olderCompleted /= float64(len(older))

	completionRate := recentCompleted / maxf(recentAssigned, 1) * 100

	var decline float64
	if olderCompleted > 0 {
		decline = (olderCompleted - recentCompleted) / olderCompleted * 100
	}

	score := clamp((100-completionRate)/70*100)*0.50 + clamp(decline*2)*0.50
	return round1(score)
}

// SentimentScore converts a sentiment report into a 0-100 risk score:
// polarity (0.50), negative message ratio (0.30), trend band (0.20).
func SentimentScore(rep SentimentReport) float64 {
	if rep.TotalMessages == 0 {
		return 50
	}

	polarityScore := (1 - rep.AveragePolarity) / 2 * 100

	trendBonus := 0.0
	switch rep.Trend {
	case "declining":
		trendBonus = 15
	case "improving":
		trendBonus = -10
	}

	negativeScore := float64(rep.NegativeCount) / float64(rep.TotalMessages) * 100

	score := polarityScore*0.50 + negativeScore*0.30 + (50+trendBonus)*0.20
	return round1(clamp(score))
}

// RiskLevel maps an adjusted score onto the four-level scale.
func RiskLevel(score float64) string {
	switch {
	case score >= RiskCriticalAt:
		return "critical"
	case score >= RiskHighAt:
		return "high"
	case score >= RiskModerateAt:
		return "moderate"
	default:
		return "low"
	}
}

// Score computes the composite burnout analysis for one employee. With no
// assessments on file the composite is zero: the employee simply hasn't
// been tested yet.
func Score(employeeID string, assessments []*internal.AssessmentRecord, logs []*internal.WorkLogEntry, msgs []*internal.Message) Result {
	sentiment := AnalyzeMessages(msgs)

	if len(assessments) == 0 {
		return Result{
			EmployeeID: employeeID,
			RiskLevel:  "low",
			Breakdown: Breakdown{
				Assessment:   Factor{Weight: WeightAssessment},
				Sentiment:    Factor{Weight: WeightSentiment},
				WorkPattern:  Factor{Weight: WeightWorkPattern},
				Productivity: Factor{Weight: WeightProductivity},
			},
			Sentiment:       sentiment,
			Faking:          FakingResult{Reasons: []string{}},
			AssessmentTrend: []TrendPoint{},
		}
	}

	latest := assessments[len(assessments)-1]

	assessmentScore := AssessmentScore(latest.Answers)
	sentimentScore := SentimentScore(sentiment)
	workScore := WorkPatternScore(logs)
	productivityScore := ProductivityScore(logs)

	composite := round1(clamp(assessmentScore*WeightAssessment +
		sentimentScore*WeightSentiment +
		workScore*WeightWorkPattern +
		productivityScore*WeightProductivity))

	faking := DetectFaking(latest, logs, sentiment)

	// Self-reports can be gamed; when the record looks fake, fall back to
	// the objective streams and keep whichever reads worse.
	adjusted := composite
	if faking.IsSuspicious {
		objective := sentimentScore*0.40 + workScore*0.35 + productivityScore*0.25
		adjusted = round1(maxf(composite, objective))
	}

	trendPoints := make([]TrendPoint, 0, len(assessments))
	for _, a := range assessments {
		trendPoints = append(trendPoints, TrendPoint{
			Date:  a.Timestamp,
			Score: AssessmentScore(a.Answers),
		})
	}

	last := latest.Timestamp
	return Result{
		EmployeeID:     employeeID,
		CompositeScore: composite,
		AdjustedScore:  adjusted,
		RiskLevel:      RiskLevel(adjusted),
		Breakdown: Breakdown{
			Assessment:   Factor{Score: assessmentScore, Weight: WeightAssessment},
			Sentiment:    Factor{Score: sentimentScore, Weight: WeightSentiment},
			WorkPattern:  Factor{Score: workScore, Weight: WeightWorkPattern},
			Productivity: Factor{Score: productivityScore, Weight: WeightProductivity},
		},
		Sentiment:          sentiment,
		Faking:             faking,
		AssessmentTrend:    trendPoints,
		LastAssessmentDate: &last,
	}
}

func recentLogs(logs []*internal.WorkLogEntry, n int) []*internal.WorkLogEntry {
	if len(logs) <= n {
		return logs
	}
	return logs[len(logs)-n:]
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
