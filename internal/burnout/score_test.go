package burnout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// answerAll builds a full answer map: negatively-phrased questions get neg,
// reverse-scored ones get pos.
func answerAll(neg, pos int) map[string]int {
	answers := make(map[string]int, len(internal.AssessmentQuestions))
	for _, q := range internal.AssessmentQuestions {
		if internal.ReverseScored(q.Category) {
			answers[q.ID] = pos
		} else {
			answers[q.ID] = neg
		}
	}
	return answers
}

func weekLog(hours, weekend float64, completed, assigned, lateNights int, breaks, pto float64) *internal.WorkLogEntry {
	return &internal.WorkLogEntry{
		AvgDailyHours:     hours,
		WeekendHours:      weekend,
		TasksCompleted:    completed,
		TasksAssigned:     assigned,
		LateNightSessions: lateNights,
		BreaksPerDay:      breaks,
		PTOBalanceDays:    pto,
	}
}

func TestAssessmentScoreExtremes(t *testing.T) {
	assert.Equal(t, 100.0, AssessmentScore(answerAll(5, 1)))
	assert.Equal(t, 0.0, AssessmentScore(answerAll(1, 5)))
	assert.Equal(t, 50.0, AssessmentScore(answerAll(3, 3)))
	assert.Equal(t, 0.0, AssessmentScore(nil))
	assert.Equal(t, 0.0, AssessmentScore(map[string]int{"bogus": 5}))
}

func TestAssessmentScoreWeightsNegativeCategories(t *testing.T) {
	// Maxed negative answers with healthy positives: 3x weighting keeps the
	// score high despite strong accomplishment/support answers.
	score := AssessmentScore(answerAll(5, 5))
	assert.Greater(t, score, 70.0)

	// The mirror case stays low.
	mirror := AssessmentScore(answerAll(1, 1))
	assert.Less(t, mirror, 30.0)
}

func TestWorkPatternScore(t *testing.T) {
	assert.Equal(t, 50.0, WorkPatternScore(nil))

	relaxed := []*internal.WorkLogEntry{
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(7.5, 0, 9, 10, 0, 5, 16),
	}
	assert.Equal(t, 0.0, WorkPatternScore(relaxed))

	brutal := []*internal.WorkLogEntry{
		weekLog(14, 8, 4, 12, 6, 0, 0),
		weekLog(14, 8, 4, 12, 6, 0, 0),
	}
	assert.Equal(t, 100.0, WorkPatternScore(brutal))
}

func TestProductivityScore(t *testing.T) {
	assert.Equal(t, 50.0, ProductivityScore(nil))
	assert.Equal(t, 50.0, ProductivityScore([]*internal.WorkLogEntry{weekLog(8, 0, 10, 10, 0, 5, 15)}))

	// Full completion with no decline scores zero.
	steady := []*internal.WorkLogEntry{
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(8, 0, 10, 10, 0, 5, 15),
	}
	assert.Equal(t, 0.0, ProductivityScore(steady))

	// A collapse in completion against the earlier weeks pushes the score up.
	collapsed := []*internal.WorkLogEntry{
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(8, 0, 10, 10, 0, 5, 15),
		weekLog(8, 0, 9, 10, 0, 5, 15),
		weekLog(10, 4, 4, 12, 3, 2, 5),
		weekLog(10, 4, 3, 12, 3, 2, 5),
		weekLog(11, 5, 2, 12, 4, 1, 4),
		weekLog(11, 5, 2, 12, 4, 1, 4),
	}
	assert.Greater(t, ProductivityScore(collapsed), 50.0)
}

func TestSentimentScore(t *testing.T) {
	assert.Equal(t, 50.0, SentimentScore(SentimentReport{}))

	gloomy := SentimentReport{
		AveragePolarity: -0.6,
		TotalMessages:   10,
		NegativeCount:   8,
		Trend:           "declining",
	}
	assert.Greater(t, SentimentScore(gloomy), 70.0)

	sunny := SentimentReport{
		AveragePolarity: 0.6,
		TotalMessages:   10,
		PositiveCount:   8,
		Trend:           "improving",
	}
	assert.Less(t, SentimentScore(sunny), 30.0)
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "low", RiskLevel(0))
	assert.Equal(t, "low", RiskLevel(54.9))
	assert.Equal(t, "moderate", RiskLevel(55))
	assert.Equal(t, "moderate", RiskLevel(74.9))
	assert.Equal(t, "high", RiskLevel(75))
	assert.Equal(t, "critical", RiskLevel(90))
	assert.Equal(t, "critical", RiskLevel(100))
}

func TestScoreWithoutAssessments(t *testing.T) {
	res := Score("EMP001", nil, nil, nil)
	assert.Equal(t, "EMP001", res.EmployeeID)
	assert.Equal(t, 0.0, res.CompositeScore)
	assert.Equal(t, "low", res.RiskLevel)
	assert.Nil(t, res.LastAssessmentDate)
	assert.Empty(t, res.AssessmentTrend)
	assert.False(t, res.Faking.IsSuspicious)
}

func TestScoreCompositeAndTrend(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assessments := []*internal.AssessmentRecord{
		{
			ID: "ASM-1", EmployeeID: "EMP002", Timestamp: now.AddDate(0, 0, -14),
			Answers:       answerAll(3, 3),
			ResponseTimes: map[string]float64{"q1": 5, "q2": 8, "q3": 4, "q4": 11},
		},
		{
			ID: "ASM-2", EmployeeID: "EMP002", Timestamp: now.AddDate(0, 0, -7),
			Answers:       answerAll(5, 1),
			ResponseTimes: map[string]float64{"q1": 6, "q2": 9, "q3": 4, "q4": 12},
		},
	}
	logs := []*internal.WorkLogEntry{
		weekLog(12, 6, 5, 12, 4, 1, 2),
		weekLog(12.5, 7, 4, 13, 5, 1, 1),
	}

	res := Score("EMP002", assessments, logs, nil)

	assert.Equal(t, 100.0, res.Breakdown.Assessment.Score)
	assert.Greater(t, res.CompositeScore, float64(RiskHighAt))
	assert.GreaterOrEqual(t, res.AdjustedScore, res.CompositeScore)
	assert.Contains(t, []string{"high", "critical"}, res.RiskLevel)

	assert.Len(t, res.AssessmentTrend, 2)
	assert.Equal(t, 50.0, res.AssessmentTrend[0].Score)
	assert.Equal(t, 100.0, res.AssessmentTrend[1].Score)
	if assert.NotNil(t, res.LastAssessmentDate) {
		assert.Equal(t, assessments[1].Timestamp, *res.LastAssessmentDate)
	}
}
