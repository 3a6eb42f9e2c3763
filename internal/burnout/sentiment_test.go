package burnout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

func msgAt(ts time.Time, content string) *internal.Message {
	return &internal.Message{EmployeeID: "EMP001", Timestamp: ts, Channel: "slack", Content: content}
}

func TestPolarity(t *testing.T) {
	assert.Greater(t, Polarity("I love this team, the sprint went great!"), 0.1)
	assert.Less(t, Polarity("This is terrible, I hate these deadlines."), -0.1)
}

func TestAnalyzeMessagesEmpty(t *testing.T) {
	rep := AnalyzeMessages(nil)
	assert.Equal(t, 0, rep.TotalMessages)
	assert.Equal(t, "stable", rep.Trend)
	assert.Equal(t, "neutral", rep.SentimentLabel)
	assert.NotNil(t, rep.Messages)
	assert.NotNil(t, rep.WeeklyBreakdown)
}

func TestAnalyzeMessagesCountsAndLabel(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	rep := AnalyzeMessages([]*internal.Message{
		msgAt(now, "Really happy with the release, amazing work everyone!"),
		msgAt(now.Add(time.Hour), "Proud of what we shipped, it was wonderful."),
		msgAt(now.Add(2*time.Hour), "Exhausted and miserable, this week was awful."),
	})

	assert.Equal(t, 3, rep.TotalMessages)
	assert.Equal(t, 2, rep.PositiveCount)
	assert.Equal(t, 1, rep.NegativeCount)
	assert.Equal(t, "positive", rep.SentimentLabel)
	assert.Len(t, rep.Messages, 3)
}

func TestAnalyzeMessagesDecliningTrend(t *testing.T) {
	start := time.Date(2026, 7, 6, 9, 0, 0, 0, time.UTC)
	msgs := []*internal.Message{
		msgAt(start, "Great sprint, I love working with this team!"),
		msgAt(start.AddDate(0, 0, 7), "Fantastic demo today, really proud of us."),
		msgAt(start.AddDate(0, 0, 14), "I'm exhausted, this deadline is killing me."),
		msgAt(start.AddDate(0, 0, 21), "Everything is awful, I hate these late nights."),
	}

	rep := AnalyzeMessages(msgs)
	assert.Equal(t, "declining", rep.Trend)
	assert.Len(t, rep.WeeklyBreakdown, 4)
	for _, wk := range rep.WeeklyBreakdown {
		assert.Equal(t, 1, wk.MessageCount)
		assert.Regexp(t, `^\d{4}-W\d{2}$`, wk.Week)
	}
}

func TestAnalyzeMessagesSortsByTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	rep := AnalyzeMessages([]*internal.Message{
		msgAt(now.Add(time.Hour), "Moving the standup to 10am tomorrow."),
		msgAt(now, "Notes are in the shared doc."),
	})

	assert.Len(t, rep.Messages, 2)
	assert.True(t, rep.Messages[0].Timestamp.Before(rep.Messages[1].Timestamp))
}
