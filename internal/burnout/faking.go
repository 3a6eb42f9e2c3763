package burnout

import (
	"fmt"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

// Anti-faking heuristics: suspicion accumulates per signal and the record is
// flagged once it crosses suspicionFlagAt.
const (
	fastResponseThreshold = 3.0 // seconds per question
	uniformTimingVariance = 1.0
	workGapThreshold      = 40.0
	sentimentGapThreshold = 35.0
	suspicionFlagAt       = 0.3
)

type FakingResult struct {
	IsSuspicious bool     `json:"is_suspicious"`
	Confidence   float64  `json:"confidence"`
	Reasons      []string `json:"reasons"`
}

// DetectFaking checks one assessment against the employee's objective
// streams for signs the answers were not genuine: rushed or robotic
// response timing, self-reports far rosier than work data or communication
// tone, and pattern answering.
func DetectFaking(assessment *internal.AssessmentRecord, logs []*internal.WorkLogEntry, sentiment SentimentReport) FakingResult {
	result := FakingResult{Reasons: []string{}}
	if assessment == nil {
		return result
	}

	var suspicion float64

	if len(assessment.ResponseTimes) > 0 {
		var sum float64
		for _, t := range assessment.ResponseTimes {
			sum += t
		}
		avg := sum / float64(len(assessment.ResponseTimes))
		if avg < fastResponseThreshold {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Suspiciously fast response time (avg %.1fs per question)", avg))
			suspicion += 0.3
		}

		if len(assessment.ResponseTimes) > 3 {
			var variance float64
			for _, t := range assessment.ResponseTimes {
				variance += (t - avg) * (t - avg)
			}
			variance /= float64(len(assessment.ResponseTimes))
			if variance < uniformTimingVariance {
				result.Reasons = append(result.Reasons,
					"Very uniform response times suggest non-genuine answers")
				suspicion += 0.2
			}
		}
	}

	assessmentScore := AssessmentScore(assessment.Answers)
	if len(logs) > 0 {
		workScore := WorkPatternScore(logs)
		if gap := workScore - assessmentScore; gap > workGapThreshold {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Large gap between self-report (%.0f%%) and work data (%.0f%%)", assessmentScore, workScore))
			suspicion += 0.3
		}
	}

	if sentiment.TotalMessages > 0 {
		sentimentScore := SentimentScore(sentiment)
		if gap := sentimentScore - assessmentScore; gap > sentimentGapThreshold {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Communication sentiment (%.0f%%) contradicts self-assessment (%.0f%%)", sentimentScore, assessmentScore))
			suspicion += 0.2
		}
	}

	if len(assessment.Answers) > 0 {
		distinct := make(map[int]struct{}, 5)
		for _, v := range assessment.Answers {
			distinct[v] = struct{}{}
		}
		if len(distinct) <= 2 {
			result.Reasons = append(result.Reasons,
				"Nearly all answers are identical, possible pattern response")
			suspicion += 0.15
		}
	}

	result.IsSuspicious = suspicion >= suspicionFlagAt
	result.Confidence = round2(minf(1.0, suspicion))
	return result
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
