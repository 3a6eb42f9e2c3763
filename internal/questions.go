package internal

// Assessment question categories. PersonalAccomplishment and Support are
// reverse-scored: a higher answer means the employee is doing better.
const (
	CategoryEmotionalExhaustion    = "emotional_exhaustion"
	CategoryDepersonalization      = "depersonalization"
	CategoryPersonalAccomplishment = "personal_accomplishment"
	CategoryPhysicalSymptoms       = "physical_symptoms"
	CategorySupport                = "support"
)

// AssessmentQuestions is the static questionnaire catalog, two questions per
// category. Answers use a 1-5 scale (Never..Always).
var AssessmentQuestions = []AssessmentQuestion{
	{ID: "q1", Text: "I feel emotionally drained by my work.", Category: CategoryEmotionalExhaustion},
	{ID: "q2", Text: "I feel used up at the end of a workday.", Category: CategoryEmotionalExhaustion},
	{ID: "q3", Text: "I have become more cynical about whether my work matters.", Category: CategoryDepersonalization},
	{ID: "q4", Text: "I feel detached from my colleagues and my projects.", Category: CategoryDepersonalization},
	{ID: "q5", Text: "I feel I am making an effective contribution at work.", Category: CategoryPersonalAccomplishment},
	{ID: "q6", Text: "I am proud of the quality of the work I deliver.", Category: CategoryPersonalAccomplishment},
	{ID: "q7", Text: "I experience headaches or muscle tension during the workweek.", Category: CategoryPhysicalSymptoms},
	{ID: "q8", Text: "I have trouble sleeping because of work concerns.", Category: CategoryPhysicalSymptoms},
	{ID: "q9", Text: "I can rely on my manager when work gets difficult.", Category: CategorySupport},
	{ID: "q10", Text: "I feel supported by my team.", Category: CategorySupport},
}

// AnswerScale maps answer values to their questionnaire labels.
var AnswerScale = map[string]string{
	"1": "Never",
	"2": "Rarely",
	"3": "Sometimes",
	"4": "Often",
	"5": "Always",
}

// ReverseScored reports whether high answers in the category indicate
// health rather than burnout.
func ReverseScored(category string) bool {
	return category == CategoryPersonalAccomplishment || category == CategorySupport
}

// QuestionByID returns the catalog entry for id, or nil.
func QuestionByID(id string) *AssessmentQuestion {
	for i := range AssessmentQuestions {
		if AssessmentQuestions[i].ID == id {
			return &AssessmentQuestions[i]
		}
	}
	return nil
}
