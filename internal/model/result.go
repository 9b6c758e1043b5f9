package model

// ResultStatus covers graded work only; edits by a teacher imply
// sign-off and move the record to approved.
type ResultStatus string

const (
	ResultGraded   ResultStatus = "graded"
	ResultApproved ResultStatus = "approved"
)

// StudentResult is the teacher-facing view of one student's outcome on
// one exam.
type StudentResult struct {
	ID             string       `json:"id"`
	StudentID      string       `json:"studentId"`
	StudentName    string       `json:"studentName"`
	ExamID         string       `json:"examId"`
	Score          float64      `json:"score"`
	Feedback       string       `json:"feedback"`
	Status         ResultStatus `json:"status"`
	AnswerSheetURL string       `json:"answerSheetUrl"`
}

// FeedbackItem is one question's score and commentary, with citations
// into the course material the grader relied on.
type FeedbackItem struct {
	ID               string   `json:"id"`
	QuestionNumber   int      `json:"questionNumber"`
	Score            float64  `json:"score"`
	MaxScore         float64  `json:"maxScore"`
	Feedback         string   `json:"feedback"`
	SourceReferences []string `json:"sourceReferences"`
}

// ExamResult is the student-facing aggregate of per-question feedback.
type ExamResult struct {
	ID               string         `json:"id"`
	ExamID           string         `json:"examId"`
	StudentID        string         `json:"studentId"`
	StudentName      string         `json:"studentName"`
	TotalScore       float64        `json:"totalScore"`
	MaxPossibleScore float64        `json:"maxPossibleScore"`
	GradedDate       string         `json:"gradedDate"`
	Status           ResultStatus   `json:"status"`
	FeedbackItems    []FeedbackItem `json:"feedbackItems"`
	AnswerSheetURL   string         `json:"answerSheetUrl"`
}

// FeedbackSum adds up the per-question scores. Backend data should
// satisfy FeedbackSum() == TotalScore; this is checked in tests, not
// enforced here.
func (r ExamResult) FeedbackSum() float64 {
	var sum float64
	for _, item := range r.FeedbackItems {
		sum += item.Score
	}
	return sum
}
