package model

// RubricItem is one question's grading criteria.
type RubricItem struct {
	ID             string  `json:"id"`
	QuestionNumber int     `json:"questionNumber"`
	Criteria       string  `json:"criteria"`
	MaxScore       float64 `json:"maxScore"`
	ExpectedAnswer string  `json:"expectedAnswer"`
}

// Rubric is the ordered per-question criteria for one exam. Rubrics are
// not role-restricted: both teacher and student views read them.
type Rubric struct {
	ID     string       `json:"id"`
	ExamID string       `json:"examId"`
	Items  []RubricItem `json:"items"`
}
