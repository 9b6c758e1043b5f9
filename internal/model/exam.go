package model

// ExamStatus moves strictly forward: processing -> graded -> approved.
type ExamStatus string

const (
	ExamProcessing ExamStatus = "processing"
	ExamGraded     ExamStatus = "graded"
	ExamApproved   ExamStatus = "approved"
)

// CanTransitionTo reports whether next is the single allowed successor
// of s. No backward moves, no skipping graded.
func (s ExamStatus) CanTransitionTo(next ExamStatus) bool {
	switch s {
	case ExamProcessing:
		return next == ExamGraded
	case ExamGraded:
		return next == ExamApproved
	case ExamApproved:
		return false
	default:
		return false
	}
}

// ResultsAvailable reports whether per-student results may be shown.
// An exam still being processed has nothing to review.
func (s ExamStatus) ResultsAvailable() bool {
	return s == ExamGraded || s == ExamApproved
}

type Exam struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	CourseID   string     `json:"courseId"`
	UploadDate string     `json:"uploadDate"`
	Status     ExamStatus `json:"status"`
}
