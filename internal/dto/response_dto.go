package dto

import "github.com/lamdh/gradeview/internal/model"

// Credentials is the payload of a successful login.
type Credentials struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// ExamResponse decorates an exam with the actions the view may offer.
// ResultsAvailable is false while the exam is still processing, so the
// dashboard never renders a results link it cannot honor.
type ExamResponse struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	CourseID         string           `json:"courseId"`
	UploadDate       string           `json:"uploadDate"`
	Status           model.ExamStatus `json:"status"`
	ResultsAvailable bool             `json:"resultsAvailable"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
