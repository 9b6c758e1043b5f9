package dto

// LoginRequest carries dashboard login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FeedbackUpdate is a partial update: nil fields are left unchanged
// server-side. Applying any edit implies teacher sign-off.
type FeedbackUpdate struct {
	Score    *float64 `json:"score,omitempty"`
	Feedback *string  `json:"feedback,omitempty"`
}

// AdjustGradeRequest is the wire shape for POST /adjust/grade.
type AdjustGradeRequest struct {
	ResultID string   `json:"resultId"`
	Score    *float64 `json:"score,omitempty"`
	Feedback *string  `json:"feedback,omitempty"`
}
