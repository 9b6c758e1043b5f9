package model

type CourseMaterial struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"` // "pdf", "ppt", "textbook", "other"
	UploadDate string `json:"uploadDate"`
	FileURL    string `json:"fileUrl"`
}
