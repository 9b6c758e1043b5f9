package service

import (
	"fmt"

	"github.com/lamdh/gradeview/config"
	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/model"
)

const bytesPerMB = 1 << 20

type TeacherService interface {
	UploadMaterials(files []gateway.File) gateway.Result[model.CourseMaterial]
	UploadExams(files []gateway.File) gateway.Result[model.Exam]
	GetExams() gateway.Result[[]model.Exam]
	GetExamResults(examID string) gateway.Result[[]model.StudentResult]
	AdjustFeedback(resultID string, updates dto.FeedbackUpdate) gateway.Result[model.StudentResult]
	GetRubric(examID string) gateway.Result[model.Rubric]
}

type teacherService struct {
	client      *gateway.Client
	maxFiles    int
	maxFileSize int64
}

func NewTeacherService(client *gateway.Client, cfg *config.Config) TeacherService {
	return &teacherService{
		client:      client,
		maxFiles:    cfg.Upload.MaxFiles,
		maxFileSize: cfg.Upload.MaxFileSizeMB * bytesPerMB,
	}
}

// validateFiles enforces the upload caps locally. A violation is a
// user-facing validation failure and must not cost a network round
// trip, so it is checked before any request is built.
func (s *teacherService) validateFiles(files []gateway.File) string {
	if len(files) == 0 {
		return "No files selected"
	}
	if len(files) > s.maxFiles {
		return fmt.Sprintf("Too many files: %d selected, at most %d allowed", len(files), s.maxFiles)
	}
	for _, f := range files {
		if f.Size > s.maxFileSize {
			return fmt.Sprintf("File %q exceeds the %d MB size limit", f.Name, s.maxFileSize/bytesPerMB)
		}
	}
	return ""
}

func (s *teacherService) UploadMaterials(files []gateway.File) gateway.Result[model.CourseMaterial] {
	if msg := s.validateFiles(files); msg != "" {
		return gateway.Fail[model.CourseMaterial](msg)
	}
	return gateway.PostMultipart[model.CourseMaterial](s.client, "/upload/materials", files)
}

func (s *teacherService) UploadExams(files []gateway.File) gateway.Result[model.Exam] {
	if msg := s.validateFiles(files); msg != "" {
		return gateway.Fail[model.Exam](msg)
	}
	return gateway.PostMultipart[model.Exam](s.client, "/upload/exams", files)
}

// GetExams returns the backend's ordering untouched, typically
// reverse-chronological.
func (s *teacherService) GetExams() gateway.Result[[]model.Exam] {
	return gateway.Get[[]model.Exam](s.client, "/exams")
}

func (s *teacherService) GetExamResults(examID string) gateway.Result[[]model.StudentResult] {
	return gateway.Get[[]model.StudentResult](s.client, "/results/teacher/"+examID)
}

// AdjustFeedback sends a partial update; absent fields stay unchanged
// server-side, and the edit itself moves the result to approved.
func (s *teacherService) AdjustFeedback(resultID string, updates dto.FeedbackUpdate) gateway.Result[model.StudentResult] {
	return gateway.PostJSON[model.StudentResult](s.client, "/adjust/grade", dto.AdjustGradeRequest{
		ResultID: resultID,
		Score:    updates.Score,
		Feedback: updates.Feedback,
	})
}

func (s *teacherService) GetRubric(examID string) gateway.Result[model.Rubric] {
	return gateway.Get[model.Rubric](s.client, "/rubrics/"+examID)
}
