package service

import (
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/model"
)

// ExamResultNotFound is the envelope error for a result lookup on an
// exam absent from the student's result set. It identifies an expected
// miss, not a fault.
const ExamResultNotFound = "Exam result not found"

// RubricReader is the slice of TeacherService the student view needs:
// rubrics are not role-restricted data.
type RubricReader interface {
	GetRubric(examID string) gateway.Result[model.Rubric]
}

type StudentService interface {
	GetResults(studentID string) gateway.Result[[]model.ExamResult]
	GetExamResult(studentID, examID string) gateway.Result[model.ExamResult]
	GetRubric(examID string) gateway.Result[model.Rubric]
}

type studentService struct {
	client  *gateway.Client
	rubrics RubricReader
}

func NewStudentService(client *gateway.Client, rubrics RubricReader) StudentService {
	return &studentService{client: client, rubrics: rubrics}
}

func (s *studentService) GetResults(studentID string) gateway.Result[[]model.ExamResult] {
	return gateway.Get[[]model.ExamResult](s.client, "/results/student/"+studentID)
}

// GetExamResult is a filtering contract, not a distinct backend call:
// it fetches the student's full result set and selects by exam.
func (s *studentService) GetExamResult(studentID, examID string) gateway.Result[model.ExamResult] {
	results := s.GetResults(studentID)
	if !results.Success {
		return gateway.Fail[model.ExamResult](results.Error)
	}
	for _, r := range results.Value() {
		if r.ExamID == examID {
			return gateway.OK(r)
		}
	}
	return gateway.Fail[model.ExamResult](ExamResultNotFound)
}

func (s *studentService) GetRubric(examID string) gateway.Result[model.Rubric] {
	return s.rubrics.GetRubric(examID)
}
