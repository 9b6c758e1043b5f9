// Package fixture is the in-process stand-in for the external grading
// backend. It implements the same wire contract over the seeded
// dataset and is only reachable when BACKEND_MODE=fixture is set
// explicitly; the gateway never falls back to it on its own.
package fixture

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/model"
)

// Backend holds the mutable fixture state behind one mutex; adjusting
// a grade and uploading exams mutate it.
type Backend struct {
	mu             sync.Mutex
	accounts       map[string]account
	exams          []model.Exam
	studentResults []model.StudentResult
	examResults    []model.ExamResult
	rubrics        map[string]model.Rubric
	nextID         int
}

func New() *Backend {
	return &Backend{
		accounts:       seedAccounts(),
		exams:          seedExams(),
		studentResults: seedStudentResults(),
		examResults:    seedExamResults(),
		rubrics:        seedRubrics(),
		nextID:         1,
	}
}

// Handler builds the gin router implementing the backend contract.
func (b *Backend) Handler() http.Handler {
	r := gin.New()

	r.POST("/auth/login", b.login)
	r.POST("/auth/logout", b.logout)
	r.POST("/upload/materials", b.uploadMaterials)
	r.POST("/upload/exams", b.uploadExams)
	r.GET("/exams", b.listExams)
	r.GET("/results/teacher/:examId", b.teacherResults)
	r.POST("/adjust/grade", b.adjustGrade)
	r.GET("/rubrics/:examId", b.rubric)
	r.GET("/results/student/:studentId", b.studentResultsHandler)

	return r
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// authed resolves the bearer token to a seeded account.
func (b *Backend) authed(c *gin.Context) (account, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return account{}, false
	}
	for _, acc := range b.accounts {
		if acc.Token == token {
			return acc, true
		}
	}
	return account{}, false
}

func (b *Backend) requireRole(c *gin.Context, role model.Role) (account, bool) {
	acc, found := b.authed(c)
	if !found {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return account{}, false
	}
	if acc.User.Role != role {
		fail(c, http.StatusForbidden, "Insufficient permissions")
		return account{}, false
	}
	return acc, true
}

func (b *Backend) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid credentials")
		return
	}
	acc, exists := b.accounts[req.Email]
	if !exists || acc.Password != req.Password {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	ok(c, dto.Credentials{Token: acc.Token, User: acc.User})
}

func (b *Backend) logout(c *gin.Context) {
	// Best-effort by contract; an unknown token is still a success.
	ok(c, gin.H{"loggedOut": true})
}

func (b *Backend) uploadMaterials(c *gin.Context) {
	if _, allowed := b.requireRole(c, model.RoleTeacher); !allowed {
		return
	}
	names, errMsg := b.uploadedFileNames(c)
	if errMsg != "" {
		fail(c, http.StatusBadRequest, errMsg)
		return
	}

	b.mu.Lock()
	id := fmt.Sprintf("material%d", b.nextID)
	b.nextID++
	b.mu.Unlock()

	ok(c, model.CourseMaterial{
		ID:         id,
		Title:      names[0],
		Type:       materialType(names[0]),
		UploadDate: time.Now().Format("2006-01-02"),
		FileURL:    "/materials/" + names[0],
	})
}

func (b *Backend) uploadExams(c *gin.Context) {
	if _, allowed := b.requireRole(c, model.RoleTeacher); !allowed {
		return
	}
	names, errMsg := b.uploadedFileNames(c)
	if errMsg != "" {
		fail(c, http.StatusBadRequest, errMsg)
		return
	}

	courseID := c.PostForm("courseId")
	if courseID == "" {
		courseID = "cs101"
	}

	b.mu.Lock()
	exam := model.Exam{
		ID:         fmt.Sprintf("exam%d", len(b.exams)+1),
		Title:      strings.TrimSuffix(names[0], ".pdf"),
		CourseID:   courseID,
		UploadDate: time.Now().Format("2006-01-02"),
		Status:     model.ExamProcessing,
	}
	b.exams = append([]model.Exam{exam}, b.exams...)
	b.mu.Unlock()

	ok(c, exam)
}

func (b *Backend) uploadedFileNames(c *gin.Context) ([]string, string) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, "Invalid multipart payload"
	}
	files := form.File["files"]
	if len(files) == 0 {
		return nil, "No files received"
	}
	names := make([]string, 0, len(files))
	for _, fh := range files {
		names = append(names, fh.Filename)
	}
	return names, ""
}

func materialType(name string) string {
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return "pdf"
	case strings.HasSuffix(name, ".ppt"), strings.HasSuffix(name, ".pptx"):
		return "ppt"
	default:
		return "other"
	}
}

func (b *Backend) listExams(c *gin.Context) {
	if _, allowed := b.requireRole(c, model.RoleTeacher); !allowed {
		return
	}
	b.mu.Lock()
	exams := make([]model.Exam, len(b.exams))
	copy(exams, b.exams)
	b.mu.Unlock()
	ok(c, exams)
}

func (b *Backend) teacherResults(c *gin.Context) {
	if _, allowed := b.requireRole(c, model.RoleTeacher); !allowed {
		return
	}
	examID := c.Param("examId")

	b.mu.Lock()
	defer b.mu.Unlock()
	results := make([]model.StudentResult, 0)
	for _, r := range b.studentResults {
		if r.ExamID == examID {
			results = append(results, r)
		}
	}
	ok(c, results)
}

func (b *Backend) adjustGrade(c *gin.Context) {
	if _, allowed := b.requireRole(c, model.RoleTeacher); !allowed {
		return
	}
	var req dto.AdjustGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid adjustment payload")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.studentResults {
		if b.studentResults[i].ID != req.ResultID {
			continue
		}
		if req.Score != nil {
			b.studentResults[i].Score = *req.Score
		}
		if req.Feedback != nil {
			b.studentResults[i].Feedback = *req.Feedback
		}
		// Any teacher edit implies sign-off.
		b.studentResults[i].Status = model.ResultApproved
		ok(c, b.studentResults[i])
		return
	}
	fail(c, http.StatusNotFound, "Result not found")
}

func (b *Backend) rubric(c *gin.Context) {
	if _, found := b.authed(c); !found {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	examID := c.Param("examId")

	b.mu.Lock()
	rubric, exists := b.rubrics[examID]
	b.mu.Unlock()
	if !exists {
		fail(c, http.StatusNotFound, "Rubric not found")
		return
	}
	ok(c, rubric)
}

func (b *Backend) studentResultsHandler(c *gin.Context) {
	acc, allowed := b.requireRole(c, model.RoleStudent)
	if !allowed {
		return
	}
	studentID := c.Param("studentId")
	if studentID != acc.User.ID {
		fail(c, http.StatusForbidden, "Insufficient permissions")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	results := make([]model.ExamResult, 0)
	for _, r := range b.examResults {
		if r.StudentID == studentID {
			results = append(results, r)
		}
	}
	ok(c, results)
}
