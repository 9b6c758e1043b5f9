package service_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamdh/gradeview/config"
	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/fixture"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/model"
	"github.com/lamdh/gradeview/internal/service"
	"github.com/lamdh/gradeview/internal/session"
)

// countingTransport counts outbound round trips so tests can assert
// that local validation never reaches the network.
type countingTransport struct {
	base  http.RoundTripper
	calls int
}

func (ct *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ct.calls++
	return ct.base.RoundTrip(req)
}

type env struct {
	sess      *session.Store
	transport *countingTransport
	auth      service.AuthService
	teacher   service.TeacherService
	student   service.StudentService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	srv := httptest.NewServer(fixture.New().Handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Session.Dir = t.TempDir()
	cfg.Upload.MaxFiles = 10
	cfg.Upload.MaxFileSizeMB = 10

	sess, err := session.NewStore(cfg)
	require.NoError(t, err)

	transport := &countingTransport{base: http.DefaultTransport}
	client := gateway.New(gateway.Options{BaseURL: srv.URL, Transport: transport}, sess)

	teacherSvc := service.NewTeacherService(client, cfg)
	return &env{
		sess:      sess,
		transport: transport,
		auth:      service.NewAuthService(client, sess),
		teacher:   teacherSvc,
		student:   service.NewStudentService(client, teacherSvc),
	}
}

func (e *env) loginAs(t *testing.T, email string) model.User {
	t.Helper()
	res := e.auth.Login(email, "password")
	require.True(t, res.Success, "login failed: %s", res.Error)
	require.NoError(t, e.sess.Establish(res.Data.User, res.Data.Token))
	return res.Data.User
}

func pdf(name string, size int64) gateway.File {
	return gateway.File{Name: name, Size: size, Content: strings.NewReader("%PDF")}
}

func TestLoginSeededIdentities(t *testing.T) {
	e := newEnv(t)

	res := e.auth.Login("teacher@example.com", "password")
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Data.Token)
	assert.Equal(t, model.RoleTeacher, res.Data.User.Role)

	res = e.auth.Login("student@example.com", "password")
	require.True(t, res.Success)
	assert.Equal(t, model.RoleStudent, res.Data.User.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newEnv(t)

	res := e.auth.Login("teacher@example.com", "wrong")
	require.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Error)
	assert.Nil(t, res.Data)

	res = e.auth.Login("nobody@example.com", "password")
	require.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Error)
}

func TestLogoutClearsSession(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")
	require.True(t, e.sess.Authenticated())

	e.auth.Logout()
	assert.False(t, e.sess.Authenticated())
	assert.Empty(t, e.sess.Token())
}

func TestGetExamsPreservesBackendOrder(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	res := e.teacher.GetExams()
	require.True(t, res.Success)
	exams := res.Value()
	require.Len(t, exams, 3)

	// Backend order, newest first; no client-side re-sort.
	assert.Equal(t, "exam2", exams[0].ID)
	assert.Equal(t, "exam3", exams[1].ID)
	assert.Equal(t, "exam1", exams[2].ID)

	// The processing exam must not offer a results view.
	assert.Equal(t, model.ExamProcessing, exams[0].Status)
	assert.False(t, exams[0].Status.ResultsAvailable())
}

func TestGetExamsRequiresAuthentication(t *testing.T) {
	e := newEnv(t)

	res := e.teacher.GetExams()
	require.False(t, res.Success)
	assert.Equal(t, "Authentication required", res.Error)
}

func TestUploadExamsRejectsTooManyFilesWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")
	e.transport.calls = 0

	files := make([]gateway.File, 11)
	for i := range files {
		files[i] = pdf("exam.pdf", 128)
	}

	res := e.teacher.UploadExams(files)
	require.False(t, res.Success)
	assert.Contains(t, res.Error, "Too many files")
	assert.Zero(t, e.transport.calls, "validation failure must not reach the network")
}

func TestUploadExamsRejectsOversizedFileWithoutNetwork(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")
	e.transport.calls = 0

	res := e.teacher.UploadExams([]gateway.File{pdf("huge.pdf", 11<<20)})
	require.False(t, res.Success)
	assert.Contains(t, res.Error, "size limit")
	assert.Zero(t, e.transport.calls)
}

func TestUploadExamsRejectsEmptySelection(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")
	e.transport.calls = 0

	res := e.teacher.UploadExams(nil)
	require.False(t, res.Success)
	assert.Zero(t, e.transport.calls)
}

func TestUploadExamsCreatesProcessingExam(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	res := e.teacher.UploadExams([]gateway.File{pdf("quiz4.pdf", 128)})
	require.True(t, res.Success, res.Error)
	exam := res.Value()
	assert.NotEmpty(t, exam.ID)
	assert.Equal(t, model.ExamProcessing, exam.Status)

	list := e.teacher.GetExams()
	require.True(t, list.Success)
	assert.Len(t, list.Value(), 4)
}

func TestUploadMaterials(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	res := e.teacher.UploadMaterials([]gateway.File{pdf("syllabus.pdf", 256)})
	require.True(t, res.Success, res.Error)
	material := res.Value()
	assert.Equal(t, "pdf", material.Type)
	assert.NotEmpty(t, material.ID)
}

func TestGetExamResults(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	res := e.teacher.GetExamResults("exam1")
	require.True(t, res.Success)
	results := res.Value()
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, "exam1", r.ExamID)
	}
}

func TestAdjustFeedbackApprovesAndKeepsUnsuppliedFields(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	before := e.teacher.GetExamResults("exam1")
	require.True(t, before.Success)
	var original model.StudentResult
	for _, r := range before.Value() {
		if r.ID == "result1" {
			original = r
		}
	}
	require.Equal(t, model.ResultGraded, original.Status)

	score := 90.0
	res := e.teacher.AdjustFeedback("result1", dto.FeedbackUpdate{Score: &score})
	require.True(t, res.Success, res.Error)

	updated := res.Value()
	assert.Equal(t, 90.0, updated.Score)
	assert.Equal(t, model.ResultApproved, updated.Status)
	// Feedback was not supplied, so it must be untouched.
	assert.Equal(t, original.Feedback, updated.Feedback)
}

func TestAdjustFeedbackPartialFeedbackOnly(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	feedback := "Revisited: solid work on the later questions."
	res := e.teacher.AdjustFeedback("result3", dto.FeedbackUpdate{Feedback: &feedback})
	require.True(t, res.Success, res.Error)

	updated := res.Value()
	assert.Equal(t, feedback, updated.Feedback)
	assert.Equal(t, 78.0, updated.Score)
	assert.Equal(t, model.ResultApproved, updated.Status)
}

func TestGetRubric(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "teacher@example.com")

	res := e.teacher.GetRubric("exam1")
	require.True(t, res.Success)
	rubric := res.Value()
	assert.Equal(t, "exam1", rubric.ExamID)
	require.Len(t, rubric.Items, 3)
	assert.Equal(t, 1, rubric.Items[0].QuestionNumber)
}

func TestStudentGetResultsFeedbackSumsMatchTotals(t *testing.T) {
	e := newEnv(t)
	user := e.loginAs(t, "student@example.com")

	res := e.student.GetResults(user.ID)
	require.True(t, res.Success)
	results := res.Value()
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, user.ID, r.StudentID)
		assert.Equal(t, r.TotalScore, r.FeedbackSum(), "feedback items must sum to the total for %s", r.ID)
	}
}

func TestStudentGetExamResultFiltersLocally(t *testing.T) {
	e := newEnv(t)
	user := e.loginAs(t, "student@example.com")

	res := e.student.GetExamResult(user.ID, "exam1")
	require.True(t, res.Success)
	result := res.Value()
	assert.Equal(t, "er1", result.ID)
	assert.Equal(t, result.TotalScore, result.FeedbackSum())

	missing := e.student.GetExamResult(user.ID, "exam999")
	require.False(t, missing.Success)
	assert.Equal(t, "Exam result not found", missing.Error)
}

func TestStudentCannotReadAnotherStudentsResults(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "student@example.com")

	res := e.student.GetResults("s2")
	require.False(t, res.Success)
	assert.Equal(t, "Insufficient permissions", res.Error)
}

func TestStudentGetRubricDelegates(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "student@example.com")

	res := e.student.GetRubric("exam3")
	require.True(t, res.Success)
	assert.Equal(t, "exam3", res.Value().ExamID)
}
