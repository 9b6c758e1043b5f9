package student

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamdh/gradeview/internal/service"
	"github.com/lamdh/gradeview/internal/session"
)

type StudentController struct {
	studentService service.StudentService
	sess           *session.Store
}

func NewStudentController(studentService service.StudentService, sess *session.Store) *StudentController {
	return &StudentController{studentService: studentService, sess: sess}
}

// The student ID always comes from the established session, never from
// the request, so one student has no path to another's results even
// before the backend's own check.
func (ctrl *StudentController) sessionStudentID() string {
	user, _ := ctrl.sess.User()
	return user.ID
}

// GetResults godoc
// @Summary All graded results for the logged-in student
// @Tags student
// @Produce json
// @Success 200 {object} gateway.Result[[]model.ExamResult]
// @Failure 502 {object} gateway.Result[[]model.ExamResult] "Backend failure"
// @Router /student/results [get]
func (ctrl *StudentController) GetResults(c *gin.Context) {
	res := ctrl.studentService.GetResults(ctrl.sessionStudentID())
	if !res.Success {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetExamResult godoc
// @Summary One exam's detailed result for the logged-in student
// @Tags student
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} gateway.Result[model.ExamResult]
// @Failure 404 {object} gateway.Result[model.ExamResult] "Exam result not found"
// @Failure 502 {object} gateway.Result[model.ExamResult] "Backend failure"
// @Router /student/results/{exam_id} [get]
func (ctrl *StudentController) GetExamResult(c *gin.Context) {
	res := ctrl.studentService.GetExamResult(ctrl.sessionStudentID(), c.Param("exam_id"))
	if !res.Success {
		if res.Error == service.ExamResultNotFound {
			c.JSON(http.StatusNotFound, res)
			return
		}
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetRubric godoc
// @Summary Grading rubric for one exam
// @Tags student
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} gateway.Result[model.Rubric]
// @Failure 502 {object} gateway.Result[model.Rubric] "Backend failure"
// @Router /student/exams/{exam_id}/rubric [get]
func (ctrl *StudentController) GetRubric(c *gin.Context) {
	res := ctrl.studentService.GetRubric(c.Param("exam_id"))
	if !res.Success {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
