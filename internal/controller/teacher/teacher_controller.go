package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/model"
	"github.com/lamdh/gradeview/internal/service"
)

type TeacherController struct {
	teacherService service.TeacherService
}

func NewTeacherController(teacherService service.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// formFiles converts the request's multipart files into gateway files.
// The returned closer releases the opened handles.
func formFiles(c *gin.Context) ([]gateway.File, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}
	headers := form.File["files"]

	files := make([]gateway.File, 0, len(headers))
	var closers []func() error
	closeAll := func() {
		for _, cl := range closers {
			_ = cl()
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, f.Close)
		files = append(files, gateway.File{Name: fh.Filename, Size: fh.Size, Content: f})
	}
	return files, closeAll, nil
}

// UploadMaterials godoc
// @Summary Upload course materials for grading context
// @Tags teacher
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Course material files"
// @Success 200 {object} gateway.Result[model.CourseMaterial]
// @Failure 400 {object} gateway.Result[model.CourseMaterial] "Validation or upload failure"
// @Router /teacher/materials [post]
func (ctrl *TeacherController) UploadMaterials(c *gin.Context) {
	files, closeAll, err := formFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid multipart payload", Details: []string{err.Error()}})
		return
	}
	defer closeAll()

	res := ctrl.teacherService.UploadMaterials(files)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UploadExams godoc
// @Summary Upload completed exams for grading
// @Tags teacher
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Scanned exam files"
// @Success 200 {object} gateway.Result[model.Exam]
// @Failure 400 {object} gateway.Result[model.Exam] "Validation or upload failure"
// @Router /teacher/exams [post]
func (ctrl *TeacherController) UploadExams(c *gin.Context) {
	files, closeAll, err := formFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid multipart payload", Details: []string{err.Error()}})
		return
	}
	defer closeAll()

	res := ctrl.teacherService.UploadExams(files)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetExams godoc
// @Summary List uploaded exams
// @Description Ordering is the backend's, typically newest first. Exams still
// @Description processing carry resultsAvailable=false and offer no results view.
// @Tags teacher
// @Produce json
// @Success 200 {object} gateway.Result[[]dto.ExamResponse]
// @Failure 502 {object} gateway.Result[[]dto.ExamResponse] "Backend failure"
// @Router /teacher/exams [get]
func (ctrl *TeacherController) GetExams(c *gin.Context) {
	res := ctrl.teacherService.GetExams()
	if !res.Success {
		c.JSON(http.StatusBadGateway, gateway.Fail[[]dto.ExamResponse](res.Error))
		return
	}

	exams := res.Value()
	views := make([]dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		var view dto.ExamResponse
		if err := copier.Copy(&view, &exam); err != nil {
			log.Error().Err(err).Msg("Failed to copy Exam to ExamResponse")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to prepare exam list"})
			return
		}
		view.ResultsAvailable = exam.Status.ResultsAvailable()
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gateway.OK(views))
}

// GetExamResults godoc
// @Summary Per-student results for one exam
// @Tags teacher
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} gateway.Result[[]model.StudentResult]
// @Failure 409 {object} gateway.Result[[]model.StudentResult] "Exam still processing"
// @Failure 502 {object} gateway.Result[[]model.StudentResult] "Backend failure"
// @Router /teacher/exams/{exam_id}/results [get]
func (ctrl *TeacherController) GetExamResults(c *gin.Context) {
	examID := c.Param("exam_id")

	// The status machine only allows viewing results once grading
	// finished; a processing exam gets a conflict, not an empty list.
	if exams := ctrl.teacherService.GetExams(); exams.Success {
		for _, exam := range exams.Value() {
			if exam.ID == examID && !exam.Status.ResultsAvailable() {
				c.JSON(http.StatusConflict, gateway.Fail[[]model.StudentResult]("Exam is still processing"))
				return
			}
		}
	}

	res := ctrl.teacherService.GetExamResults(examID)
	if !res.Success {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AdjustFeedback godoc
// @Summary Adjust a student's score or feedback
// @Description Partial update; omitted fields stay unchanged. Any edit marks
// @Description the result approved.
// @Tags teacher
// @Accept json
// @Produce json
// @Param result_id path string true "Student result ID"
// @Param updates body dto.FeedbackUpdate true "Fields to change"
// @Success 200 {object} gateway.Result[model.StudentResult]
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or no changes"
// @Router /teacher/results/{result_id}/feedback [post]
func (ctrl *TeacherController) AdjustFeedback(c *gin.Context) {
	resultID := c.Param("result_id")

	var updates dto.FeedbackUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		log.Warn().Err(err).Msg("Failed to bind FeedbackUpdate")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if updates.Score == nil && updates.Feedback == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No changes supplied"})
		return
	}

	res := ctrl.teacherService.AdjustFeedback(resultID, updates)
	if !res.Success {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetRubric godoc
// @Summary Grading rubric for one exam
// @Tags teacher
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} gateway.Result[model.Rubric]
// @Failure 502 {object} gateway.Result[model.Rubric] "Backend failure"
// @Router /teacher/exams/{exam_id}/rubric [get]
func (ctrl *TeacherController) GetRubric(c *gin.Context) {
	res := ctrl.teacherService.GetRubric(c.Param("exam_id"))
	if !res.Success {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
