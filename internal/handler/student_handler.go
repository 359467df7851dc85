package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

// StudentHandler handles admin-facing student management.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// ListStudents godoc
// GET /api/v1/admin/students
// Lists students with pagination, filtered by name (substring),
// admission_year, degree_program and major.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	q := newQueryFilters(c)
	filter := model.StudentFilter{
		NameContains:  c.Query("name"),
		AdmissionYear: q.intValue("admission_year"),
		DegreeProgram: model.DegreeProgram(q.oneOf("degree_program",
			string(model.DegreeBachelor), string(model.DegreeMaster), string(model.DegreeDoctorate))),
		Major: c.Query("major"),
	}
	if !q.done() {
		return
	}

	students, pagination, err := h.studentService.ListStudents(c.Request.Context(), filter, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, pagination)
}

// GetStudent godoc
// GET /api/v1/admin/students/:student_id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), studentID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// UpsertStudent godoc
// PUT /api/v1/admin/students/:student_id
// Registers a student, or replaces the attributes of an existing one.
func (h *StudentHandler) UpsertStudent(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	var req model.UpsertStudentRequest
	if !bindJSON(c, &req) {
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), studentID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// DeleteStudent godoc
// DELETE /api/v1/admin/students/:student_id
// Removes a student together with all of their records.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), studentID); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
