package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

// RecordHandler manages the completion records of a student.
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// ─── Enrollments ────────────────────────────────────────────────────────────

// ListEnrollments godoc
// GET /api/v1/admin/students/:student_id/enrollments
func (h *RecordHandler) ListEnrollments(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	enrollments, err := h.recordService.ListEnrollments(c.Request.Context(), studentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// AddEnrollment godoc
// POST /api/v1/admin/students/:student_id/enrollments
// Records a completed course. The same course may be recorded more than once.
func (h *RecordHandler) AddEnrollment(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	var req model.AddEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.recordService.AddEnrollment(c.Request.Context(), studentID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// DeleteEnrollment godoc
// DELETE /api/v1/admin/enrollments/:id
func (h *RecordHandler) DeleteEnrollment(c *gin.Context) {
	id, ok := rowIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recordService.DeleteEnrollment(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "enrollment deleted successfully"})
}

// ─── Program participations ─────────────────────────────────────────────────

// ListParticipations godoc
// GET /api/v1/admin/students/:student_id/participations
func (h *RecordHandler) ListParticipations(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	participations, err := h.recordService.ListParticipations(c.Request.Context(), studentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"participations": participations})
}

// AddParticipation godoc
// POST /api/v1/admin/students/:student_id/participations
func (h *RecordHandler) AddParticipation(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	var req model.AddParticipationRequest
	if !bindJSON(c, &req) {
		return
	}

	participation, err := h.recordService.AddParticipation(c.Request.Context(), studentID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"participation": participation})
}

// DeleteParticipation godoc
// DELETE /api/v1/admin/participations/:id
func (h *RecordHandler) DeleteParticipation(c *gin.Context) {
	id, ok := rowIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recordService.DeleteParticipation(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "participation deleted successfully"})
}

// ─── Exchange attendances ───────────────────────────────────────────────────

// ListAttendances godoc
// GET /api/v1/admin/students/:student_id/attendances
func (h *RecordHandler) ListAttendances(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	attendances, err := h.recordService.ListAttendances(c.Request.Context(), studentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendances": attendances})
}

// AddAttendance godoc
// POST /api/v1/admin/students/:student_id/attendances
func (h *RecordHandler) AddAttendance(c *gin.Context) {
	studentID, ok := recordIDParam(c, "student_id")
	if !ok {
		return
	}

	var req model.AddAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	attendance, err := h.recordService.AddAttendance(c.Request.Context(), studentID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"attendance": attendance})
}

// DeleteAttendance godoc
// DELETE /api/v1/admin/attendances/:id
func (h *RecordHandler) DeleteAttendance(c *gin.Context) {
	id, ok := rowIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recordService.DeleteAttendance(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "attendance deleted successfully"})
}
