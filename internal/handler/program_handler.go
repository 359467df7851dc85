package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

type ProgramHandler struct {
	programService *service.ProgramService
}

func NewProgramHandler(programService *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// ListPrograms godoc
// GET /api/v1/admin/programs
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	q := newQueryFilters(c)
	filter := model.ProgramFilter{
		Year:     q.intValue("year"),
		Semester: model.Semester(q.oneOf("semester", semesters...)),
	}
	if !q.done() {
		return
	}

	programs, err := h.programService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"programs": programs})
}

// GetProgram godoc
// GET /api/v1/admin/programs/:program_id
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	programID, ok := recordIDParam(c, "program_id")
	if !ok {
		return
	}

	program, err := h.programService.GetByID(c.Request.Context(), programID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"program": program})
}

// UpsertProgram godoc
// PUT /api/v1/admin/programs/:program_id
func (h *ProgramHandler) UpsertProgram(c *gin.Context) {
	programID, ok := recordIDParam(c, "program_id")
	if !ok {
		return
	}

	var req model.UpsertProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programService.Register(c.Request.Context(), programID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"program": program})
}

// DeleteProgram godoc
// DELETE /api/v1/admin/programs/:program_id
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	programID, ok := recordIDParam(c, "program_id")
	if !ok {
		return
	}

	if err := h.programService.Delete(c.Request.Context(), programID); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "program deleted successfully"})
}
