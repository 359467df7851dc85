package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses godoc
// GET /api/v1/admin/courses
// Filters: year, semester, is_required.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	q := newQueryFilters(c)
	filter := model.CourseFilter{
		Year:       q.intValue("year"),
		Semester:   model.Semester(q.oneOf("semester", semesters...)),
		IsRequired: q.boolValue("is_required"),
	}
	if !q.done() {
		return
	}

	courses, err := h.courseService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// GetCourse godoc
// GET /api/v1/admin/courses/:course_id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, ok := recordIDParam(c, "course_id")
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), courseID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// UpsertCourse godoc
// PUT /api/v1/admin/courses/:course_id
func (h *CourseHandler) UpsertCourse(c *gin.Context) {
	courseID, ok := recordIDParam(c, "course_id")
	if !ok {
		return
	}

	var req model.UpsertCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseService.Register(c.Request.Context(), courseID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// DeleteCourse godoc
// DELETE /api/v1/admin/courses/:course_id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	courseID, ok := recordIDParam(c, "course_id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), courseID); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}
