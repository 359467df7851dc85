package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

// EligibilityHandler exposes the graduation eligibility check.
type EligibilityHandler struct {
	eligibilityService *service.EligibilityService
}

// NewEligibilityHandler creates a new EligibilityHandler.
func NewEligibilityHandler(eligibilityService *service.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{eligibilityService: eligibilityService}
}

// Evaluate godoc
// GET /api/v1/admin/students/:student_id/eligibility
// Returns the four completion metrics, the verdict, and the thresholds
// missed. A student without records gets a zero, failing verdict.
func (h *EligibilityHandler) Evaluate(c *gin.Context) {
	studentID, ok := lookupKeyParam(c, "student_id")
	if !ok {
		return
	}

	verdict, err := h.eligibilityService.Evaluate(c.Request.Context(), studentID)
	if err != nil {
		// Storage details stay in the server log.
		response.Fail(c, http.StatusInternalServerError, response.ErrEligibilityUnavailable)
		return
	}

	response.Success(c, http.StatusOK, verdict)
}
