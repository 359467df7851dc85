package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

type ExchangeHandler struct {
	exchangeService *service.ExchangeService
}

func NewExchangeHandler(exchangeService *service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: exchangeService}
}

// ListExchanges godoc
// GET /api/v1/admin/exchanges
func (h *ExchangeHandler) ListExchanges(c *gin.Context) {
	q := newQueryFilters(c)
	filter := model.ExchangeFilter{
		Year:  q.intValue("year"),
		Round: q.intValue("round"),
	}
	if !q.done() {
		return
	}

	exchanges, err := h.exchangeService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exchanges": exchanges})
}

// GetExchange godoc
// GET /api/v1/admin/exchanges/:exchange_id
func (h *ExchangeHandler) GetExchange(c *gin.Context) {
	exchangeID, ok := recordIDParam(c, "exchange_id")
	if !ok {
		return
	}

	exchange, err := h.exchangeService.GetByID(c.Request.Context(), exchangeID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exchange": exchange})
}

// UpsertExchange godoc
// PUT /api/v1/admin/exchanges/:exchange_id
func (h *ExchangeHandler) UpsertExchange(c *gin.Context) {
	exchangeID, ok := recordIDParam(c, "exchange_id")
	if !ok {
		return
	}

	var req model.UpsertExchangeRequest
	if !bindJSON(c, &req) {
		return
	}

	exchange, err := h.exchangeService.Register(c.Request.Context(), exchangeID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exchange": exchange})
}

// DeleteExchange godoc
// DELETE /api/v1/admin/exchanges/:exchange_id
func (h *ExchangeHandler) DeleteExchange(c *gin.Context) {
	exchangeID, ok := recordIDParam(c, "exchange_id")
	if !ok {
		return
	}

	if err := h.exchangeService.Delete(c.Request.Context(), exchangeID); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "exchange deleted successfully"})
}
