package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

// AdminHandler manages staff accounts.
type AdminHandler struct {
	adminService *service.AdminService
	authService  *service.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{adminService: adminService, authService: authService}
}

// CreateAdmin godoc
// POST /api/v1/admin/users
// Creates a REGISTRAR or ADVISOR account.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	admin := &model.Admin{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := h.adminService.Create(c.Request.Context(), admin); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}
