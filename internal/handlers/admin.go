package handlers

import (
	"net/http"

	"github.com/Lucassfers/My-task-back-end/internal/dto"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authService     *services.AuthService
	deletionService *services.DeletionService
}

func NewAdminHandler(authService *services.AuthService, deletionService *services.DeletionService) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		deletionService: deletionService,
	}
}

// CreateAdmin registers another admin. Requires an admin session.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	type CreateAdminRequest struct {
		Name     string `json:"name" binding:"required,max=255"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.authService.CreateAdmin(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminDTO(*admin))
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	admins, total, err := h.authService.ListAdmins(params)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminListResponse(admins, params, total))
}

func (h *AdminHandler) GetAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	admin, err := h.authService.GetAdmin(id)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDTO(*admin))
}

// DeleteAdmin removes an admin. Rows the admin supervised are kept and only
// lose their admin reference.
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.deletionService.DeleteAdmin(c.Request.Context(), id)
	if err != nil {
		respondDeletionError(c, err, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionResponse("Admin deleted successfully", report))
}
