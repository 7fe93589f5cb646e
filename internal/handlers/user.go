package handlers

import (
	"net/http"

	"github.com/Lucassfers/My-task-back-end/internal/dto"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/middleware"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService     *services.AuthService
	deletionService *services.DeletionService
}

func NewUserHandler(authService *services.AuthService, deletionService *services.DeletionService) *UserHandler {
	return &UserHandler{
		authService:     authService,
		deletionService: deletionService,
	}
}

// Signup registers a new user.
func (h *UserHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name     string `json:"name" binding:"required,min=3,max=255"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// GetUser returns a user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.authService.GetUser(id)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ListUsers returns a page of users. Only admins may do this.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	users, total, err := h.authService.ListUsers(params)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params, total))
}

// UpdateUser lets a user change their own name or email
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	if userID != id {
		apierrors.Forbidden(c, "You can only update your own profile")
		return
	}

	type UpdateUserRequest struct {
		Name  *string `json:"name" binding:"omitempty,min=3,max=255"`
		Email *string `json:"email" binding:"omitempty,email"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateUser(services.UpdateUserInput{
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ChangePassword lets a user replace their own password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	if userID != id {
		apierrors.Forbidden(c, "You can only change your own password")
		return
	}

	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(services.ChangePasswordInput{
		UserID:          id,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

// DeleteUser removes a user with their boards and assigned tasks. Only
// admins may do this.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.deletionService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondDeletionError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionResponse("User deleted successfully", report))
}
