package handlers

import (
	"errors"
	"net/http"

	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/dto"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/middleware"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyUserID, user.ID.String())
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// AdminLogin authenticates an admin and initializes the session.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.authService.AdminLogin(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyAdminID, admin.ID.String())
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDTO(*admin))
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	var weak *services.WeakPasswordError
	switch {
	case errors.As(err, &weak):
		apierrors.WeakPassword(c, weak.Rules)
	case errors.Is(err, services.ErrNameTooShort),
		errors.Is(err, services.ErrWrongPassword),
		errors.Is(err, services.ErrSamePassword):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAdminNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateUser):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
