package middleware

import (
	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/database"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireBoardOwner checks that the board in the URL belongs to the current user
func RequireBoardOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		boardID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apierrors.BadRequest(c, "Invalid board ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var board models.Board
		err = database.GetDB().Where("id = ?", boardID).First(&board).Error
		// Return 404 instead of 403 to avoid leaking board existence
		if err != nil || board.UserID != userID {
			apierrors.NotFound(c, "Board not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyBoard, board)
		c.Next()
	}
}
