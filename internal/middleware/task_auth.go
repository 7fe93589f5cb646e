package middleware

import (
	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/database"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireTaskAccess checks if the user has access to a task.
// The owner of the task's board and the assignee have access.
func RequireTaskAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apierrors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().Where("id = ?", taskID).First(&task).Error; err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		var owners []uuid.UUID
		err = database.GetDB().Model(&models.Board{}).
			Joins("JOIN lists ON lists.board_id = boards.id").
			Where("lists.id = ?", task.ListID).
			Pluck("boards.user_id", &owners).Error
		if err != nil || len(owners) == 0 {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		isOwner := owners[0] == userID
		isAssignee := task.AssigneeID != nil && *task.AssigneeID == userID
		if !isOwner && !isAssignee {
			// Return 404 instead of 403 to avoid leaking task existence
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Set(constants.ContextKeyIsOwner, isOwner)
		c.Next()
	}
}

// RequireTaskOwner restricts a route to the owner of the task's board.
// It must run after RequireTaskAccess.
func RequireTaskOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyIsOwner) {
			apierrors.Forbidden(c, "Only the board owner can perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
