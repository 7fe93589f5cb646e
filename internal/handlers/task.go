package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/dto"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/Lucassfers/My-task-back-end/internal/middleware"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService     *services.TaskService
	deletionService *services.DeletionService
}

func NewTaskHandler(taskService *services.TaskService, deletionService *services.DeletionService) *TaskHandler {
	return &TaskHandler{
		taskService:     taskService,
		deletionService: deletionService,
	}
}

// CreateTask creates a new task on a list of the current user's board
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string     `json:"title" binding:"required,max=255"`
		Description string     `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		Highlight   bool       `json:"highlight"`
		ListID      string     `json:"list_id" binding:"required,uuid"`
		AssigneeID  string     `json:"assignee_id" binding:"required,uuid"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Highlight:   req.Highlight,
		ListID:      uuid.MustParse(req.ListID),
		AssigneeID:  uuid.MustParse(req.AssigneeID),
		ActorID:     userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// GetTask returns a task with its comments.
// Access is checked by RequireTaskAccess.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	full, err := h.taskService.GetTask(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*full))
}

// UpdateTask edits a task. Moving it to another list or assignee follows the
// same rules as creating it.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateTaskRequest struct {
		Title        *string    `json:"title" binding:"omitempty,max=255"`
		Description  *string    `json:"description"`
		DueDate      *time.Time `json:"due_date"`
		ClearDueDate bool       `json:"clear_due_date"`
		ListID       *string    `json:"list_id" binding:"omitempty,uuid"`
		AssigneeID   *string    `json:"assignee_id" binding:"omitempty,uuid"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		TaskID:       task.ID,
		ActorID:      userID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	}
	if req.ListID != nil {
		listID := uuid.MustParse(*req.ListID)
		input.ListID = &listID
	}
	if req.AssigneeID != nil {
		assigneeID := uuid.MustParse(*req.AssigneeID)
		input.AssigneeID = &assigneeID
	}

	updated, err := h.taskService.UpdateTask(input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated))
}

// ListListTasks returns the tasks of one of the current user's lists
func (h *TaskHandler) ListListTasks(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.taskService.ListTasks(listID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// ToggleHighlight flips the highlight flag of a task
func (h *TaskHandler) ToggleHighlight(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	updated, err := h.taskService.ToggleHighlight(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated))
}

// ListHighlighted returns tasks on the current user's boards filtered by
// the highlight flag (?value=true|false, default true)
func (h *TaskHandler) ListHighlighted(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	value, err := strconv.ParseBool(c.DefaultQuery("value", "true"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid value, expected true or false")
		return
	}

	tasks, err := h.taskService.ListHighlighted(userID, value)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// DeleteTask removes a task with its comments
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	report, err := h.deletionService.DeleteTask(c.Request.Context(), task.ID)
	if err != nil {
		respondDeletionError(c, err, "Task not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionResponse("Task deleted successfully", report))
}

// AddComment adds a comment by the current user to a task
func (h *TaskHandler) AddComment(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddCommentRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.taskService.AddComment(services.AddCommentInput{
		TaskID:   task.ID,
		AuthorID: userID,
		Text:     req.Text,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// ListComments returns the comments of a task, oldest first
func (h *TaskHandler) ListComments(c *gin.Context) {
	task, ok := taskFromContext(c)
	if !ok {
		return
	}

	comments, err := h.taskService.ListComments(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": dto.ToCommentDTOs(comments),
	})
}

func taskFromContext(c *gin.Context) (models.Task, bool) {
	value, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		apierrors.InternalError(c, "Task not found in context")
		return models.Task{}, false
	}

	task, ok := value.(models.Task)
	if !ok {
		apierrors.InternalError(c, "Invalid task data")
		return models.Task{}, false
	}
	return task, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrAssigneeRequired),
		errors.Is(err, services.ErrInvalidAssignee),
		errors.Is(err, services.ErrCommentEmpty):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrListNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
