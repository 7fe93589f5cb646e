package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidAssignee  = errors.New("assignee does not exist")
	ErrCommentEmpty     = errors.New("comment text cannot be empty")
	ErrAssigneeRequired = errors.New("assignee is required")
)

// TaskService handles task and comment business logic
type TaskService struct {
	taskRepo  repository.TaskRepository
	boardRepo repository.BoardRepository
	userRepo  repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, boardRepo repository.BoardRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Highlight   bool
	ListID      uuid.UUID
	AssigneeID  uuid.UUID
	ActorID     uuid.UUID
}

// CreateTask creates a task on a list of one of the actor's boards.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if input.AssigneeID == uuid.Nil {
		return nil, ErrAssigneeRequired
	}

	if err := s.checkListOwner(input.ListID, input.ActorID); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(input.AssigneeID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Highlight:   input.Highlight,
		ListID:      input.ListID,
		AssigneeID:  &input.AssigneeID,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTaskInput represents a partial task update. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	TaskID       uuid.UUID
	ActorID      uuid.UUID
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	ListID       *uuid.UUID
	AssigneeID   *uuid.UUID
}

// UpdateTask edits a task. Moving it requires the target list to be on one of
// the actor's boards, and a new assignee must be an existing user.
func (s *TaskService) UpdateTask(input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(input.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.ListID != nil && *input.ListID != task.ListID {
		if err := s.checkListOwner(*input.ListID, input.ActorID); err != nil {
			return nil, err
		}
		task.ListID = *input.ListID
	}
	if input.AssigneeID != nil {
		if err := s.checkAssignee(*input.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = input.AssigneeID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// ListTasks returns the tasks of a list on one of the actor's boards.
func (s *TaskService) ListTasks(listID, actorID uuid.UUID) ([]models.Task, error) {
	if err := s.checkListOwner(listID, actorID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByList(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task with its comments
func (s *TaskService) GetTask(taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Comments", "Comments.Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// ToggleHighlight flips the highlight flag and returns the updated task.
func (s *TaskService) ToggleHighlight(taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Highlight = !task.Highlight
	if err := s.taskRepo.SetHighlight(task.ID, task.Highlight); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// ListHighlighted returns the tasks on the owner's boards with the given
// highlight flag.
func (s *TaskService) ListHighlighted(ownerID uuid.UUID, highlight bool) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListHighlighted(ownerID, highlight)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// AddCommentInput represents input for commenting on a task
type AddCommentInput struct {
	TaskID   uuid.UUID
	AuthorID uuid.UUID
	Text     string
}

func (s *TaskService) AddComment(input AddCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrCommentEmpty
	}

	if _, err := s.taskRepo.FindByID(input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comment := &models.Comment{
		Text:     text,
		TaskID:   input.TaskID,
		AuthorID: &input.AuthorID,
	}
	if err := s.taskRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (s *TaskService) ListComments(taskID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.taskRepo.ListComments(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// checkListOwner reports lists on other users' boards as missing.
func (s *TaskService) checkListOwner(listID, actorID uuid.UUID) error {
	list, err := s.boardRepo.FindListByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("failed to find list: %w", err)
	}
	board, err := s.boardRepo.FindByID(list.BoardID)
	if err != nil {
		return fmt.Errorf("failed to find board: %w", err)
	}
	if board.UserID != actorID {
		return ErrListNotFound
	}
	return nil
}

func (s *TaskService) checkAssignee(userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidAssignee
		}
		return fmt.Errorf("failed to find assignee: %w", err)
	}
	return nil
}
