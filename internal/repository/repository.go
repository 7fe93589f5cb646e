package repository

import (
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// UpdatePasswordWithLog stores a new password hash and its audit entry
	// within a single transaction.
	UpdatePasswordWithLog(userID uuid.UUID, passwordHash string, entry *models.Log) error

	// Update saves a user's profile fields
	Update(user *models.User) error

	// List lists users by name
	List(params utils.PaginationParams) ([]models.User, int64, error)
}

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	// Create creates a new admin
	Create(admin *models.Admin) error

	// FindByID finds an admin by ID
	FindByID(id uuid.UUID) (*models.Admin, error)

	// FindByEmail finds an admin by email
	FindByEmail(email string) (*models.Admin, error)

	// List lists admins by name
	List(params utils.PaginationParams) ([]models.Admin, int64, error)
}

// BoardRepository defines the interface for board and list data access
type BoardRepository interface {
	// Create creates a new board
	Create(board *models.Board) error

	// FindByID finds a board by ID without its content
	FindByID(id uuid.UUID) (*models.Board, error)

	// FindWithContent finds a board with its lists, tasks and comments
	FindWithContent(id uuid.UUID) (*models.Board, error)

	// ListByOwner lists the boards owned by a user, newest first
	ListByOwner(userID uuid.UUID, params utils.PaginationParams) ([]models.Board, int64, error)

	// Update saves a board's title and reason
	Update(board *models.Board) error

	// CreateList creates a new list
	CreateList(list *models.List) error

	// UpdateList saves a list's title and board
	UpdateList(list *models.List) error

	// ListListsByOwner lists the lists on a user's boards grouped by board
	ListListsByOwner(userID uuid.UUID) ([]models.List, error)

	// FindListByID finds a list by ID
	FindListByID(id uuid.UUID) (*models.List, error)
}

// TaskRepository defines the interface for task and comment data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uuid.UUID, preload ...string) (*models.Task, error)

	// FindBoardID returns the board a task belongs to
	FindBoardID(taskID uuid.UUID) (uuid.UUID, error)

	// Update saves a task's editable fields
	Update(task *models.Task) error

	// ListByList lists the tasks of a list, oldest first
	ListByList(listID uuid.UUID) ([]models.Task, error)

	// SetHighlight updates the highlight flag of a task
	SetHighlight(id uuid.UUID, highlight bool) error

	// ListHighlighted lists the tasks on a user's boards by highlight flag
	ListHighlighted(ownerID uuid.UUID, highlight bool) ([]models.Task, error)

	// CreateComment creates a new comment
	CreateComment(comment *models.Comment) error

	// ListComments lists the comments of a task, oldest first
	ListComments(taskID uuid.UUID) ([]models.Comment, error)
}

// LogRepository defines the interface for audit log data access
type LogRepository interface {
	// Create creates a new log entry
	Create(entry *models.Log) error

	// ListByUser lists the log entries of a user, newest first
	ListByUser(userID uuid.UUID) ([]models.Log, error)
}
