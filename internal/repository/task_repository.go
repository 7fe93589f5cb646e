package repository

import (
	"github.com/Lucassfers/My-task-back-end/internal/database"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uuid.UUID, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// FindBoardID resolves the board of a task through its list.
func (r *GormTaskRepository) FindBoardID(taskID uuid.UUID) (uuid.UUID, error) {
	var boardIDs []uuid.UUID
	err := r.db.Model(&models.List{}).
		Joins("JOIN tasks ON tasks.list_id = lists.id").
		Where("tasks.id = ?", taskID).
		Pluck("lists.board_id", &boardIDs).Error
	if err != nil {
		return uuid.Nil, err
	}
	if len(boardIDs) == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return boardIDs[0], nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Model(task).
		Select("title", "description", "due_date", "list_id", "assignee_id").
		Updates(task).Error
}

// ListByList lists the tasks of a list, oldest first
func (r *GormTaskRepository) ListByList(listID uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.Where("list_id = ?", listID).Scopes(database.Oldest).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetHighlight updates the highlight flag of a task
func (r *GormTaskRepository) SetHighlight(id uuid.UUID, highlight bool) error {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Update("highlight", highlight)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListHighlighted lists the tasks on boards owned by ownerID with the given
// highlight flag, soonest due first.
func (r *GormTaskRepository) ListHighlighted(ownerID uuid.UUID, highlight bool) ([]models.Task, error) {
	boardLists := r.db.Model(&models.List{}).
		Select("lists.id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("boards.user_id = ?", ownerID)

	tasks := []models.Task{}
	err := r.db.
		Where("list_id IN (?)", boardLists).
		Where("highlight = ?", highlight).
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateComment creates a new comment
func (r *GormTaskRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListComments lists the comments of a task, oldest first
func (r *GormTaskRepository) ListComments(taskID uuid.UUID) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.Preload("Author").
		Where("task_id = ?", taskID).
		Scopes(database.Oldest).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
