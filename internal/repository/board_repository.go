package repository

import (
	"github.com/Lucassfers/My-task-back-end/internal/database"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// Create creates a new board
func (r *GormBoardRepository) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

// FindByID finds a board by ID
func (r *GormBoardRepository) FindByID(id uuid.UUID) (*models.Board, error) {
	var board models.Board
	if err := r.db.Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindWithContent loads the whole board tree in creation order.
func (r *GormBoardRepository) FindWithContent(id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := r.db.
		Preload("Lists", database.Oldest).
		Preload("Lists.Tasks", database.Oldest).
		Preload("Lists.Tasks.Comments", database.Oldest).
		Preload("Lists.Tasks.Comments.Author").
		Where("id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListByOwner lists the boards owned by a user, newest first
func (r *GormBoardRepository) ListByOwner(userID uuid.UUID, params utils.PaginationParams) ([]models.Board, int64, error) {
	query := r.db.Model(&models.Board{}).Where("user_id = ?", userID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	boards := []models.Board{}
	if err := query.Scopes(database.Newest, database.Paginate(params)).Find(&boards).Error; err != nil {
		return nil, 0, err
	}

	return boards, total, nil
}

// Update updates a board
func (r *GormBoardRepository) Update(board *models.Board) error {
	return r.db.Model(board).Select("title", "reason").Updates(board).Error
}

// CreateList creates a new list
func (r *GormBoardRepository) CreateList(list *models.List) error {
	return r.db.Create(list).Error
}

// FindListByID finds a list by ID
func (r *GormBoardRepository) FindListByID(id uuid.UUID) (*models.List, error) {
	var list models.List
	if err := r.db.Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateList updates a list, including moving it to another board
func (r *GormBoardRepository) UpdateList(list *models.List) error {
	return r.db.Model(list).Select("title", "board_id").Updates(list).Error
}

// ListListsByOwner lists the lists on boards owned by userID, ordered by board
// and then by creation.
func (r *GormBoardRepository) ListListsByOwner(userID uuid.UUID) ([]models.List, error) {
	lists := []models.List{}
	err := r.db.
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("boards.user_id = ?", userID).
		Order("lists.board_id ASC").
		Order("lists.created_at ASC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}
