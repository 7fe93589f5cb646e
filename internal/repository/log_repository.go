package repository

import (
	"github.com/Lucassfers/My-task-back-end/internal/database"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLogRepository is a GORM implementation of LogRepository
type GormLogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &GormLogRepository{db: db}
}

func (r *GormLogRepository) Create(entry *models.Log) error {
	return r.db.Create(entry).Error
}

func (r *GormLogRepository) ListByUser(userID uuid.UUID) ([]models.Log, error) {
	logs := []models.Log{}
	if err := r.db.Where("user_id = ?", userID).Scopes(database.Newest).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
