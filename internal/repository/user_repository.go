package repository

import (
	"errors"
	"fmt"

	"github.com/Lucassfers/My-task-back-end/internal/database"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrUpdatePassword is returned when storing the new hash fails inside the password transaction.
	ErrUpdatePassword = errors.New("user repository: update password failed")
	// ErrCreateLog is returned when writing the audit entry fails inside the password transaction.
	ErrCreateLog = errors.New("user repository: create log failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePasswordWithLog stores the new hash and the audit entry atomically.
func (r *GormUserRepository) UpdatePasswordWithLog(userID uuid.UUID, passwordHash string, entry *models.Log) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash)
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrUpdatePassword, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateLog, err)
		}

		return nil
	})
}

// Update updates a user's name and email
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Model(user).Select("name", "email").Updates(user).Error
}

// List lists users ordered by name
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, int64, error) {
	return listByName[models.User](r.db, params)
}

// GormAdminRepository is a GORM implementation of AdminRepository
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *GormAdminRepository) FindByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) List(params utils.PaginationParams) ([]models.Admin, int64, error) {
	return listByName[models.Admin](r.db, params)
}

func listByName[T any](db *gorm.DB, params utils.PaginationParams) ([]T, int64, error) {
	query := db.Model(new(T)).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []T{}
	if err := query.Order("name ASC").Scopes(database.Paginate(params)).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
