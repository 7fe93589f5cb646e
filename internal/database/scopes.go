package database

import (
	"gorm.io/gorm"

	"github.com/Lucassfers/My-task-back-end/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// Newest orders rows by creation time, most recent first.
func Newest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// Oldest orders rows by creation time. Boards, lists and comments are shown
// in the order they were written.
func Oldest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
