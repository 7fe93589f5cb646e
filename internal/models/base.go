package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the columns shared by every table. IDs are opaque UUIDs assigned on insert.
type Base struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a new ID unless the caller already set one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
