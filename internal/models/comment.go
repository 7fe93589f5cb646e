package models

import "github.com/google/uuid"

type Comment struct {
	Base
	Text     string     `gorm:"type:text;not null" json:"text"`
	TaskID   uuid.UUID  `gorm:"type:char(36);not null;index" json:"task_id"`
	AuthorID *uuid.UUID `gorm:"type:char(36);index" json:"author_id"`

	// Relations
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
