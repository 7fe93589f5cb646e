package models

import "github.com/google/uuid"

type List struct {
	Base
	Title   string    `gorm:"type:varchar(255);not null" json:"title"`
	BoardID uuid.UUID `gorm:"type:char(36);not null;index" json:"board_id"`

	// Relations
	Tasks []Task `gorm:"foreignKey:ListID" json:"tasks,omitempty"`
}
