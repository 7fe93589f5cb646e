package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Base
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Highlight   bool       `gorm:"not null;default:false" json:"highlight"`
	ListID      uuid.UUID  `gorm:"type:char(36);not null;index" json:"list_id"`
	AssigneeID  *uuid.UUID `gorm:"type:char(36);index" json:"assignee_id"`

	// Relations
	Assignee *User     `gorm:"foreignKey:AssigneeID" json:"-"`
	Comments []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
