package models

import "github.com/google/uuid"

type BoardReason string

const (
	ReasonWork     BoardReason = "WORK"
	ReasonStudy    BoardReason = "STUDY"
	ReasonPersonal BoardReason = "PERSONAL"
	ReasonOther    BoardReason = "OTHER"
)

// Valid reports whether r is one of the known board reasons.
func (r BoardReason) Valid() bool {
	switch r {
	case ReasonWork, ReasonStudy, ReasonPersonal, ReasonOther:
		return true
	}
	return false
}

type Board struct {
	Base
	Title   string      `gorm:"type:varchar(255);not null" json:"title"`
	Reason  BoardReason `gorm:"type:varchar(20);not null;default:'OTHER'" json:"reason"`
	UserID  uuid.UUID   `gorm:"type:char(36);not null;index" json:"user_id"`
	AdminID *uuid.UUID  `gorm:"type:char(36);index" json:"admin_id"`

	// Relations
	Owner *User  `gorm:"foreignKey:UserID" json:"-"`
	Admin *Admin `gorm:"foreignKey:AdminID" json:"-"`
	Lists []List `gorm:"foreignKey:BoardID" json:"lists,omitempty"`
}
