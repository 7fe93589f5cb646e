package models

import "github.com/google/uuid"

// Log is an audit trail entry. Its actor references are detached, never
// deleted, when the actor goes away.
type Log struct {
	Base
	Description string     `gorm:"type:varchar(255);not null" json:"description"`
	Supplement  string     `gorm:"type:text" json:"supplement"`
	UserID      *uuid.UUID `gorm:"type:char(36);index" json:"user_id"`
	AdminID     *uuid.UUID `gorm:"type:char(36);index" json:"admin_id"`

	// Relations
	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Admin *Admin `gorm:"foreignKey:AdminID" json:"-"`
}
