package models

import "github.com/google/uuid"

type User struct {
	Base
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	AdminID      *uuid.UUID `gorm:"type:char(36);index" json:"admin_id"`

	// Relations
	Admin *Admin `gorm:"foreignKey:AdminID" json:"-"`
}
