package dto

import (
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	AdminID   *uuid.UUID `json:"admin_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// AuthorDTO is the public face of a comment author
type AuthorDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AdminDTO represents an admin in API responses
type AdminDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO                `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// AdminListResponse represents a paginated list of admins
type AdminListResponse struct {
	Admins     []AdminDTO               `json:"admins"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AdminID:   user.AdminID,
		CreatedAt: user.CreatedAt,
	}
}

// ToAdminDTO converts an Admin model to AdminDTO
func ToAdminDTO(admin models.Admin) AdminDTO {
	return AdminDTO{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}
}

func ToUserListResponse(users []models.User, params utils.PaginationParams, total int64) UserListResponse {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return UserListResponse{
		Users:      dtos,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}

func ToAdminListResponse(admins []models.Admin, params utils.PaginationParams, total int64) AdminListResponse {
	dtos := make([]AdminDTO, len(admins))
	for i, admin := range admins {
		dtos[i] = ToAdminDTO(admin)
	}
	return AdminListResponse{
		Admins:     dtos,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
