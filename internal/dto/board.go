package dto

import (
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
)

// BoardDTO represents a board in API responses. Lists are only filled in
// for the detail view.
type BoardDTO struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Reason    models.BoardReason `json:"reason"`
	UserID    uuid.UUID          `json:"user_id"`
	AdminID   *uuid.UUID         `json:"admin_id"`
	CreatedAt time.Time          `json:"created_at"`
	Lists     []ListDTO          `json:"lists,omitempty"`
}

// ListDTO represents a list in API responses
type ListDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	BoardID   uuid.UUID `json:"board_id"`
	CreatedAt time.Time `json:"created_at"`
	Tasks     []TaskDTO `json:"tasks,omitempty"`
}

// BoardListResponse represents a paginated list of boards
type BoardListResponse struct {
	Boards     []BoardDTO               `json:"boards"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToBoardDTO converts a Board model, including any loaded lists
func ToBoardDTO(board models.Board) BoardDTO {
	dto := BoardDTO{
		ID:        board.ID,
		Title:     board.Title,
		Reason:    board.Reason,
		UserID:    board.UserID,
		AdminID:   board.AdminID,
		CreatedAt: board.CreatedAt,
	}
	for _, list := range board.Lists {
		dto.Lists = append(dto.Lists, ToListDTO(list))
	}
	return dto
}

// ToListDTO converts a List model, including any loaded tasks
func ToListDTO(list models.List) ListDTO {
	dto := ListDTO{
		ID:        list.ID,
		Title:     list.Title,
		BoardID:   list.BoardID,
		CreatedAt: list.CreatedAt,
	}
	for _, task := range list.Tasks {
		dto.Tasks = append(dto.Tasks, ToTaskDTO(task))
	}
	return dto
}

// ToListDTOs converts a slice of List models
func ToListDTOs(lists []models.List) []ListDTO {
	dtos := make([]ListDTO, len(lists))
	for i, list := range lists {
		dtos[i] = ToListDTO(list)
	}
	return dtos
}

func ToBoardListResponse(boards []models.Board, params utils.PaginationParams, total int64) BoardListResponse {
	dtos := make([]BoardDTO, len(boards))
	for i, board := range boards {
		dtos[i] = ToBoardDTO(board)
	}
	return BoardListResponse{
		Boards:     dtos,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
