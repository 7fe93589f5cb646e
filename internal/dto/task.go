package dto

import (
	"time"

	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/google/uuid"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"due_date"`
	Highlight   bool         `json:"highlight"`
	ListID      uuid.UUID    `json:"list_id"`
	AssigneeID  *uuid.UUID   `json:"assignee_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Comments    []CommentDTO `json:"comments,omitempty"`
}

// CommentDTO represents a comment in API responses. AuthorID is null once
// the author's account has been deleted.
type CommentDTO struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	TaskID    uuid.UUID  `json:"task_id"`
	AuthorID  *uuid.UUID `json:"author_id"`
	Author    *AuthorDTO `json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Highlight:   task.Highlight,
		ListID:      task.ListID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	for _, comment := range task.Comments {
		dto.Comments = append(dto.Comments, ToCommentDTO(comment))
	}
	return dto
}

func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        comment.ID,
		Text:      comment.Text,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		dto.Author = &AuthorDTO{ID: comment.Author.ID, Name: comment.Author.Name}
	}
	return dto
}

func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToCommentDTO(comment)
	}
	return dtos
}
