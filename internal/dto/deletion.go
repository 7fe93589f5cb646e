package dto

import (
	"github.com/Lucassfers/My-task-back-end/internal/cascade"
	"github.com/Lucassfers/My-task-back-end/internal/models"
)

// DeletionResponse is returned by every DELETE endpoint: the removed row as
// it was and the number of affected rows per category.
type DeletionResponse struct {
	Message     string           `json:"message"`
	DeletedRoot any              `json:"deleted_root"`
	Affected    map[string]int64 `json:"affected"`
}

func ToDeletionResponse(message string, report *cascade.Report) DeletionResponse {
	return DeletionResponse{
		Message:     message,
		DeletedRoot: rootDTO(report.DeletedRoot),
		Affected:    report.Affected,
	}
}

func rootDTO(root any) any {
	switch v := root.(type) {
	case *models.User:
		return ToUserDTO(*v)
	case *models.Admin:
		return ToAdminDTO(*v)
	case *models.Board:
		return ToBoardDTO(*v)
	case *models.List:
		return ToListDTO(*v)
	case *models.Task:
		return ToTaskDTO(*v)
	default:
		return v
	}
}
