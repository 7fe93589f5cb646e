package utils

import (
	"strconv"

	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// GetPaginationParams reads page and limit from the query string, clamping
// anything out of range to the defaults.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func NewPaginationResponse(params PaginationParams, total int64) PaginationResponse {
	pages := 0
	if params.Limit > 0 {
		pages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}
	return PaginationResponse{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
