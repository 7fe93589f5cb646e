package handlers

import (
	"errors"

	"github.com/Lucassfers/My-task-back-end/internal/cascade"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseIDParam reads a UUID path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// respondDeletionError maps cascade failures. A rolled back deletion is a
// server error; the client learns whether repeating it may succeed.
func respondDeletionError(c *gin.Context, err error, notFound string) {
	var storeErr *cascade.StoreError
	switch {
	case errors.Is(err, cascade.ErrNotFound):
		apierrors.NotFound(c, notFound)
	case errors.As(err, &storeErr):
		apierrors.OperationFailed(c, "", storeErr.Retryable)
	default:
		apierrors.InternalError(c, "")
	}
}
