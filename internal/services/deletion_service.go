package services

import (
	"context"

	"github.com/Lucassfers/My-task-back-end/internal/cascade"
	"github.com/google/uuid"
)

// Deleter removes a root row and everything tied to it in one transaction.
type Deleter interface {
	Delete(ctx context.Context, root cascade.Entity, id uuid.UUID) (*cascade.Report, error)
}

// DeletionService is the single entry point for removing aggregates. Errors
// are the cascade package's typed errors so callers can tell a missing root
// from a rolled back write.
type DeletionService struct {
	deleter Deleter
}

func NewDeletionService(deleter Deleter) *DeletionService {
	return &DeletionService{deleter: deleter}
}

func (s *DeletionService) DeleteUser(ctx context.Context, id uuid.UUID) (*cascade.Report, error) {
	return s.deleter.Delete(ctx, cascade.EntityUser, id)
}

// DeleteAdmin only detaches: boards, users and logs supervised by the admin
// stay in place.
func (s *DeletionService) DeleteAdmin(ctx context.Context, id uuid.UUID) (*cascade.Report, error) {
	return s.deleter.Delete(ctx, cascade.EntityAdmin, id)
}

func (s *DeletionService) DeleteBoard(ctx context.Context, id uuid.UUID) (*cascade.Report, error) {
	return s.deleter.Delete(ctx, cascade.EntityBoard, id)
}

func (s *DeletionService) DeleteList(ctx context.Context, id uuid.UUID) (*cascade.Report, error) {
	return s.deleter.Delete(ctx, cascade.EntityList, id)
}

func (s *DeletionService) DeleteTask(ctx context.Context, id uuid.UUID) (*cascade.Report, error) {
	return s.deleter.Delete(ctx, cascade.EntityTask, id)
}
