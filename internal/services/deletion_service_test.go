package services

import (
	"context"
	"testing"

	"github.com/Lucassfers/My-task-back-end/internal/cascade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDeleter struct {
	root cascade.Entity
	id   uuid.UUID
	err  error
}

func (d *recordingDeleter) Delete(ctx context.Context, root cascade.Entity, id uuid.UUID) (*cascade.Report, error) {
	d.root, d.id = root, id
	if d.err != nil {
		return nil, d.err
	}
	return &cascade.Report{Root: root, Affected: map[string]int64{}}, nil
}

func TestDeletionService_RoutesToEntity(t *testing.T) {
	deleter := &recordingDeleter{}
	svc := NewDeletionService(deleter)
	ctx := context.Background()

	tests := []struct {
		want cascade.Entity
		call func(uuid.UUID) (*cascade.Report, error)
	}{
		{cascade.EntityUser, func(id uuid.UUID) (*cascade.Report, error) { return svc.DeleteUser(ctx, id) }},
		{cascade.EntityAdmin, func(id uuid.UUID) (*cascade.Report, error) { return svc.DeleteAdmin(ctx, id) }},
		{cascade.EntityBoard, func(id uuid.UUID) (*cascade.Report, error) { return svc.DeleteBoard(ctx, id) }},
		{cascade.EntityList, func(id uuid.UUID) (*cascade.Report, error) { return svc.DeleteList(ctx, id) }},
		{cascade.EntityTask, func(id uuid.UUID) (*cascade.Report, error) { return svc.DeleteTask(ctx, id) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			id := uuid.New()
			report, err := tt.call(id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleter.root)
			assert.Equal(t, id, deleter.id)
			assert.Equal(t, tt.want, report.Root)
		})
	}
}

func TestDeletionService_PassesErrorsThrough(t *testing.T) {
	storeErr := &cascade.StoreError{Op: "delete", Entity: cascade.EntityTask, Retryable: true}
	svc := NewDeletionService(&recordingDeleter{err: storeErr})

	_, err := svc.DeleteUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, cascade.ErrStore)

	var se *cascade.StoreError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.Retryable)
}

func TestDeletionService_WithEngine(t *testing.T) {
	env := setupServiceTestEnv(t)
	owner := env.signup(t, "owner")
	list := createListFor(t, env, owner)
	_, err := env.tasks.CreateTask(CreateTaskInput{Title: "t", ListID: list.ID, AssigneeID: owner.ID, ActorID: owner.ID})
	require.NoError(t, err)

	svc := NewDeletionService(cascade.NewEngine(env.db, cascade.DefaultGraph(), nil))

	report, err := svc.DeleteList(context.Background(), list.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Count("tasks_deleted"))

	_, err = svc.DeleteList(context.Background(), list.ID)
	require.ErrorIs(t, err, cascade.ErrNotFound)
}
