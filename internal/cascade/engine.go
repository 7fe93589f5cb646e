package cascade

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engine deletes a root row together with everything the relation graph
// ties to it.
type Engine struct {
	db       *gorm.DB
	graph    *Graph
	planner  *Planner
	executor *Executor
	logger   *slog.Logger
}

// NewEngine wires a Planner and an Executor over graph. A nil logger uses slog.Default.
func NewEngine(db *gorm.DB, graph *Graph, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		db:       db,
		graph:    graph,
		planner:  NewPlanner(graph),
		executor: NewExecutor(db, graph, logger),
		logger:   logger,
	}
}

// Plan computes the cascade for a root without changing anything.
func (e *Engine) Plan(ctx context.Context, root Entity, id uuid.UUID) (*Plan, error) {
	return e.planner.Plan(e.db.WithContext(ctx), root, id)
}

// Execute applies a plan previously returned by Plan.
func (e *Engine) Execute(ctx context.Context, plan *Plan) (*Report, error) {
	return e.executor.Execute(ctx, plan)
}

// Delete removes the root and its dependents atomically. A missing root is
// reported before any transaction is opened. Planning and execution share
// one transaction so the collected ids and the writes see the same rows.
func (e *Engine) Delete(ctx context.Context, root Entity, id uuid.UUID) (*Report, error) {
	db := e.db.WithContext(ctx)

	if _, err := e.planner.loadRoot(db, root, id); err != nil {
		return nil, err
	}

	var report *Report
	err := db.Transaction(func(tx *gorm.DB) error {
		plan, err := e.planner.Plan(tx, root, id)
		if err != nil {
			return err
		}
		report, err = e.executor.apply(tx, plan)
		return err
	})
	if err != nil {
		err = asCascadeError(err)
		e.logger.Error("cascade delete rolled back", "root", root, "id", id, "error", err)
		return nil, err
	}

	e.logger.Info("cascade delete committed",
		"root", root,
		"id", id,
		"deleted", report.DeletedRows(),
		"detached", report.DetachedRows(),
	)
	return report, nil
}
