package cascade

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// Executor applies plans inside a single transaction.
type Executor struct {
	db     *gorm.DB
	graph  *Graph
	logger *slog.Logger
}

// NewExecutor returns an Executor that runs plans against db.
func NewExecutor(db *gorm.DB, graph *Graph, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{db: db, graph: graph, logger: logger}
}

// Execute runs every step of plan in one transaction. Either all steps are
// committed and a Report is returned, or the transaction is rolled back and
// the error is a *StoreError or *NotFoundError.
func (e *Executor) Execute(ctx context.Context, plan *Plan) (*Report, error) {
	var report *Report
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := e.apply(tx, plan)
		if err != nil {
			return err
		}
		report = r
		return nil
	})
	if err != nil {
		return nil, asCascadeError(err)
	}
	return report, nil
}

// apply runs the plan against tx. It never commits; the caller owns tx.
func (e *Executor) apply(tx *gorm.DB, plan *Plan) (*Report, error) {
	report := newReport(plan)

	for _, step := range plan.Steps {
		n, err := e.applyStep(tx, step)
		if err != nil {
			e.logger.Warn("cascade step failed",
				"root", plan.Root,
				"root_id", plan.RootID,
				"step", step.Kind.String(),
				"entity", step.Entity,
				"error", err,
			)
			return nil, err
		}

		if step.Kind == StepDeleteRoot {
			// Removed by someone else after planning
			if n == 0 {
				return nil, &NotFoundError{Entity: plan.Root, ID: plan.RootID}
			}
			continue
		}
		report.Affected[step.Category] += n
	}

	return report, nil
}

func (e *Executor) applyStep(tx *gorm.DB, step Step) (int64, error) {
	var total int64
	for _, batch := range chunk(step.IDs, batchSize) {
		var result *gorm.DB
		switch step.Kind {
		case StepDetach:
			result = tx.Model(e.graph.newModel(step.Entity)).
				Where("id IN ?", batch).
				UpdateColumn(step.Field, nil)
		default:
			result = tx.Where("id IN ?", batch).Delete(e.graph.newModel(step.Entity))
		}

		if result.Error != nil {
			return 0, newStoreError(step.Kind.String(), step.Entity, result.Error)
		}
		total += result.RowsAffected
	}
	return total, nil
}
