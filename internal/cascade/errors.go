package cascade

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("cascade: root not found")
	// ErrStore matches every *StoreError.
	ErrStore = errors.New("cascade: store failure")
)

// NotFoundError is returned when the root of a cascade does not exist.
type NotFoundError struct {
	Entity Entity
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cascade: %s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreError wraps a failure of the underlying store. When it is returned
// from a cascade the transaction has been rolled back.
type StoreError struct {
	Op     string
	Entity Entity
	// Retryable is set for serialization failures, deadlocks and lock
	// timeouts. The engine never retries on its own.
	Retryable bool
	Err       error
}

func (e *StoreError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("cascade: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cascade: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func newStoreError(op string, entity Entity, err error) *StoreError {
	return &StoreError{
		Op:        op,
		Entity:    entity,
		Retryable: isRetryable(err),
		Err:       err,
	}
}

// asCascadeError keeps typed cascade errors and wraps anything else, such
// as a failed BEGIN or COMMIT, in a StoreError.
func asCascadeError(err error) error {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return notFound
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}
	return newStoreError("transaction", "", err)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		// ER_LOCK_DEADLOCK, ER_LOCK_WAIT_TIMEOUT
		return myErr.Number == 1213 || myErr.Number == 1205
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
	}

	return false
}
