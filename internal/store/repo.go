package store

import (
	"context"
	"time"

	"github.com/abhisek/petmatch/internal/quiz"
)

// QueryOpts configures result queries with filtering and pagination.
type QueryOpts struct {
	TestType string    // only results of this quiz ("" = all)
	Limit    int       // max results, most recent kept (0 = unlimited)
	From     time.Time // created_at >= From
	To       time.Time // created_at <= To
}

// ResultRepo persists completed quiz results. Results are append-only;
// the only mutations are bulk deletes.
type ResultRepo interface {
	// Save stores a new result. An empty ID is replaced with a UUID and a
	// zero CreatedAt with the current time.
	Save(ctx context.Context, r *quiz.TestResult) error

	// List returns matching results in creation order, oldest first.
	List(ctx context.Context, opts QueryOpts) ([]quiz.TestResult, error)

	// Latest returns the most recent result for testType, or nil if none
	// exist.
	Latest(ctx context.Context, testType string) (*quiz.TestResult, error)

	// Count returns the number of stored results.
	Count(ctx context.Context) (int, error)

	// Prune deletes all but the keep most recent results for testType.
	Prune(ctx context.Context, testType string, keep int) error

	// DeleteAll removes every stored result and reports how many were
	// deleted.
	DeleteAll(ctx context.Context) (int64, error)
}
