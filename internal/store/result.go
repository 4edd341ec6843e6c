package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/petmatch/internal/quiz"
)

const resultsTable = "test_results"

var resultColumns = []string{
	"id", "test_type", "scores", "result_name", "result_emoji", "created_at",
}

// resultRepo implements ResultRepo on SQLite, building statements with the
// ent SQL builder.
type resultRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *resultRepo) Save(ctx context.Context, res *quiz.TestResult) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	scores, err := json.Marshal(res.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(resultsTable).
		Columns("id", "sequence", "test_type", "scores", "result_name", "result_emoji", "created_at").
		Values(res.ID, seqNum, res.TestType, string(scores), res.ResultName, res.ResultEmoji, res.CreatedAt.UnixNano()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, opts QueryOpts) ([]quiz.TestResult, error) {
	sel := builder().Select(resultColumns...).From(entsql.Table(resultsTable))

	var preds []*entsql.Predicate
	if opts.TestType != "" {
		preds = append(preds, entsql.EQ("test_type", opts.TestType))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("created_at", opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("created_at", opts.To.UnixNano()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}

	// Newest first so Limit keeps the most recent rows; reversed below.
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	results, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	slices.Reverse(results)
	return results, nil
}

func (r *resultRepo) Latest(ctx context.Context, testType string) (*quiz.TestResult, error) {
	results, err := r.List(ctx, QueryOpts{TestType: testType, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *resultRepo) Count(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).From(entsql.Table(resultsTable)).Query()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

func (r *resultRepo) Prune(ctx context.Context, testType string, keep int) error {
	if keep < 0 {
		return fmt.Errorf("prune results: keep must be >= 0, got %d", keep)
	}

	// Find the sequence of the newest result that falls outside the window.
	query, args := builder().Select("sequence").
		From(entsql.Table(resultsTable)).
		Where(entsql.EQ("test_type", testType)).
		OrderBy(entsql.Desc("sequence")).
		Offset(keep).
		Limit(1).
		Query()
	var threshold int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep results exist
	}
	if err != nil {
		return fmt.Errorf("query results for prune: %w", err)
	}

	query, args = builder().Delete(resultsTable).
		Where(entsql.And(
			entsql.EQ("test_type", testType),
			entsql.LTE("sequence", threshold),
		)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune results: %w", err)
	}
	return nil
}

func (r *resultRepo) DeleteAll(ctx context.Context) (int64, error) {
	query, args := builder().Delete(resultsTable).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete results: %w", err)
	}
	return res.RowsAffected()
}

func (r *resultRepo) query(ctx context.Context, sel *entsql.Selector) ([]quiz.TestResult, error) {
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []quiz.TestResult
	for rows.Next() {
		var (
			res       quiz.TestResult
			scores    string
			createdAt int64
		)
		if err := rows.Scan(&res.ID, &res.TestType, &scores, &res.ResultName, &res.ResultEmoji, &createdAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(scores), &res.Scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores for %s: %w", res.ID, err)
		}
		res.CreatedAt = time.Unix(0, createdAt).UTC()
		results = append(results, res)
	}
	return results, rows.Err()
}
