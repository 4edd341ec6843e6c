// Package attempt turns a completed set of answers into a stored result.
package attempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/petmatch/internal/logging"
	"github.com/abhisek/petmatch/internal/matcher"
	"github.com/abhisek/petmatch/internal/quiz"
	"github.com/abhisek/petmatch/internal/scoring"
	"github.com/abhisek/petmatch/internal/store"
)

// ErrUnknownQuiz is returned for a test type missing from the catalog.
var ErrUnknownQuiz = errors.New("unknown quiz")

// Outcome is everything computed for one attempt.
type Outcome struct {
	Quiz        *quiz.Quiz
	Result      *quiz.TestResult
	Match       *matcher.Result
	Levels      map[string]quiz.Level
	Percentages map[string]float64
	Skipped     int // answers ignored as malformed
}

// Config holds the collaborators of a Service.
type Config struct {
	Catalog *quiz.Catalog
	Repo    store.ResultRepo // optional; required by Complete
	Logger  *zap.Logger
	History int              // results kept per quiz, 0 = unlimited
	Now     func() time.Time // defaults to time.Now
}

// Service scores, matches and records quiz attempts.
type Service struct {
	catalog *quiz.Catalog
	repo    store.ResultRepo
	logger  *zap.Logger
	history int
	now     func() time.Time
}

// NewService creates a Service.
func NewService(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog: cfg.Catalog,
		repo:    cfg.Repo,
		logger:  logging.OrNop(cfg.Logger),
		history: cfg.History,
		now:     now,
	}
}

// Evaluate scores selections (chosen answer index per question) for
// testType and selects the matching result. Nothing is persisted.
func (s *Service) Evaluate(testType string, selections []int) (*Outcome, error) {
	q := s.catalog.Quiz(testType)
	if q == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuiz, testType)
	}

	totals, skipped := scoring.AggregateSelections(q, selections)
	if skipped > 0 {
		s.logger.Warn("Ignored malformed answers",
			zap.String("quiz", q.ID),
			zap.Int("skipped", skipped))
	}

	levels := scoring.ClassifyAll(q, totals)
	m, err := matcher.Match(levels, q.Results)
	if err != nil {
		return nil, fmt.Errorf("match quiz %q: %w", q.ID, err)
	}

	s.logger.Debug("Matched result",
		zap.String("quiz", q.ID),
		zap.String("result", m.Label.Name),
		zap.String("kind", string(m.Kind)),
		zap.Int("match_count", m.MatchCount),
		zap.Int("condition_size", m.ConditionSize))

	return &Outcome{
		Quiz: q,
		Result: &quiz.TestResult{
			TestType:    q.ID,
			Scores:      totals,
			ResultName:  m.Label.Name,
			ResultEmoji: m.Label.Emoji,
			CreatedAt:   s.now().UTC(),
		},
		Match:       m,
		Levels:      levels,
		Percentages: scoring.Percentages(q, totals),
		Skipped:     skipped,
	}, nil
}

// Complete evaluates the attempt and stores the resulting TestResult.
func (s *Service) Complete(ctx context.Context, testType string, selections []int) (*Outcome, error) {
	if s.repo == nil {
		return nil, errors.New("complete attempt: no result store configured")
	}

	out, err := s.Evaluate(testType, selections)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, out.Result); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	s.logger.Info("Recorded result",
		zap.String("id", out.Result.ID),
		zap.String("quiz", out.Result.TestType),
		zap.String("result", out.Result.ResultName))

	if s.history > 0 {
		// The result is already saved; a failed prune only leaves extra history.
		if err := s.repo.Prune(ctx, testType, s.history); err != nil {
			s.logger.Warn("Failed to prune result history", zap.Error(err))
		}
	}
	return out, nil
}
