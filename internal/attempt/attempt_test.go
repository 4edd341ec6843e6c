package attempt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/petmatch/internal/matcher"
	"github.com/abhisek/petmatch/internal/quiz"
	"github.com/abhisek/petmatch/internal/store"
)

var answers = []quiz.Answer{
	{Text: "never", Score: 1},
	{Text: "rarely", Score: 2},
	{Text: "sometimes", Score: 3},
	{Text: "often", Score: 4},
	{Text: "always", Score: 5},
}

func scenarioCatalog(t *testing.T) *quiz.Catalog {
	t.Helper()
	q := &quiz.Quiz{
		ID:         "human",
		Name:       "Human",
		Dimensions: []quiz.Dimension{{ID: "curious"}, {ID: "boss"}},
		Questions: []quiz.Question{
			{Text: "c1", Dimension: "curious", Answers: answers},
			{Text: "c2", Dimension: "curious", Answers: answers},
			{Text: "b1", Dimension: "boss", Answers: answers},
			{Text: "b2", Dimension: "boss", Answers: answers},
		},
		Results: []quiz.ResultLabel{
			{Name: "Curious", Emoji: "🔍", Condition: quiz.Condition{"curious": quiz.LevelHigh}},
			{Name: "Curious Follower", Emoji: "🐑", Condition: quiz.Condition{"curious": quiz.LevelHigh, "boss": quiz.LevelLow}},
			{Name: "Anyone", Emoji: "🙂"},
		},
	}
	c, err := quiz.NewCatalog([]*quiz.Quiz{q}, nil)
	require.NoError(t, err)
	return c
}

func openRepo(t *testing.T) store.ResultRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "attempt.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.ResultRepo()
}

func TestEvaluate_SpecificLabelWins(t *testing.T) {
	svc := NewService(Config{Catalog: scenarioCatalog(t)})

	// curious: 5 + 4 = 9 of 10, boss: 1 + 1 = 2 of 10
	out, err := svc.Evaluate("human", []int{4, 3, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"curious": 9, "boss": 2}, out.Result.Scores)
	assert.Equal(t, quiz.LevelHigh, out.Levels["curious"])
	assert.Equal(t, quiz.LevelLow, out.Levels["boss"])
	assert.InDelta(t, 0.9, out.Percentages["curious"], 1e-9)
	assert.InDelta(t, 0.2, out.Percentages["boss"], 1e-9)

	assert.Equal(t, "Curious Follower", out.Result.ResultName)
	assert.Equal(t, "🐑", out.Result.ResultEmoji)
	assert.Equal(t, matcher.KindExact, out.Match.Kind)
	assert.Equal(t, 2, out.Match.ConditionSize)
	assert.Zero(t, out.Skipped)
}

func TestEvaluate_Fallback(t *testing.T) {
	svc := NewService(Config{Catalog: scenarioCatalog(t)})

	out, err := svc.Evaluate("human", []int{1, 2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "Anyone", out.Result.ResultName)
	assert.Equal(t, matcher.KindFallback, out.Match.Kind)
}

func TestEvaluate_SkipsMalformedAnswers(t *testing.T) {
	svc := NewService(Config{Catalog: scenarioCatalog(t)})

	out, err := svc.Evaluate("human", []int{4, 9, -1, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Skipped)
	assert.Equal(t, map[string]int{"curious": 5, "boss": 1}, out.Result.Scores)
}

func TestEvaluate_UnknownQuiz(t *testing.T) {
	svc := NewService(Config{Catalog: scenarioCatalog(t)})

	_, err := svc.Evaluate("dragon", nil)
	assert.ErrorIs(t, err, ErrUnknownQuiz)
}

func TestComplete_PersistsResult(t *testing.T) {
	repo := openRepo(t)
	fixed := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	svc := NewService(Config{
		Catalog: scenarioCatalog(t),
		Repo:    repo,
		Now:     func() time.Time { return fixed },
	})
	ctx := context.Background()

	out, err := svc.Complete(ctx, "human", []int{4, 3, 0, 0})
	require.NoError(t, err)
	require.NotEmpty(t, out.Result.ID)

	stored, err := repo.Latest(ctx, "human")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, out.Result.ID, stored.ID)
	assert.Equal(t, "Curious Follower", stored.ResultName)
	assert.Equal(t, out.Result.Scores, stored.Scores)
	assert.True(t, fixed.Equal(stored.CreatedAt))
}

func TestComplete_PrunesHistory(t *testing.T) {
	repo := openRepo(t)
	svc := NewService(Config{Catalog: scenarioCatalog(t), Repo: repo, History: 2})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.Complete(ctx, "human", []int{i % 5, 0, 0, 0})
		require.NoError(t, err)
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestComplete_RequiresRepo(t *testing.T) {
	svc := NewService(Config{Catalog: scenarioCatalog(t)})
	_, err := svc.Complete(context.Background(), "human", nil)
	assert.Error(t, err)
}

func TestComplete_UnknownQuizSavesNothing(t *testing.T) {
	repo := openRepo(t)
	svc := NewService(Config{Catalog: scenarioCatalog(t), Repo: repo})
	ctx := context.Background()

	_, err := svc.Complete(ctx, "dragon", []int{0})
	assert.ErrorIs(t, err, ErrUnknownQuiz)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
