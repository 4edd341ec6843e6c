package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/petmatch/internal/attempt"
	"github.com/abhisek/petmatch/internal/insight"
	"github.com/abhisek/petmatch/internal/quiz"
)

func defaultCatalog(t *testing.T) *quiz.Catalog {
	t.Helper()
	c, err := quiz.Default()
	require.NoError(t, err)
	return c
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "🔍 Curiosity", DisplayName(quiz.Dimension{ID: "curious", Name: "Curiosity", Emoji: "🔍"}))
	assert.Equal(t, "Night Owl", DisplayName(quiz.Dimension{ID: "night_owl"}))
}

func TestOutcome(t *testing.T) {
	c := defaultCatalog(t)
	out, err := attempt.NewService(attempt.Config{Catalog: c}).Evaluate("human", []int{2, 2, 0, 0, 0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Outcome(&buf, out))

	s := buf.String()
	assert.Contains(t, s, "The Quiet Explorer")
	assert.Contains(t, s, "Curiosity")
	assert.Contains(t, s, "100%")
	assert.Contains(t, s, "High")
	assert.Contains(t, s, "Tip: ")
}

func TestReport_NoData(t *testing.T) {
	r := insight.NewComposer(defaultCatalog(t), nil).Compose("human", nil)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r))
	assert.Contains(t, buf.String(), "Take your personality quiz first")
	assert.Contains(t, buf.String(), "0 of 3")
}

func TestReport_WithPairs(t *testing.T) {
	at := time.Now()
	r := insight.NewComposer(defaultCatalog(t), nil).Compose("human", []quiz.TestResult{
		{TestType: "human", Scores: map[string]int{"curious": 10, "boss": 2, "social": 10}, ResultName: "The Host", ResultEmoji: "🥂", CreatedAt: at},
		{TestType: "cat", Scores: map[string]int{"playful": 10, "independent": 2}, ResultName: "Siamese", ResultEmoji: "🐈", CreatedAt: at},
	})
	require.True(t, r.HasData)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r))
	s := buf.String()
	assert.Contains(t, s, "Best match:")
	assert.Contains(t, s, "great match")
	assert.Contains(t, s, "Which Cat Are You?")
	assert.Contains(t, s, "Next up: dog")
}

func TestQuizzesAndQuestions(t *testing.T) {
	c := defaultCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, Quizzes(&buf, c))
	for _, id := range c.IDs() {
		assert.Contains(t, buf.String(), id)
	}

	buf.Reset()
	require.NoError(t, Questions(&buf, c.Quiz("cat")))
	assert.Contains(t, buf.String(), "A string dangles in front of you.")
	assert.Contains(t, buf.String(), "3) Pounce immediately")
}

func TestResults(t *testing.T) {
	c := defaultCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, nil, c))
	assert.Contains(t, buf.String(), "No results yet.")

	buf.Reset()
	require.NoError(t, Results(&buf, []quiz.TestResult{
		{TestType: "dog", ResultName: "Husky", ResultEmoji: "🐺", CreatedAt: time.Now()},
		{TestType: "ghost", ResultName: "Boo", CreatedAt: time.Now()},
	}, c))
	assert.Contains(t, buf.String(), "Which Dog Are You?")
	assert.Contains(t, buf.String(), "🐺 Husky")
	assert.Contains(t, buf.String(), "ghost")
}
