package quiz

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsBuiltInCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog", "human"}, c.IDs())
	assert.Len(t, c.Correlations(), 2)

	human := c.Quiz("human")
	require.NotNil(t, human)
	assert.Equal(t, []string{"curious", "boss", "social"}, human.DimensionIDs())
	assert.Equal(t, 2, human.QuestionCount("curious"))
	assert.Equal(t, 10, human.MaxScore("boss"))
	assert.Equal(t, 0, human.QuestionCount("nope"))
	require.NotNil(t, human.Fallback())
	assert.Equal(t, "The Easygoing Friend", human.Fallback().Name)

	for _, q := range c.Quizzes() {
		assert.NotNil(t, q.Fallback(), "quiz %s must have a fallback", q.ID)
	}
}

const minimalQuiz = `
id: tiny
name: Tiny
dimensions:
  - { id: a, name: A }
questions:
  - text: pick one
    dimension: a
    answers:
      - { text: low, score: 1 }
      - { text: high, score: 5 }
results:
  - name: High A
    condition: { a: high }
  - name: Anyone
    condition: {}
`

func TestLoad_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tiny.yaml":  {Data: []byte(minimalQuiz)},
		"notes.txt":  {Data: []byte("ignored")},
		"other.yaml": {Data: []byte(minimalQuizWithID("other"))},
		CorrelationsFile: {Data: []byte(`
tables:
  - source: tiny
    target: other
    weights:
      a: { a: 0.5 }
`)},
	}

	c, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"other", "tiny"}, c.IDs())
	assert.Equal(t, 1, c.Order("tiny"))
	assert.Equal(t, -1, c.Order("missing"))
	require.Len(t, c.Correlations(), 1)
	assert.Equal(t, 0.5, c.Correlations()[0].Weights["a"]["a"])

	tiny := c.Quiz("tiny")
	require.NotNil(t, tiny)
	assert.Equal(t, LevelHigh, tiny.Results[0].Condition["a"])
	assert.True(t, tiny.Results[1].IsFallback())
}

func minimalQuizWithID(id string) string {
	return "id: " + id + minimalQuiz[len("\nid: tiny"):]
}

func TestLoad_SchemaViolation(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte(`
id: bad
name: Bad
dimensions: []
questions: []
results: []
`)},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoad_UnknownLevelRejectedBySchema(t *testing.T) {
	_, err := ParseQuiz([]byte(`
id: bad
name: Bad
dimensions: [{ id: a, name: A }]
questions:
  - { text: q, dimension: a, answers: [{ text: x, score: 3 }] }
results:
  - { name: Weird, condition: { a: extreme } }
  - { name: Anyone }
`))
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoad_InvariantViolation(t *testing.T) {
	fsys := fstest.MapFS{
		"nofallback.yaml": {Data: []byte(`
id: nofallback
name: No Fallback
dimensions: [{ id: a, name: A }]
questions:
  - { text: q, dimension: a, answers: [{ text: x, score: 3 }] }
results:
  - { name: Only, condition: { a: high } }
`)},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "no fallback")
}

func TestLoad_EmptyFS(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(fstest.MapFS{"broken.yaml": {Data: []byte("id: [unclosed")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestLoadDir_NotADirectory(t *testing.T) {
	_, err := LoadDir("load_test.go")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for _, l := range AllLevels() {
		got, err := ParseLevel(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseLevel("huge")
	assert.Error(t, err)
}
