package correlation

import (
	"math"

	"github.com/abhisek/petmatch/internal/quiz"
	"github.com/abhisek/petmatch/internal/scoring"
)

const (
	// NeutralBias is added to the mean contribution so that unrelated pairs
	// read as moderately compatible.
	// TODO: confirm with product before retuning; the value is empirical.
	NeutralBias = 0.3

	// NeutralScore is reported when there is nothing to compare.
	NeutralScore = 0.5
)

// Side is one of the two test results being compared.
type Side struct {
	Scores        map[string]int
	QuestionCount func(dim string) int
}

// SideOf pairs a stored result with the quiz that produced it.
func SideOf(q *quiz.Quiz, r *quiz.TestResult) Side {
	s := Side{QuestionCount: func(string) int { return 0 }}
	if r != nil {
		s.Scores = r.Scores
	}
	if q != nil {
		s.QuestionCount = q.QuestionCount
	}
	return s
}

// normalized returns the dimension score as a fraction of its maximum.
func (s Side) normalized(dim string) float64 {
	n := 0
	if s.QuestionCount != nil {
		n = s.QuestionCount(dim)
	}
	return scoring.Percentage(s.Scores[dim], n)
}

// Correlation is the outcome of comparing two results.
type Correlation struct {
	Score   float64
	Level   MatchLevel
	Entries int
	// Neutral is set when the score is the neutral default rather than
	// computed from weights.
	Neutral bool
	// Found is false when no table exists for the pair.
	Found bool
}

// Neutral returns the neutral default correlation.
func Neutral() Correlation {
	return Correlation{Score: NeutralScore, Level: MatchMedium, Neutral: true}
}

// Similarity computes the weighted similarity of src and dst under table.
// Positive weights reward close normalized scores; negative weights reward
// divergence. The mean contribution plus NeutralBias is clamped to [0, 1].
// An empty table yields the neutral default.
func Similarity(src, dst Side, table Table) Correlation {
	entries := table.Entries()
	if len(entries) == 0 {
		c := Neutral()
		c.Found = table != nil
		return c
	}

	sum := 0.0
	for _, e := range entries {
		diff := math.Abs(src.normalized(e.Source) - dst.normalized(e.Target))
		switch {
		case e.Weight > 0:
			sum += (1 - diff) * e.Weight
		case e.Weight < 0:
			sum += diff * -e.Weight
		}
	}

	score := sum/float64(len(entries)) + NeutralBias
	score = math.Max(0, math.Min(1, score))
	return Correlation{
		Score:   score,
		Level:   LevelFor(score),
		Entries: len(entries),
		Found:   true,
	}
}

// Engine correlates stored results using the catalog's tables.
type Engine struct {
	catalog *quiz.Catalog
	tables  *Tables
}

// NewEngine creates an Engine over the catalog's quizzes and tables.
func NewEngine(catalog *quiz.Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		tables:  NewTables(catalog.Correlations()),
	}
}

// Tables returns the engine's table index.
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Correlate compares a and b using the table keyed (a.TestType, b.TestType).
// When no such table exists the neutral default is returned with Found unset.
func (e *Engine) Correlate(a, b *quiz.TestResult) Correlation {
	table, ok := e.tables.Lookup(a.TestType, b.TestType)
	if !ok {
		return Neutral()
	}
	c := Similarity(
		SideOf(e.catalog.Quiz(a.TestType), a),
		SideOf(e.catalog.Quiz(b.TestType), b),
		table,
	)
	c.Found = true
	return c
}
