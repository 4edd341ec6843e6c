package quiz

import (
	"fmt"
	"time"
)

// MaxScorePerQuestion is the largest score a single answer may contribute.
const MaxScorePerQuestion = 5

// Level is the coarse band a dimension score falls into.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// AllLevels returns all levels from highest to lowest.
func AllLevels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow}
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelHigh:
		return "High"
	case LevelMedium:
		return "Medium"
	case LevelLow:
		return "Low"
	default:
		return string(l)
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// ParseLevel converts a string into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}

// Dimension is one scored trait of a quiz.
type Dimension struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Emoji       string `yaml:"emoji" json:"emoji"`
	Description string `yaml:"desc" json:"desc"`
}

// Answer is a selectable option for a question.
type Answer struct {
	Text  string `yaml:"text" json:"text"`
	Score int    `yaml:"score" json:"score"`
}

// Question belongs to exactly one dimension.
type Question struct {
	Text      string   `yaml:"text" json:"text"`
	Dimension string   `yaml:"dimension" json:"dimension"`
	Answers   []Answer `yaml:"answers" json:"answers"`
}

// Condition is a partial predicate over dimension levels.
// An empty condition marks the catch-all fallback label.
type Condition map[string]Level

// ResultLabel is one archetype in a quiz's result catalog.
type ResultLabel struct {
	Name           string    `yaml:"name" json:"name"`
	Emoji          string    `yaml:"emoji" json:"emoji"`
	Description    string    `yaml:"desc" json:"desc"`
	Condition      Condition `yaml:"condition" json:"condition"`
	Interpretation string    `yaml:"interpretation,omitempty" json:"interpretation,omitempty"`
	Guidance       string    `yaml:"guidance,omitempty" json:"guidance,omitempty"`
}

// IsFallback reports whether the label matches unconditionally.
func (r *ResultLabel) IsFallback() bool {
	return len(r.Condition) == 0
}

// Quiz is the static definition of one test type.
type Quiz struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Emoji       string        `yaml:"emoji" json:"emoji"`
	Description string        `yaml:"desc" json:"desc"`
	Dimensions  []Dimension   `yaml:"dimensions" json:"dimensions"`
	Questions   []Question    `yaml:"questions" json:"questions"`
	Results     []ResultLabel `yaml:"results" json:"results"`

	questionCounts map[string]int
}

// index precomputes per-dimension question counts.
func (q *Quiz) index() {
	q.questionCounts = make(map[string]int, len(q.Dimensions))
	for _, qs := range q.Questions {
		q.questionCounts[qs.Dimension]++
	}
}

// Dimension returns the dimension with the given ID, or nil.
func (q *Quiz) Dimension(id string) *Dimension {
	for i := range q.Dimensions {
		if q.Dimensions[i].ID == id {
			return &q.Dimensions[i]
		}
	}
	return nil
}

// DimensionIDs returns dimension IDs in declaration order.
func (q *Quiz) DimensionIDs() []string {
	ids := make([]string, len(q.Dimensions))
	for i, d := range q.Dimensions {
		ids[i] = d.ID
	}
	return ids
}

// QuestionCount returns the number of questions assigned to dim.
// Unknown dimensions have zero questions.
func (q *Quiz) QuestionCount(dim string) int {
	if q.questionCounts != nil {
		return q.questionCounts[dim]
	}
	n := 0
	for _, qs := range q.Questions {
		if qs.Dimension == dim {
			n++
		}
	}
	return n
}

// MaxScore returns the highest total attainable for dim.
func (q *Quiz) MaxScore(dim string) int {
	return q.QuestionCount(dim) * MaxScorePerQuestion
}

// Fallback returns the first label with an empty condition, or nil.
func (q *Quiz) Fallback() *ResultLabel {
	for i := range q.Results {
		if q.Results[i].IsFallback() {
			return &q.Results[i]
		}
	}
	return nil
}

// TestResult is one completed quiz attempt. It is never modified after
// creation.
type TestResult struct {
	ID          string         `json:"id"`
	TestType    string         `json:"testType"`
	Scores      map[string]int `json:"scores"`
	ResultName  string         `json:"resultName"`
	ResultEmoji string         `json:"resultEmoji"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Score returns the stored score for dim, or 0 when absent.
func (r *TestResult) Score(dim string) int {
	if r == nil {
		return 0
	}
	return r.Scores[dim]
}
