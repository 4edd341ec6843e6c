package quiz

import (
	"maps"
	"slices"
)

// CorrelationDef is an authored weight table between the dimensions of two
// quizzes, keyed source dimension -> target dimension -> weight.
type CorrelationDef struct {
	Source  string                        `yaml:"source" json:"source"`
	Target  string                        `yaml:"target" json:"target"`
	Weights map[string]map[string]float64 `yaml:"weights" json:"weights"`
}

// Catalog holds every known quiz and the correlation tables between them.
type Catalog struct {
	quizzes      []*Quiz
	byID         map[string]*Quiz
	correlations []CorrelationDef
}

// NewCatalog validates the definitions and builds a Catalog.
// Quiz order is preserved and used wherever a stable ordering is needed.
func NewCatalog(quizzes []*Quiz, correlations []CorrelationDef) (*Catalog, error) {
	if err := validateCatalog(quizzes, correlations); err != nil {
		return nil, err
	}

	c := &Catalog{
		quizzes:      quizzes,
		byID:         make(map[string]*Quiz, len(quizzes)),
		correlations: correlations,
	}
	for _, q := range quizzes {
		q.index()
		c.byID[q.ID] = q
	}
	return c, nil
}

// Quiz returns the quiz with the given ID, or nil.
func (c *Catalog) Quiz(id string) *Quiz {
	return c.byID[id]
}

// Quizzes returns all quizzes in catalog order.
func (c *Catalog) Quizzes() []*Quiz {
	return c.quizzes
}

// IDs returns all quiz IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.quizzes))
	for i, q := range c.quizzes {
		ids[i] = q.ID
	}
	return ids
}

// Len returns the number of known quizzes.
func (c *Catalog) Len() int {
	return len(c.quizzes)
}

// Correlations returns the authored correlation tables.
func (c *Catalog) Correlations() []CorrelationDef {
	return c.correlations
}

// Order returns the catalog position of a quiz, or -1 if unknown.
func (c *Catalog) Order(id string) int {
	for i, q := range c.quizzes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
