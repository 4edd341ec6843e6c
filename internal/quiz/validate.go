package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefinition is returned when quiz or correlation data breaks an
// authoring invariant.
var ErrInvalidDefinition = errors.New("invalid quiz definition")

// validateCatalog performs all structural checks on the given definitions.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(quizzes []*Quiz, correlations []CorrelationDef) error {
	var errs []string

	byID := make(map[string]*Quiz, len(quizzes))
	for _, q := range quizzes {
		if q.ID == "" {
			errs = append(errs, "quiz with empty ID")
			continue
		}
		if _, dup := byID[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate quiz ID: %q", q.ID))
		}
		byID[q.ID] = q
		errs = append(errs, quizProblems(q)...)
	}

	seen := make(map[[2]string]bool, len(correlations))
	for _, c := range correlations {
		prefix := fmt.Sprintf("correlation %s->%s", c.Source, c.Target)
		key := [2]string{c.Source, c.Target}
		if seen[key] {
			errs = append(errs, fmt.Sprintf("%s: duplicate table", prefix))
		}
		seen[key] = true

		src, dst := byID[c.Source], byID[c.Target]
		if src == nil {
			errs = append(errs, fmt.Sprintf("%s: unknown source quiz %q", prefix, c.Source))
		}
		if dst == nil {
			errs = append(errs, fmt.Sprintf("%s: unknown target quiz %q", prefix, c.Target))
		}
		for _, srcDim := range sortedKeys(c.Weights) {
			if src != nil && src.Dimension(srcDim) == nil {
				errs = append(errs, fmt.Sprintf("%s: unknown source dimension %q", prefix, srcDim))
			}
			targets := c.Weights[srcDim]
			for _, dstDim := range sortedKeys(targets) {
				if dst != nil && dst.Dimension(dstDim) == nil {
					errs = append(errs, fmt.Sprintf("%s: unknown target dimension %q", prefix, dstDim))
				}
				if w := targets[dstDim]; w < -1 || w > 1 {
					errs = append(errs, fmt.Sprintf("%s: weight %s->%s must be in [-1, 1], got %g", prefix, srcDim, dstDim, w))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidDefinition, strings.Join(errs, "\n  "))
	}
	return nil
}

// quizProblems lists every invariant violation within a single quiz.
func quizProblems(q *Quiz) []string {
	var errs []string

	dims := make(map[string]bool, len(q.Dimensions))
	for _, d := range q.Dimensions {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("quiz %q: dimension with empty ID", q.ID))
			continue
		}
		if dims[d.ID] {
			errs = append(errs, fmt.Sprintf("quiz %q: duplicate dimension ID %q", q.ID, d.ID))
		}
		dims[d.ID] = true
	}

	for i, qs := range q.Questions {
		prefix := fmt.Sprintf("quiz %q question %d", q.ID, i+1)
		if !dims[qs.Dimension] {
			errs = append(errs, fmt.Sprintf("%s: references nonexistent dimension %q", prefix, qs.Dimension))
		}
		if len(qs.Answers) == 0 {
			errs = append(errs, fmt.Sprintf("%s: has no answers", prefix))
		}
		for j, a := range qs.Answers {
			if a.Score < 1 || a.Score > MaxScorePerQuestion {
				errs = append(errs, fmt.Sprintf("%s answer %d: score must be in [1, %d], got %d", prefix, j+1, MaxScorePerQuestion, a.Score))
			}
		}
	}

	hasFallback := false
	for _, r := range q.Results {
		if r.IsFallback() {
			hasFallback = true
		}
		for _, dim := range sortedKeys(r.Condition) {
			if !dims[dim] {
				errs = append(errs, fmt.Sprintf("quiz %q result %q: condition on unknown dimension %q", q.ID, r.Name, dim))
			}
			if lvl := r.Condition[dim]; !lvl.Valid() {
				errs = append(errs, fmt.Sprintf("quiz %q result %q: invalid level %q for %q", q.ID, r.Name, lvl, dim))
			}
		}
	}
	if !hasFallback {
		errs = append(errs, fmt.Sprintf("quiz %q: no fallback result (at least one result must have an empty condition)", q.ID))
	}

	return errs
}
