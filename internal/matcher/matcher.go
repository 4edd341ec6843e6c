package matcher

import (
	"errors"

	"github.com/abhisek/petmatch/internal/quiz"
)

// ErrNoFallback is returned when no label matches and the catalog has no
// empty-condition label to fall back to. It indicates a broken quiz
// definition.
var ErrNoFallback = errors.New("no matching result and no fallback result defined")

// Kind records which selection rule produced a match.
type Kind string

const (
	KindExact    Kind = "exact"
	KindPartial  Kind = "partial"
	KindFallback Kind = "fallback"
)

// Result is the selected label along with how well it matched.
type Result struct {
	Label         *quiz.ResultLabel
	Index         int // position in the catalog
	MatchCount    int
	ConditionSize int
	Kind          Kind
}

// Score counts how many condition entries of label agree with levels.
func Score(label *quiz.ResultLabel, levels map[string]quiz.Level) (matchCount, conditionSize int) {
	for dim, want := range label.Condition {
		if got, ok := levels[dim]; ok && got == want {
			matchCount++
		}
	}
	return matchCount, len(label.Condition)
}

// Match selects the best label from catalog for the given level map.
//
// Rules, in priority order:
//  1. Exact: every entry of a non-empty condition matches. The largest
//     condition wins; ties go to the label declared first.
//  2. Partial: among non-empty conditions, the highest number of matching
//     entries (at least one) wins; ties go to the label declared first.
//  3. Fallback: the first label with an empty condition.
//
// Returns ErrNoFallback when none of the rules selects a label.
func Match(levels map[string]quiz.Level, catalog []quiz.ResultLabel) (*Result, error) {
	var exact, partial, fallback *Result

	for i := range catalog {
		label := &catalog[i]
		matched, size := Score(label, levels)
		r := &Result{Label: label, Index: i, MatchCount: matched, ConditionSize: size}

		switch {
		case size == 0:
			if fallback == nil {
				r.Kind = KindFallback
				fallback = r
			}
		case matched == size:
			if exact == nil || size > exact.ConditionSize {
				r.Kind = KindExact
				exact = r
			}
		case matched > 0:
			if partial == nil || matched > partial.MatchCount {
				r.Kind = KindPartial
				partial = r
			}
		}
	}

	switch {
	case exact != nil:
		return exact, nil
	case partial != nil:
		return partial, nil
	case fallback != nil:
		return fallback, nil
	default:
		return nil, ErrNoFallback
	}
}
