package correlation

import (
	"maps"
	"slices"

	"github.com/abhisek/petmatch/internal/quiz"
)

// Table maps a source dimension to target dimensions and their signed
// weights in [-1, 1].
type Table map[string]map[string]float64

// Entry is a single weighted dimension pair.
type Entry struct {
	Source string
	Target string
	Weight float64
}

// Entries returns every weight in source, then target, order.
func (t Table) Entries() []Entry {
	var out []Entry
	for _, src := range slices.Sorted(maps.Keys(t)) {
		targets := t[src]
		for _, dst := range slices.Sorted(maps.Keys(targets)) {
			out = append(out, Entry{Source: src, Target: dst, Weight: targets[dst]})
		}
	}
	return out
}

// Len returns the number of weighted pairs.
func (t Table) Len() int {
	n := 0
	for _, targets := range t {
		n += len(targets)
	}
	return n
}

// Pair is an ordered pair of test types.
type Pair struct {
	Source string
	Target string
}

// Tables indexes correlation tables by ordered test-type pair.
type Tables struct {
	byPair map[Pair]Table
}

// NewTables builds the index from authored definitions. A later definition
// for the same pair replaces an earlier one.
func NewTables(defs []quiz.CorrelationDef) *Tables {
	t := &Tables{byPair: make(map[Pair]Table, len(defs))}
	for _, d := range defs {
		t.byPair[Pair{Source: d.Source, Target: d.Target}] = Table(d.Weights)
	}
	return t
}

// Lookup returns the table for the ordered pair (source, target). The
// reverse pair is never consulted.
func (t *Tables) Lookup(source, target string) (Table, bool) {
	if t == nil {
		return nil, false
	}
	tbl, ok := t.byPair[Pair{Source: source, Target: target}]
	return tbl, ok
}

// Targets returns every test type with a table keyed from source, sorted.
func (t *Tables) Targets(source string) []string {
	if t == nil {
		return nil
	}
	var out []string
	for p := range t.byPair {
		if p.Source == source {
			out = append(out, p.Target)
		}
	}
	slices.Sort(out)
	return out
}
