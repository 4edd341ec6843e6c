// Package insight cross-references a user's completed quizzes against their
// primary quiz and ranks how well each result fits.
package insight

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/abhisek/petmatch/internal/correlation"
	"github.com/abhisek/petmatch/internal/logging"
	"github.com/abhisek/petmatch/internal/quiz"
)

// PairInsight is the correlation between the primary result and one other
// completed quiz.
type PairInsight struct {
	TestType    string
	QuizName    string
	Result      quiz.TestResult
	Correlation correlation.Correlation
	Blurb       string
}

// Report summarizes every insight available for a user.
type Report struct {
	// HasData is false when there is no primary result or no other result
	// with a correlation table against it.
	HasData bool

	Primary *quiz.TestResult
	Best    *PairInsight
	Pairs   []PairInsight // best first

	Completed       int
	Total           int
	CompletionRatio float64
	Remaining       []string // catalog quizzes not yet taken, in catalog order
	Summary         string
}

// Composer builds insight reports.
type Composer struct {
	catalog *quiz.Catalog
	engine  *correlation.Engine
	logger  *zap.Logger
}

// NewComposer creates a Composer over catalog.
func NewComposer(catalog *quiz.Catalog, logger *zap.Logger) *Composer {
	return &Composer{
		catalog: catalog,
		engine:  correlation.NewEngine(catalog),
		logger:  logging.OrNop(logger),
	}
}

// Compose correlates the latest result of every completed quiz with the
// latest result of primary. Quizzes without a (primary, other) table are
// left out of the ranking. It never fails: missing data yields a report
// with HasData unset.
func (c *Composer) Compose(primary string, results []quiz.TestResult) *Report {
	latest := latestByType(results)

	r := &Report{Total: c.catalog.Len()}
	for _, id := range c.catalog.IDs() {
		if _, ok := latest[id]; ok {
			r.Completed++
		} else {
			r.Remaining = append(r.Remaining, id)
		}
	}
	if r.Total > 0 {
		r.CompletionRatio = float64(r.Completed) / float64(r.Total)
	}
	r.Summary = fmt.Sprintf("You've completed %d of %d quizzes.", r.Completed, r.Total)

	p, ok := latest[primary]
	if !ok {
		c.logger.Debug("No primary result", zap.String("primary", primary))
		return r
	}
	r.Primary = &p

	for _, other := range c.engine.Tables().Targets(primary) {
		res, ok := latest[other]
		if !ok || other == primary {
			continue
		}
		corr := c.engine.Correlate(&p, &res)
		if !corr.Found {
			continue
		}
		r.Pairs = append(r.Pairs, PairInsight{
			TestType:    other,
			QuizName:    c.quizName(other),
			Result:      res,
			Correlation: corr,
			Blurb:       blurb(&p, &res, corr.Level),
		})
	}

	sort.SliceStable(r.Pairs, func(i, j int) bool {
		if r.Pairs[i].Correlation.Score != r.Pairs[j].Correlation.Score {
			return r.Pairs[i].Correlation.Score > r.Pairs[j].Correlation.Score
		}
		return c.catalog.Order(r.Pairs[i].TestType) < c.catalog.Order(r.Pairs[j].TestType)
	})

	if len(r.Pairs) > 0 {
		r.HasData = true
		r.Best = &r.Pairs[0]
		c.logger.Debug("Composed insights",
			zap.String("primary", primary),
			zap.Int("pairs", len(r.Pairs)),
			zap.String("best", r.Best.TestType),
			zap.Float64("best_score", r.Best.Correlation.Score))
	}
	return r
}

func (c *Composer) quizName(id string) string {
	if q := c.catalog.Quiz(id); q != nil {
		return q.Name
	}
	return id
}

// latestByType keeps the most recent result per test type. On equal
// timestamps the later entry in results wins.
func latestByType(results []quiz.TestResult) map[string]quiz.TestResult {
	latest := make(map[string]quiz.TestResult)
	for _, res := range results {
		cur, ok := latest[res.TestType]
		if !ok || !res.CreatedAt.Before(cur.CreatedAt) {
			latest[res.TestType] = res
		}
	}
	return latest
}

func blurb(primary, other *quiz.TestResult, level correlation.MatchLevel) string {
	you := label(primary)
	them := label(other)
	switch level {
	case correlation.MatchHigh:
		return fmt.Sprintf("%s and %s are a great match!", you, them)
	case correlation.MatchMedium:
		return fmt.Sprintf("%s and %s are a good match.", you, them)
	case correlation.MatchLow:
		return fmt.Sprintf("%s and %s get along okay.", you, them)
	default:
		return fmt.Sprintf("%s and %s are an unlikely pair.", you, them)
	}
}

func label(r *quiz.TestResult) string {
	if r.ResultEmoji == "" {
		return r.ResultName
	}
	return r.ResultName + " " + r.ResultEmoji
}
