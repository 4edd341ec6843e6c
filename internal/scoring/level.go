package scoring

import "github.com/abhisek/petmatch/internal/quiz"

// Band thresholds are inclusive lower bounds.
const (
	HighThreshold   = 0.60
	MediumThreshold = 0.40
)

// Percentage returns score as a fraction of the maximum attainable for a
// dimension with questionCount questions, clamped to [0, 1]. A dimension
// without questions has percentage 0.
func Percentage(score, questionCount int) float64 {
	if questionCount <= 0 {
		return 0
	}
	p := float64(score) / float64(questionCount*quiz.MaxScorePerQuestion)
	return clamp01(p)
}

// LevelFor returns the level for a fraction in [0, 1].
func LevelFor(pct float64) quiz.Level {
	switch {
	case pct >= HighThreshold:
		return quiz.LevelHigh
	case pct >= MediumThreshold:
		return quiz.LevelMedium
	default:
		return quiz.LevelLow
	}
}

// Classify converts a raw dimension score into a level.
func Classify(score, questionCount int) quiz.Level {
	return LevelFor(Percentage(score, questionCount))
}

// ClassifyAll returns the level of every dimension of q given its totals.
// Missing totals count as 0.
func ClassifyAll(q *quiz.Quiz, totals map[string]int) map[string]quiz.Level {
	levels := make(map[string]quiz.Level, len(q.Dimensions))
	for _, d := range q.Dimensions {
		levels[d.ID] = Classify(totals[d.ID], q.QuestionCount(d.ID))
	}
	return levels
}

// Percentages returns the percentage of every dimension of q.
func Percentages(q *quiz.Quiz, totals map[string]int) map[string]float64 {
	pcts := make(map[string]float64, len(q.Dimensions))
	for _, d := range q.Dimensions {
		pcts[d.ID] = Percentage(totals[d.ID], q.QuestionCount(d.ID))
	}
	return pcts
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
