package scoring

import "github.com/abhisek/petmatch/internal/quiz"

// AnswerEvent is a single scored answer for one dimension.
type AnswerEvent struct {
	Dimension string
	Score     int
}

// Aggregate sums answer events into per-dimension totals. Every dimension in
// dims is present in the result, defaulting to 0. Events with an empty or
// unknown dimension, or a score outside [0, MaxScorePerQuestion], are
// skipped. When dims is empty any non-empty dimension is accepted.
func Aggregate(events []AnswerEvent, dims []string) map[string]int {
	totals := make(map[string]int, len(dims))
	for _, d := range dims {
		totals[d] = 0
	}

	for _, ev := range events {
		if !validEvent(ev) {
			continue
		}
		if len(dims) > 0 {
			if _, known := totals[ev.Dimension]; !known {
				continue
			}
		}
		totals[ev.Dimension] += ev.Score
	}
	return totals
}

func validEvent(ev AnswerEvent) bool {
	return ev.Dimension != "" && ev.Score >= 0 && ev.Score <= quiz.MaxScorePerQuestion
}

// Skipped marks a question the user did not answer.
const Skipped = -1

// AggregateSelections converts the chosen answer index for each question
// (0-based, in question order) into dimension totals for q. Selections that
// are Skipped, out of range, or beyond the last question are ignored; the
// number of ignored entries is returned alongside the totals.
func AggregateSelections(q *quiz.Quiz, selections []int) (map[string]int, int) {
	events := make([]AnswerEvent, 0, len(selections))
	ignored := 0
	for i, sel := range selections {
		if i >= len(q.Questions) {
			ignored++
			continue
		}
		qs := q.Questions[i]
		if sel < 0 || sel >= len(qs.Answers) {
			ignored++
			continue
		}
		ev := AnswerEvent{Dimension: qs.Dimension, Score: qs.Answers[sel].Score}
		if !validEvent(ev) {
			ignored++
			continue
		}
		events = append(events, ev)
	}
	return Aggregate(events, q.DimensionIDs()), ignored
}
