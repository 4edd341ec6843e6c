package scoring

import (
	"testing"

	"github.com/abhisek/petmatch/internal/quiz"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		questions int
		want      quiz.Level
	}{
		{"exactly 60% is high", 15, 5, quiz.LevelHigh},
		{"above 60% is high", 16, 5, quiz.LevelHigh},
		{"just below 60% is medium", 14, 5, quiz.LevelMedium},
		{"exactly 40% is medium", 10, 5, quiz.LevelMedium},
		{"just below 40% is low", 9, 5, quiz.LevelLow},
		{"two questions 6/10 is high", 6, 2, quiz.LevelHigh},
		{"two questions 4/10 is medium", 4, 2, quiz.LevelMedium},
		{"two questions 3/10 is low", 3, 2, quiz.LevelLow},
		{"zero score", 0, 5, quiz.LevelLow},
		{"max score", 25, 5, quiz.LevelHigh},
		{"zero questions", 12, 0, quiz.LevelLow},
		{"negative questions", 12, -1, quiz.LevelLow},
		{"over max clamps to high", 40, 2, quiz.LevelHigh},
		{"negative score clamps to low", -3, 2, quiz.LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.score, tt.questions)
			if got != tt.want {
				t.Errorf("Classify(%d, %d) = %q, want %q", tt.score, tt.questions, got, tt.want)
			}
		})
	}
}

func TestClassify_Monotonic(t *testing.T) {
	rank := map[quiz.Level]int{quiz.LevelLow: 0, quiz.LevelMedium: 1, quiz.LevelHigh: 2}
	for n := 0; n <= 8; n++ {
		prev := Classify(-1, n)
		for score := 0; score <= n*quiz.MaxScorePerQuestion+2; score++ {
			got := Classify(score, n)
			if rank[got] < rank[prev] {
				t.Fatalf("Classify not monotonic for n=%d: score %d -> %q after %q", n, score, got, prev)
			}
			prev = got
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, questions int
		want             float64
	}{
		{9, 2, 0.9},
		{2, 2, 0.2},
		{0, 0, 0},
		{10, 2, 1},
		{11, 2, 1},
		{-1, 2, 0},
	}
	for _, tt := range tests {
		got := Percentage(tt.score, tt.questions)
		if got != tt.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tt.score, tt.questions, got, tt.want)
		}
	}
}

func TestClassifyAll(t *testing.T) {
	q := &quiz.Quiz{
		ID: "human",
		Dimensions: []quiz.Dimension{
			{ID: "curious"}, {ID: "boss"}, {ID: "lonely"},
		},
		Questions: []quiz.Question{
			{Dimension: "curious"}, {Dimension: "curious"},
			{Dimension: "boss"}, {Dimension: "boss"},
		},
	}

	levels := ClassifyAll(q, map[string]int{"curious": 9, "boss": 2, "lonely": 5})

	want := map[string]quiz.Level{
		"curious": quiz.LevelHigh,
		"boss":    quiz.LevelLow,
		"lonely":  quiz.LevelLow, // no questions
	}
	for dim, lvl := range want {
		if levels[dim] != lvl {
			t.Errorf("level[%s] = %q, want %q", dim, levels[dim], lvl)
		}
	}
	if len(levels) != len(want) {
		t.Errorf("got %d levels, want %d", len(levels), len(want))
	}
}
