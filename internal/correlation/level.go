package correlation

// MatchLevel is the discrete label of a similarity score. It is deliberately
// a separate type from quiz.Level: the bands use different thresholds.
type MatchLevel string

const (
	MatchHigh     MatchLevel = "high"
	MatchMedium   MatchLevel = "medium"
	MatchLow      MatchLevel = "low"
	MatchMismatch MatchLevel = "mismatch"
)

// AllMatchLevels returns all match levels from best to worst.
func AllMatchLevels() []MatchLevel {
	return []MatchLevel{MatchHigh, MatchMedium, MatchLow, MatchMismatch}
}

// DisplayName returns a human-readable label for the match level.
func (m MatchLevel) DisplayName() string {
	switch m {
	case MatchHigh:
		return "great match"
	case MatchMedium:
		return "good match"
	case MatchLow:
		return "ok match"
	case MatchMismatch:
		return "mismatch"
	default:
		return string(m)
	}
}

// LevelFor returns the match level for a similarity score in [0, 1].
func LevelFor(score float64) MatchLevel {
	switch {
	case score >= 0.8:
		return MatchHigh
	case score >= 0.6:
		return MatchMedium
	case score >= 0.4:
		return MatchLow
	default:
		return MatchMismatch
	}
}
