// Package render formats quiz outcomes and insight reports for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/petmatch/internal/attempt"
	"github.com/abhisek/petmatch/internal/correlation"
	"github.com/abhisek/petmatch/internal/insight"
	"github.com/abhisek/petmatch/internal/quiz"
	"github.com/abhisek/petmatch/internal/ui/components"
	"github.com/abhisek/petmatch/internal/ui/theme"
)

// BarWidth is the width of a dimension bar including its label.
const BarWidth = 48

var titleCaser = cases.Title(language.English)

// DisplayName returns the dimension's name, or a title-cased ID when the
// definition has none.
func DisplayName(d quiz.Dimension) string {
	name := d.Name
	if name == "" {
		name = titleCaser.String(strings.NewReplacer("_", " ", "-", " ").Replace(d.ID))
	}
	if d.Emoji != "" {
		name = d.Emoji + " " + name
	}
	return name
}

// Outcome renders the matched result with a bar per dimension.
func Outcome(w io.Writer, out *attempt.Outcome) error {
	label := out.Match.Label

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(out.Quiz.Name))
	b.WriteString("\n")
	b.WriteString(theme.Title.Render(strings.TrimSpace(label.Emoji + " " + label.Name)))
	b.WriteString("\n")
	if label.Description != "" {
		b.WriteString(theme.Body.Render(label.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labelWidth := 0
	for _, d := range out.Quiz.Dimensions {
		labelWidth = max(labelWidth, lipgloss.Width(DisplayName(d)))
	}
	for _, d := range out.Quiz.Dimensions {
		name := DisplayName(d)
		name += strings.Repeat(" ", labelWidth-lipgloss.Width(name))
		bar := components.NewProgressBar(name, out.Percentages[d.ID], true, BarWidth)
		bar.Suffix = levelBadge(out.Levels[d.ID])
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	if label.Interpretation != "" || label.Guidance != "" {
		b.WriteString("\n")
	}
	if label.Interpretation != "" {
		b.WriteString(theme.Body.Render(label.Interpretation))
		b.WriteString("\n")
	}
	if label.Guidance != "" {
		b.WriteString(theme.Hint.Render("Tip: " + label.Guidance))
		b.WriteString("\n")
	}

	_, err := fmt.Fprintln(w, theme.HighlightCard.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

// Report renders an insight report.
func Report(w io.Writer, r *insight.Report) error {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Insights"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s (%d%%)", r.Summary, int(r.CompletionRatio*100+0.5))))
	b.WriteString("\n")

	if !r.HasData {
		b.WriteString("\n")
		if r.Primary == nil {
			b.WriteString(theme.Hint.Render("Take your personality quiz first to unlock insights."))
		} else {
			b.WriteString(theme.Hint.Render("Complete another quiz to see how it matches your personality."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("You: " + strings.TrimSpace(r.Primary.ResultEmoji+" "+r.Primary.ResultName)))
		b.WriteString("\n\n")
		b.WriteString(theme.Emphasis.Render("Best match: " + r.Best.Blurb))
		b.WriteString("\n\n")
		for _, p := range r.Pairs {
			fmt.Fprintf(&b, "%-22s %3d%%  %s\n",
				p.QuizName,
				int(p.Correlation.Score*100+0.5),
				matchBadge(p.Correlation.Level))
			b.WriteString("  " + theme.Hint.Render(p.Blurb))
			b.WriteString("\n")
		}
	}

	if len(r.Remaining) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Next up: " + strings.Join(r.Remaining, ", ")))
		b.WriteString("\n")
	}

	_, err := fmt.Fprintln(w, theme.Card.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

// Quizzes lists every quiz in the catalog.
func Quizzes(w io.Writer, catalog *quiz.Catalog) error {
	for _, q := range catalog.Quizzes() {
		dims := make([]string, len(q.Dimensions))
		for i, d := range q.Dimensions {
			dims[i] = DisplayName(d)
		}
		_, err := fmt.Fprintf(w, "%s  %s  %s\n    %s\n",
			theme.Emphasis.Render(q.ID),
			strings.TrimSpace(q.Emoji+" "+q.Name),
			theme.Subtitle.Render(fmt.Sprintf("%d questions, %d results", len(q.Questions), len(q.Results))),
			theme.Hint.Render(strings.Join(dims, " · ")))
		if err != nil {
			return err
		}
	}
	return nil
}

// Questions prints a quiz's questions with numbered answers, the format
// `take --answers` expects.
func Questions(w io.Writer, q *quiz.Quiz) error {
	for i, qs := range q.Questions {
		if _, err := fmt.Fprintf(w, "%s %s\n", theme.Emphasis.Render(fmt.Sprintf("%d.", i+1)), qs.Text); err != nil {
			return err
		}
		for j, a := range qs.Answers {
			if _, err := fmt.Fprintf(w, "   %d) %s\n", j+1, a.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// Results lists stored results, oldest first.
func Results(w io.Writer, results []quiz.TestResult, catalog *quiz.Catalog) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, theme.Hint.Render("No results yet."))
		return err
	}
	for _, r := range results {
		name := r.TestType
		if q := catalog.Quiz(r.TestType); q != nil {
			name = q.Name
		}
		_, err := fmt.Fprintf(w, "%s  %-22s %s\n",
			theme.Subtitle.Render(r.CreatedAt.Local().Format(time.DateTime)),
			name,
			strings.TrimSpace(r.ResultEmoji+" "+r.ResultName))
		if err != nil {
			return err
		}
	}
	return nil
}

func levelBadge(l quiz.Level) string {
	switch l {
	case quiz.LevelHigh:
		return theme.Badge(theme.Success).Render(l.DisplayName())
	case quiz.LevelMedium:
		return theme.Badge(theme.Warning).Render(l.DisplayName())
	default:
		return theme.Badge(theme.TextDim).Render(l.DisplayName())
	}
}

func matchBadge(m correlation.MatchLevel) string {
	switch m {
	case correlation.MatchHigh:
		return theme.Badge(theme.Success).Render(m.DisplayName())
	case correlation.MatchMedium:
		return theme.Badge(theme.Secondary).Render(m.DisplayName())
	case correlation.MatchLow:
		return theme.Badge(theme.Warning).Render(m.DisplayName())
	default:
		return theme.Badge(theme.Error).Render(m.DisplayName())
	}
}
