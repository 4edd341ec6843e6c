package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/petmatch/internal/attempt"
	"github.com/abhisek/petmatch/internal/render"
	"github.com/abhisek/petmatch/internal/scoring"
)

var takeCmd = &cobra.Command{
	Use:   "take <quiz>",
	Short: "Score a quiz from your answers",
	Long: "Without --answers, prints the questions. With --answers, scores them,\n" +
		"shows your result and saves it. Answers are 1-based option numbers in\n" +
		"question order; use - to skip a question.",
	Example: "  petmatch take human --answers 3,2,1,1,3,3",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		q := catalog.Quiz(args[0])
		if q == nil {
			return fmt.Errorf("%w: %q (run `petmatch quizzes` to list them)", attempt.ErrUnknownQuiz, args[0])
		}

		raw, _ := cmd.Flags().GetStringSlice("answers")
		if len(raw) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n\n", q.Emoji, q.Name)
			return render.Questions(cmd.OutOrStdout(), q)
		}
		selections := parseAnswers(raw)

		cfgSvc := attempt.Config{
			Catalog: catalog,
			Logger:  logger,
			History: cfg.History,
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		var out *attempt.Outcome
		if dryRun {
			out, err = attempt.NewService(cfgSvc).Evaluate(q.ID, selections)
		} else {
			st, openErr := openStore(cmd)
			if openErr != nil {
				return openErr
			}
			defer st.Close()
			cfgSvc.Repo = st.ResultRepo()
			out, err = attempt.NewService(cfgSvc).Complete(cmd.Context(), q.ID, selections)
		}
		if err != nil {
			return err
		}

		if err := render.Outcome(cmd.OutOrStdout(), out); err != nil {
			return err
		}
		if out.Skipped > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "note: %d answer(s) were skipped\n", out.Skipped)
		}
		return nil
	},
}

func init() {
	takeCmd.Flags().StringSlice("answers", nil, "Comma-separated 1-based answer numbers")
	takeCmd.Flags().Bool("dry-run", false, "Show the result without saving it")
}

// parseAnswers converts 1-based answer numbers into 0-based selections.
// Anything that is not a positive number becomes scoring.Skipped.
func parseAnswers(raw []string) []int {
	selections := make([]int, len(raw))
	for i, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 1 {
			selections[i] = scoring.Skipped
			continue
		}
		selections[i] = n - 1
	}
	return selections
}
