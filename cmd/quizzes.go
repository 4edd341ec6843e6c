package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/petmatch/internal/quiz"
	"github.com/abhisek/petmatch/internal/render"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List available quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		return render.Quizzes(cmd.OutOrStdout(), catalog)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check quiz definition files for authoring errors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			catalog *quiz.Catalog
			err     error
		)
		if len(args) == 1 {
			catalog, err = quiz.LoadDir(args[0])
		} else {
			catalog, err = loadCatalog()
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d quizzes, %d correlation tables\n",
			catalog.Len(), len(catalog.Correlations()))
		return nil
	},
}
