package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/petmatch/internal/render"
	"github.com/abhisek/petmatch/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List saved quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		testType, _ := cmd.Flags().GetString("quiz")
		limit, _ := cmd.Flags().GetInt("limit")
		results, err := st.ResultRepo().List(cmd.Context(), store.QueryOpts{TestType: testType, Limit: limit})
		if err != nil {
			return err
		}
		return render.Results(cmd.OutOrStdout(), results, catalog)
	},
}

func init() {
	resultsCmd.Flags().String("quiz", "", "Only show results for this quiz")
	resultsCmd.Flags().Int("limit", 0, "Show at most this many recent results (0 = all)")
}
