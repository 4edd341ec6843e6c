package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/petmatch/internal/insight"
	"github.com/abhisek/petmatch/internal/render"
	"github.com/abhisek/petmatch/internal/store"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "See how your results match each other",
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

		results, err := st.ResultRepo().List(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return err
		}

		primary := cfg.Primary
		if p, _ := cmd.Flags().GetString("primary"); p != "" {
			primary = p
		}
		report := insight.NewComposer(catalog, logger).Compose(primary, results)
		return render.Report(cmd.OutOrStdout(), report)
	},
}

func init() {
	insightCmd.Flags().String("primary", "", "Quiz to compare the others against (overrides PETMATCH_PRIMARY)")
}
