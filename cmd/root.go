package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/petmatch/internal/config"
	"github.com/abhisek/petmatch/internal/logging"
	"github.com/abhisek/petmatch/internal/quiz"
	"github.com/abhisek/petmatch/internal/store"
)

var (
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "petmatch",
	Short: "Personality and pet compatibility quizzes",
	Long: "petmatch: take personality quizzes in the terminal, find your archetype,\n" +
		"and see which pets your personality matches best.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.FromEnv()
		if err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("quizzes"); dir != "" {
			c.QuizDir = dir
		}
		verbose, _ := cmd.Flags().GetBool("verbose")

		l, err := logging.New(c.LogLevel, verbose)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PETMATCH_DB env var)")
	rootCmd.PersistentFlags().String("quizzes", "", "Directory of quiz definition files (overrides PETMATCH_QUIZ_DIR env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PETMATCH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the result store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("Opened store", zap.String("path", dbPath))
	return st, nil
}

// loadCatalog loads the configured quiz directory, or the built-in catalog.
func loadCatalog() (*quiz.Catalog, error) {
	if cfg.QuizDir == "" {
		return quiz.Default()
	}
	c, err := quiz.LoadDir(cfg.QuizDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded quizzes", zap.String("dir", cfg.QuizDir), zap.Int("count", c.Len()))
	return c, nil
}
