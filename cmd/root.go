package cmd

import (
	"github.com/spf13/cobra"

	"github.com/revisa-app/revisa/internal/config"
	"github.com/revisa-app/revisa/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "revisa",
	Short: "Spaced repetition engine for concurso preparation",
	Long:  "Revisa schedules flashcard reviews with SM-2 and serves the study API used by the Revisa apps.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVISA_DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration for a command, folding the --db
// flag into the config's database path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, nil)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to
// the default location under the user data directory.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}
