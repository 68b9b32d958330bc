package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/passgauge/internal/config"
)

var (
	dbPath     string
	configPath string

	// RootCmd is the root command for passgauge
	RootCmd = &cobra.Command{
		Use:   "passgauge",
		Short: "Password strength auditing and generation",
		Long: `passgauge scores passwords on a 1-100 scale using entropy estimation,
weak-pattern detection, and a dictionary of known common passwords, and
estimates how long each would survive against realistic attackers.

Nothing you audit is ever stored: the optional history database records
only scores and metrics, never password text.

Examples:
  # Assess a single password
  passgauge assess 'Tr0ub4dor&3'

  # Audit a file of candidates, one per line
  passgauge audit candidates.txt

  # Emit the assessment as JSON
  passgauge assess --json 'hunter2'

  # Generate a strong password and show its score
  passgauge generate --assess

  # Re-audit a candidate file whenever it changes
  passgauge watch candidates.txt

  # Review past audit scores
  passgauge history`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("passgauge: password strength auditing and generation")
			fmt.Println()
			fmt.Println("Run 'passgauge assess <password>' to score a password.")
			fmt.Println("Run 'passgauge --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: ~/.passgauge/passgauge.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.passgauge/config.toml)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	dir, err := getAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "passgauge.db"), nil
}

// getAppDir returns ~/.passgauge, creating it if needed.
func getAppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	appDir := filepath.Join(home, ".passgauge")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create passgauge directory: %w", err)
	}
	return appDir, nil
}

// loadConfig reads the TOML config from the --config flag or the
// default location. A missing file yields the zero config.
func loadConfig() (config.FileConfig, error) {
	path := configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.FileConfig{}, nil
		}
		path = filepath.Join(home, ".passgauge", "config.toml")
	}
	return config.Load(path)
}
