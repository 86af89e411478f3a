package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/postpager/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// It writes a default config.yaml and a .gitignore that keeps logs out of
// version control. configPath points at the root --config flag.
func NewConfigInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to $POSTPAGER_HOME/config.yaml (default ~/.postpager),
or to the path given with --config. A .gitignore is created next to it
unless one already exists.`,
		Example: `  # Create the default configuration
  postpager config init

  # Create configuration, overwriting existing
  postpager config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, *configPath, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, path string, force bool) error {
	cfg := config.New()
	if path != "" {
		cfg.SetConfigPath(path)
	}

	// Check if config already exists and force isn't set
	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Create .gitignore (never overwrites existing)
	created, err := config.EnsureGitignore(filepath.Dir(cfg.ConfigPath()))
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", cfg.ConfigPath())
	if created {
		cmd.Printf("Created .gitignore to keep logs out of version control\n")
	}

	return nil
}
