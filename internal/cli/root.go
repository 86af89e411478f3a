package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/postpager/internal/config"
	"github.com/rshade/postpager/internal/logging"
	"github.com/rshade/postpager/pkg/version"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	configPath string
	debug      bool
	plain      bool
	trace      bool
}

// NewRootCmd creates the root Cobra command for the postpager CLI.
// Running it without a subcommand fetches the posts once and shows them
// ten per page; config subcommands manage the configuration file.
func NewRootCmd(ver string) *cobra.Command {
	var (
		flags     rootFlags
		logResult *logging.LogPathResult
		session   *runSession
	)

	cmd := &cobra.Command{
		Use:   "postpager",
		Short: "Browse posts in a paginated table",
		Long: `postpager fetches the posts collection once and shows it in a table,
ten rows per page, with Back and Forward controls.

When stdout is not a terminal (or --plain is set) the first page is
printed as plain text instead.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.InitGlobalConfig(flags.configPath); err != nil {
				return err
			}

			result := setupLogging(cmd, flags.debug)
			logResult = &result

			s, err := setupTracing(cmd, ver, flags.trace)
			if err != nil {
				return err
			}
			session = s
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPosts(cmd, flags.plain)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if err := session.shutdown(cmd.Context()); err != nil {
				logger.Warn().Ctx(cmd.Context()).Err(err).Msg("trace shutdown failed")
			}
			return cleanupLogging(logResult)
		},
	}

	if !version.IsRelease(ver) {
		cmd.SetVersionTemplate(devVersionTemplate)
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"config file (default $POSTPAGER_HOME/config.yaml or ~/.postpager/config.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print the first page as plain text and exit")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "export fetch spans to the configured trace file")

	cmd.AddCommand(newConfigCmd(&flags))

	return cmd
}

// devVersionTemplate marks builds whose version is not a semantic version.
const devVersionTemplate = "{{.Name}} version {{.Version}} (development build)\n"

const rootCmdExample = `  # Browse posts interactively
  postpager

  # Print the first page without the interactive table
  postpager --plain

  # Use another configuration file
  postpager --config ./postpager.yaml

  # Write a default configuration file
  postpager config init`

// newConfigCmd creates the config command group. Config subcommands work on
// the file itself, so they replace the root hooks and skip logging setup.
func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "config",
		Short:              "Configuration management commands",
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	}
	cmd.AddCommand(NewConfigInitCmd(&flags.configPath), NewConfigValidateCmd(&flags.configPath))
	return cmd
}
