package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agentx-labs/blueprint/internal/branding"
	"github.com/agentx-labs/blueprint/internal/config"
	"github.com/agentx-labs/blueprint/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` synthesizes a TypeScript package from a single declarative
record: package.json, tsconfig, lint and test configuration, license, and the
manifests that track what was generated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		l, err := newLogger()
		if err != nil {
			// config commands must stay usable to repair a bad setting.
			if !isConfigCommand(cmd) {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; logging at warn\n", err)
			if l, err = logging.New(logging.DefaultConfig()); err != nil {
				return err
			}
		}
		logger = l
		return nil
	},
}

func newLogger() (*zap.Logger, error) {
	cfg := loggerConfig()
	l, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", config.KeyLogLevel, cfg.Level, err)
	}
	return l, nil
}

// loggerConfig maps user settings onto the logger: log_format json selects
// the production JSON encoder, --verbose forces debug.
func loggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = config.LogLevel()
	cfg.Development = config.LogFormat() != config.LogFormatJSON
	if verbose {
		cfg.Level = "debug"
	}
	return cfg
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the command context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer func() { _ = logger.Sync() }()

	return rootCmd.ExecuteContext(ctx)
}
