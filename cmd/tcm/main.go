package main

import (
	"context"
	"os"
	"os/signal"

	"tcm/internal/cli"
	"tcm/internal/cli/commands"
	"tcm/internal/config"
	"tcm/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "tcm",
		Short: "Test case matcher",
		Long: `Associate executed test results with external test case records.
Results are linked by a regex over the test name, by the test or display name, or by a
[[PROPERTY|key=value]] marker written to the console during the test.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.NewLogger(false).Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}
