package commands

import (
	"fmt"
	"strings"

	"tcm/internal/cli"
	"tcm/internal/config"
	"tcm/internal/discovery"
	"tcm/internal/execution"
	"tcm/internal/matcher"
	"tcm/internal/reader"
	"tcm/internal/storage"
	"tcm/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Match    *MatchCommand
	Cases    *CasesCommand
	View     *ViewCommand
	Validate *ValidateCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	scheduler := execution.NewRoundRobinScheduler()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewMatchViewer()

	return &Commands{
		Match:    NewMatchCommand(cfg, filter, scheduler, jsonStorage, formatter),
		Cases:    NewCasesCommand(cfg, formatter),
		View:     NewViewCommand(cfg, jsonStorage, viewer),
		Validate: NewValidateCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config from file, environment and flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file (default: ./"+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print debug output and every match")

	strategies := make([]string, len(matcher.Strategies))
	for i, s := range matcher.Strategies {
		strategies[i] = string(s)
	}

	// Match command
	matchCmd := &cobra.Command{
		Use:     "match [result files...]",
		Short:   "Match test results to test cases",
		Long:    "Read test framework results and associate each result with an external test case id",
		RunE:    c.Match.Execute,
		PreRunE: loadConfig,
	}
	addMatchFlags(matchCmd, flags, strategies)
	matchCmd.Flags().StringSliceVarP(&flags.ResultFiles, "input", "i", nil, "Test result files (comma separated, globs allowed)")
	matchCmd.Flags().StringVarP(&flags.ResultFormat, "format", "f", "", fmt.Sprintf("Test result format (%s)", strings.Join(reader.Formats, ", ")))
	matchCmd.Flags().StringVarP(&flags.ResultDirectory, "input-dir", "d", "", "Directory relative result files are resolved against, scanned when no files are given")
	matchCmd.Flags().StringVar(&flags.NameFilter, "filter", "", "Only match results whose name matches the pattern (supports wildcards, e.g. '*Login*')")
	matchCmd.Flags().StringSliceVar(&flags.StatusFilter, "status", nil, "Only match results with these statuses (passed, failed, skipped)")
	matchCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, fmt.Sprintf("Number of matching workers (default %d)", config.DefaultProcessors))
	matchCmd.Flags().BoolVar(&flags.FailOnFailing, "fail-on-failing", false, "Exit with an error when results contain failing tests")
	matchCmd.Flags().BoolVar(&flags.FailOnSkipped, "fail-on-skipped", false, "Exit with an error when results contain skipped tests")
	matchCmd.Flags().BoolVar(&flags.FailOnUnmatched, "fail-on-unmatched", false, "Exit with an error when a result matches no test case")
	rootCmd.AddCommand(matchCmd)

	// Cases command
	casesCmd := &cobra.Command{
		Use:     "cases",
		Short:   "List known test cases",
		Long:    "Load and list the test cases used by the name strategy",
		RunE:    c.Cases.Execute,
		PreRunE: loadConfig,
	}
	addCatalogFlags(casesCmd, flags)
	rootCmd.AddCommand(casesCmd)

	// Validate command
	validateCmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate the match configuration",
		Long:    "Compile the configured strategy and report configuration errors without reading results",
		RunE:    c.Validate.Execute,
		PreRunE: loadConfig,
	}
	addMatchFlags(validateCmd, flags, strategies)
	validateCmd.Flags().StringVarP(&flags.ResultFormat, "format", "f", "", fmt.Sprintf("Test result format (%s)", strings.Join(reader.Formats, ", ")))
	rootCmd.AddCommand(validateCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "View match results interactively",
		Long:    "Display the results of the last match run in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(viewCmd)
}

func addMatchFlags(cmd *cobra.Command, flags *cli.Flags, strategies []string) {
	cmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", "", fmt.Sprintf("Match strategy (%s)", strings.Join(strategies, ", ")))
	cmd.Flags().StringVar(&flags.TestCaseRegex, "regex", "", "Regex applied to test names; the first capture group is the case id")
	cmd.Flags().StringVar(&flags.TestCaseProperty, "property", "", "Console property key carrying the case id")
	addCatalogFlags(cmd, flags)
}

func addCatalogFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.CatalogFile, "catalog", "", "YAML or JSON file with known test cases")
	cmd.Flags().StringVar(&flags.CatalogTable, "catalog-table", "", "MySQL table with known test cases (DSN from TCM_DB_* variables)")
}
