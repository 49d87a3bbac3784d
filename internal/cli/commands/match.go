package commands

import (
	"fmt"

	"tcm/internal/analyzer"
	"tcm/internal/config"
	"tcm/internal/discovery"
	"tcm/internal/domain"
	"tcm/internal/execution"
	"tcm/internal/reader"
	"tcm/internal/storage"
	"tcm/internal/ui"

	"github.com/spf13/cobra"
)

// MatchCommand handles the match command
type MatchCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	scheduler execution.Scheduler
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewMatchCommand creates a new MatchCommand
func NewMatchCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	scheduler execution.Scheduler,
	st storage.Storage,
	formatter *ui.Formatter,
) *MatchCommand {
	return &MatchCommand{
		config:    cfg,
		filter:    filter,
		scheduler: scheduler,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (mc *MatchCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := ui.NewLogger(mc.config.Flags.Verbose)

	// Configuration errors stop the run before any result is read
	m, cases, err := buildMatcher(ctx, mc.config)
	if err != nil {
		return err
	}
	log.Debugf("strategy %s, %d known test cases", m.Strategy(), len(cases))

	statuses, err := analyzer.ParseStatuses(mc.config.StatusFilter)
	if err != nil {
		return fmt.Errorf("status filter: %w", err)
	}

	r, err := reader.New(mc.config.ResultFormat, log)
	if err != nil {
		return err
	}
	files, err := mc.resultFiles(log, args)
	if err != nil {
		return err
	}
	log.Debugf("reading %d result file(s) as %s", len(files), mc.config.ResultFormat)
	all, err := reader.ReadAll(ctx, r, files)
	if err != nil {
		return err
	}
	opts := analyzer.Options{
		FailOnFailing:   mc.config.FailOnFailing,
		FailOnSkipped:   mc.config.FailOnSkipped,
		FailOnUnmatched: mc.config.FailOnUnmatched,
	}

	results := mc.filterResults(all, statuses)
	if len(results) == 0 {
		log.Warnf("No test results to match")
		return analyzer.Analyze(all, nil, opts)
	}

	pool := execution.NewWorkerPool(mc.config.Processors, m, mc.scheduler)
	pool.SetProgress(ui.NewProgressBar(len(results)))

	matches, duration, err := pool.Execute(ctx, results)
	if err != nil {
		return err
	}

	report := storage.BuildReport(string(m.Strategy()), matches, duration, mc.config.Processors)
	if err := mc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save match report: %w", err)
	}
	log.Debugf("report written to %s", mc.config.GetOutputPath())

	if mc.config.Flags.Verbose {
		mc.formatter.PrintMatches(matches)
	}
	mc.formatter.PrintSummary(report)

	return analyzer.Analyze(all, matches, opts)
}

// resultFiles returns the configured result files, scanning ResultDirectory when none are given
func (mc *MatchCommand) resultFiles(log *ui.Logger, args []string) ([]string, error) {
	files := append(mc.config.GetResultFiles(), args...)
	if len(files) > 0 || mc.config.ResultDirectory == "" {
		return files, nil
	}

	// skip lists come from the loaded config, so the scanner is built per run
	scanner := discovery.NewScanner(append(mc.config.PathsToIgnore, mc.config.OutputJSONDir))
	files, err := scanner.Scan(mc.config.ResultDirectory, reader.Extensions(mc.config.ResultFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", mc.config.ResultDirectory, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no result files found in %s", mc.config.ResultDirectory)
	}
	log.Infof("Found %d result file(s) in %s", len(files), mc.config.ResultDirectory)
	return files, nil
}

func (mc *MatchCommand) filterResults(results []domain.TestResult, statuses []domain.Status) []domain.TestResult {
	results = analyzer.FilterByStatus(results, statuses)
	if mc.config.NameFilter != "" {
		results = mc.filter.FilterByName(results, mc.config.NameFilter)
	}
	return results
}
