package commands

import (
	"tcm/internal/config"
	"tcm/internal/matcher"
	"tcm/internal/reader"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ValidateCommand handles the validate command
type ValidateCommand struct {
	config *config.Config
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(cfg *config.Config) *ValidateCommand {
	return &ValidateCommand{config: cfg}
}

// Execute builds the matcher and result reader without reading any results
func (vc *ValidateCommand) Execute(cmd *cobra.Command, args []string) error {
	m, cases, err := buildMatcher(cmd.Context(), vc.config)
	if err != nil {
		return err
	}
	if _, err := reader.New(vc.config.ResultFormat, nil); err != nil {
		return err
	}

	color.Green("✓ Configuration is valid")
	color.White("  strategy: %s", m.Strategy())
	switch m.Strategy() {
	case matcher.StrategyRegex:
		color.White("  regex: %s", vc.config.TestCaseRegex)
	case matcher.StrategyProperty:
		color.White("  property: %s", vc.config.TestCaseProperty)
	case matcher.StrategyName:
		color.White("  known test cases: %d", len(cases))
	}
	color.White("  result format: %s", vc.config.ResultFormat)
	return nil
}
