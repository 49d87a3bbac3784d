package commands

import (
	"fmt"

	"tcm/internal/config"
	"tcm/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CasesCommand handles the cases command
type CasesCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewCasesCommand creates a new CasesCommand
func NewCasesCommand(cfg *config.Config, formatter *ui.Formatter) *CasesCommand {
	return &CasesCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CasesCommand) Execute(cmd *cobra.Command, args []string) error {
	src := newCatalog(cc.config)
	if src == nil {
		return errNoCatalog
	}

	cases, err := src.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load test cases: %w", err)
	}

	if len(cases) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	cc.formatter.PrintCases(cases)
	return nil
}
