package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"tcm/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output}
}

// SetOutput redirects the formatter
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

var (
	cyan   = color.New(color.FgCyan)
	white  = color.New(color.FgWhite)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// PrintSummary displays the meta statistics of a report followed by the unmatched results
func (f *Formatter) PrintSummary(report *domain.MatchReport) {
	meta := report.Meta

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                   Test Case Match Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Strategy", white, meta.Strategy)
	f.separator()
	f.row("Total Results", white, meta.TotalResults)
	f.separator()
	f.row("Matched", green, meta.Matched)
	f.separator()
	f.row("Unmatched", yellow, meta.Unmatched)
	f.separator()
	f.row("Passed / Failed / Skipped", white, fmt.Sprintf("%d / %d / %d", meta.Passed, meta.Failed, meta.Skipped))
	f.separator()
	f.row("Duration", white, fmt.Sprintf("%.3fs", meta.DurationSeconds))
	f.separator()
	f.row("Workers", white, meta.Workers)
	f.separator()
	f.row("Run ID", white, meta.RunID)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.Unmatched == 0 {
		green.Fprintln(f.out, "✓ All results matched a test case!")
		return
	}
	yellow.Fprintf(f.out, "✗ %d result(s) did not match a test case\n", meta.Unmatched)
	fmt.Fprintln(f.out)
	f.printUnmatchedTree(report.Unmatched())
}

func (f *Formatter) row(label string, c *color.Color, value any) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27v", value)
	fmt.Fprintln(f.out, " │")
}

func (f *Formatter) separator() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

// printUnmatchedTree prints unmatched results grouped by class
func (f *Formatter) printUnmatchedTree(records []domain.MatchRecord) {
	byClass := make(map[string][]domain.MatchRecord)
	for _, r := range records {
		byClass[r.ClassName] = append(byClass[r.ClassName], r)
	}

	var classes []string
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		name := class
		if name == "" {
			name = "(no class)"
		}
		cyan.Fprintln(f.out, name)
		tests := byClass[class]
		for i, r := range tests {
			connector := "  |_"
			if i == len(tests)-1 {
				connector = "   |_"
			}
			label := r.TestName
			if r.DisplayName != "" && r.DisplayName != r.TestName {
				label = fmt.Sprintf("%s (%s)", r.TestName, r.DisplayName)
			}
			yellow.Fprintf(f.out, "%s%s\n", connector, label)
		}
	}
}

// PrintCases lists the known test cases
func (f *Formatter) PrintCases(cases []domain.TestCase) {
	cyan.Fprintf(f.out, "Known test cases: %d\n\n", len(cases))
	for i, tc := range cases {
		fmt.Fprintf(f.out, "%4d. ", i+1)
		if tc.ID != "" {
			yellow.Fprintf(f.out, "[%s] ", tc.ID)
		}
		white.Fprintln(f.out, tc.Name)
	}
}

// PrintMatches lists every result with its case id
func (f *Formatter) PrintMatches(matches []domain.MatchResult) {
	for _, m := range matches {
		if m.Matched() {
			green.Fprintf(f.out, "✓ %-12s ", m.CaseID)
		} else {
			red.Fprintf(f.out, "✗ %-12s ", "unmatched")
		}
		fmt.Fprintf(f.out, "%s [%s]\n", m.TestResult.Name, m.TestResult.Status)
	}
}
