package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tcm/internal/domain"
	"tcm/internal/matcher"
)

// MatchViewer displays match results in an interactive TUI
type MatchViewer struct{}

// NewMatchViewer creates a new MatchViewer
func NewMatchViewer() *MatchViewer {
	return &MatchViewer{}
}

// View displays the report: results on the left, details on the right.
// 'u' toggles between all results and unmatched results only.
func (mv *MatchViewer) View(report *domain.MatchReport) error {
	if len(report.Details) == 0 {
		color.Yellow("No results in the last report")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	unmatchedOnly := false
	var visible []int

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(visible) {
			detailsView.SetText(FormatRecordDetails(report.Details[visible[index]]))
			detailsView.ScrollToBeginning()
		} else {
			detailsView.SetText("")
		}
	}

	refresh := func() {
		list.Clear()
		visible = visible[:0]
		for i, r := range report.Details {
			if unmatchedOnly && r.Matched {
				continue
			}
			visible = append(visible, i)
			list.AddItem(formatListItem(r, i+1), "", 0, nil)
		}
		mode := "all"
		if unmatchedOnly {
			mode = "unmatched"
		}
		headerView.SetText(fmt.Sprintf(
			" Match Results (%d total, %d matched, %d unmatched, showing %s) | ↑↓ navigate, [yellow]U[white] toggle unmatched, → details, ← back, Ctrl+C exit ",
			report.Meta.TotalResults, report.Meta.Matched, report.Meta.Unmatched, mode))
		updateDetails()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'u' || event.Rune() == 'U' {
				unmatchedOnly = !unmatchedOnly
				refresh()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	refresh()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func formatListItem(r domain.MatchRecord, number int) string {
	name := tview.Escape(r.TestName)
	if r.Matched {
		return fmt.Sprintf("[green]✓[white] [yellow]%d.[white] %s", number, name)
	}
	return fmt.Sprintf("[red]✗[white] [yellow]%d.[white] %s", number, name)
}

// FormatRecordDetails formats a record for display using tview color tags
func FormatRecordDetails(r domain.MatchRecord) string {
	var b strings.Builder

	if r.Matched {
		fmt.Fprintf(&b, "[green]✓ Test case: %s[white]\n\n", tview.Escape(r.CaseID))
	} else {
		fmt.Fprintf(&b, "[red]✗ No matching test case[white]\n\n")
	}

	fmt.Fprintf(&b, "[cyan]Test:[white] %s\n", tview.Escape(r.TestName))
	if r.DisplayName != "" {
		fmt.Fprintf(&b, "[cyan]Display name:[white] %s\n", tview.Escape(r.DisplayName))
	}
	if r.ClassName != "" {
		fmt.Fprintf(&b, "[cyan]Class:[white] %s\n", tview.Escape(r.ClassName))
	}
	fmt.Fprintf(&b, "[cyan]Status:[white] %s\n", statusTag(r.Status))

	if props := matcher.ParseProperties(r.ConsoleOutput); len(props) > 0 {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(&b, "\n[yellow]Properties:[white]\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s = %s\n", tview.Escape(k), tview.Escape(props[k]))
		}
	}

	if len(r.ConsoleOutput) > 0 {
		fmt.Fprintf(&b, "\n[yellow]Console Output:[white]\n")
		for i, line := range r.ConsoleOutput {
			if i == 50 {
				fmt.Fprintf(&b, "  [gray]... and %d more lines[white]\n", len(r.ConsoleOutput)-50)
				break
			}
			fmt.Fprintf(&b, "  %s\n", tview.Escape(line))
		}
	}
	return b.String()
}

func statusTag(s domain.Status) string {
	switch s {
	case domain.StatusPassed:
		return "[green]" + string(s) + "[white]"
	case domain.StatusFailed:
		return "[red]" + string(s) + "[white]"
	default:
		return "[yellow]" + string(s) + "[white]"
	}
}
