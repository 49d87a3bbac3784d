package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows matching progress on stderr
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

var progressTheme = progressbar.Theme{
	Saucer:        color.GreenString("▇"),
	SaucerHead:    color.GreenString("▇"),
	SaucerPadding: " ",
	BarStart:      "[",
	BarEnd:        "]",
}

// NewProgressBar creates a bar for count results
func NewProgressBar(count int) *ProgressBar {
	return &ProgressBar{bar: progressbar.NewOptions(count,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetTheme(progressTheme),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)}
}

// Update moves the bar to matched+unmatched and refreshes the counters
func (p *ProgressBar) Update(matched, unmatched int) {
	p.bar.Describe(describe(matched, unmatched))
	_ = p.bar.Set(matched + unmatched)
}

// Finish completes the bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

func describe(matched, unmatched int) string {
	return fmt.Sprintf("%s %s %s",
		color.CyanString("Matching"),
		color.GreenString("%d linked", matched),
		color.YellowString("%d unlinked", unmatched))
}
