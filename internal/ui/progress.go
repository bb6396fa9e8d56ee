package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many selected tests have run so far
type ProgressBar struct {
	bar *progressbar.ProgressBar

	cyan  *color.Color
	green *color.Color
	red   *color.Color
}

// NewProgressBar creates a progress bar over count tests writing to w.
// useColor decides colouring, independently of whether w is a terminal.
func NewProgressBar(w io.Writer, count int, useColor bool) *ProgressBar {
	p := &ProgressBar{
		cyan:  color.New(color.FgCyan),
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.cyan, p.green, p.red} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(p.describe(0, 0)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        p.cyan.Sprint("█"),
			SaucerHead:    p.cyan.Sprint("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(useColor),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return p
}

// Update updates the progress bar with pass and failure counts
func (p *ProgressBar) Update(passed, failed int) {
	p.bar.Describe(p.describe(passed, failed))
	p.bar.Set(passed + failed)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func (p *ProgressBar) describe(passed, failed int) string {
	return p.cyan.Sprint("Running tests: ") +
		p.green.Sprintf("[passed: %d", passed) +
		" | " +
		p.red.Sprintf("failed: %d]", failed)
}
