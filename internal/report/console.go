package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"beeftest/internal/domain"
)

// ConsoleOptions configures a Console reporter
type ConsoleOptions struct {
	Verbosity Level
	MaxLine   int    // Largest declaration line, sets the line column width
	Color     bool   // Emit ANSI colours
	WorkDir   string // Files under it are printed relative to it
}

// Console renders results as text, grouped by source file.
// Output is flushed after every test and after the summary.
type Console struct {
	out       *bufio.Writer
	verbosity Level
	width     int
	workDir   string

	currentFile string

	pass   *color.Color
	fail   *color.Color
	header *color.Color
}

// NewConsole creates a Console writing to w
func NewConsole(w io.Writer, opts ConsoleOptions) *Console {
	c := &Console{
		out:       bufio.NewWriter(w),
		verbosity: opts.Verbosity,
		width:     digits(opts.MaxLine),
		workDir:   opts.WorkDir,
		pass:      color.New(color.FgGreen),
		fail:      color.New(color.FgRed, color.Bold),
		header:    color.New(color.FgCyan),
	}
	for _, col := range []*color.Color{c.pass, c.fail, c.header} {
		if opts.Color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// TestStarted implements Reporter. Nothing is printed until the test finishes.
func (c *Console) TestStarted(domain.TestInfo) {}

// TestFinished implements Reporter
func (c *Console) TestFinished(o domain.Outcome) {
	if !c.shows(o.Pass, AllTests, FailTests) {
		return
	}

	if o.Test.File != c.currentFile {
		if c.currentFile != "" {
			c.out.WriteString("\n")
		}
		c.currentFile = o.Test.File
		c.out.WriteString(c.header.Sprint(DisplayPath(c.workDir, o.Test.File)) + "\n")
	}

	fmt.Fprintf(c.out, ":%-*d%s \"%s\"\n", c.width+1, o.Test.Line, c.status(o.Pass), o.Test.Name)

	for _, r := range o.Records {
		if c.shows(r.Pass, AllAsserts, FailAsserts) {
			fmt.Fprintf(c.out, ":%-*d%s %s\n", c.width+5, r.Line, c.status(r.Pass), r.Expression)
		}
	}

	c.out.Flush()
}

// Summary implements Reporter
func (c *Console) Summary(s domain.RunSummary) {
	fmt.Fprintf(c.out, "\nTests run: %d\nTests failed: %d\n", s.Executed, s.Failed)
	c.out.Flush()
}

// shows reports whether an item is printed: passed items need passLevel,
// failed ones failLevel.
func (c *Console) shows(pass bool, passLevel, failLevel Level) bool {
	if pass {
		return c.verbosity >= passLevel
	}
	return c.verbosity >= failLevel
}

func (c *Console) status(pass bool) string {
	if pass {
		return c.pass.Sprint("[PASS]")
	}
	return c.fail.Sprint("[FAIL]")
}

// DisplayPath returns file relative to workDir when it lies below it
func DisplayPath(workDir, file string) string {
	if workDir == "" || !filepath.IsAbs(file) {
		return file
	}
	rel, err := filepath.Rel(workDir, filepath.FromSlash(file))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return file
	}
	return filepath.ToSlash(rel)
}

// digits returns the number of decimal digits of n
func digits(n int) int {
	d := 1
	for n /= 10; n > 0; n /= 10 {
		d++
	}
	return d
}
