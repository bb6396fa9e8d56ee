package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"beeftest/internal/config"
	"beeftest/internal/domain"
	"beeftest/internal/registry"
	"beeftest/internal/report"
)

// Formatter formats and displays listings and saved run statistics
type Formatter struct {
	config *config.Config
	out    io.Writer

	cyan   *color.Color
	yellow *color.Color
	green  *color.Color
	red    *color.Color
}

// NewFormatter creates a new Formatter writing to w
func NewFormatter(cfg *config.Config, w io.Writer) *Formatter {
	f := &Formatter{
		config: cfg,
		out:    w,
		cyan:   color.New(color.FgCyan),
		yellow: color.New(color.FgYellow),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{f.cyan, f.yellow, f.green, f.red} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// PrintTestList prints the files declaring tests, optionally with the tests
// of each file. tests must be in canonical order.
func (f *Formatter) PrintTestList(tests []*registry.Descriptor, showTests bool) {
	groups := groupByFile(tests)

	if showTests {
		f.green.Fprintf(f.out, "Found %d test(s) in %d file(s):\n\n", len(tests), len(groups))
	} else {
		f.green.Fprintf(f.out, "Found %d file(s) with tests:\n\n", len(groups))
	}

	for i, group := range groups {
		isLastFile := i == len(groups)-1
		branch, indent := "├── ", "│   "
		if isLastFile {
			branch, indent = "└── ", "    "
		}

		path := report.DisplayPath(f.config.WorkDir, group[0].File)
		fmt.Fprintf(f.out, "%s%s %s\n", branch, f.cyan.Sprint(path), f.yellow.Sprintf("(%d)", len(group)))

		if !showTests {
			continue
		}
		for j, d := range group {
			leaf := "├── "
			if j == len(group)-1 {
				leaf = "└── "
			}
			fmt.Fprintf(f.out, "%s%s:%d %s\n", indent, leaf, d.Line, f.yellow.Sprint(d.Name))
		}
	}
}

// PrintRunStats prints the statistics of a saved run followed by its
// failures grouped by file
func (f *Formatter) PrintRunStats(run *domain.RunRecord) {
	meta := run.Meta

	f.cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	f.cyan.Fprintln(f.out, "║                       Test Run Statistics                     ║")
	f.cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Run", meta.RunID, nil},
		{"Tests Run", fmt.Sprint(meta.Executed), nil},
		{"Passed", fmt.Sprint(meta.Passed), f.green},
		{"Failed", fmt.Sprint(meta.Failed), f.red},
		{"Unresolved Failures", fmt.Sprint(run.Unresolved()), f.red},
		{"Duration", fmt.Sprintf("%.3fs", meta.DurationSeconds), nil},
		{"Timestamp", meta.Timestamp, nil},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────────────────┐")
	for i, row := range rows {
		value := fmt.Sprintf("%-39s", row.value)
		if row.c != nil {
			value = row.c.Sprint(value)
		}
		fmt.Fprintf(f.out, "│ %-31s │ %s │\n", row.label, value)
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────────────────┘")
	fmt.Fprintln(f.out)

	if meta.Failed == 0 {
		f.green.Fprintln(f.out, "✓ All tests passed!")
		return
	}
	f.red.Fprintf(f.out, "✗ %d of %d test(s) failed\n\n", meta.Failed, meta.Executed)
	f.printFailureTree(run.Details)
}

// printFailureTree prints failed tests under their file, with failed assertions
func (f *Formatter) printFailureTree(failures []domain.TestFailure) {
	byFile := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		byFile[failure.File] = append(byFile[failure.File], failure)
	}

	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		f.yellow.Fprintln(f.out, report.DisplayPath(f.config.WorkDir, file))
		for _, failure := range byFile[file] {
			marker := "  |_ "
			if failure.Resolved {
				marker = "  |✓ "
			}
			f.red.Fprintf(f.out, "%s:%d %q\n", marker, failure.Line, failure.TestName)
			for _, r := range failure.Failed {
				fmt.Fprintf(f.out, "  |     :%d %s\n", r.Line, r.Expression)
			}
		}
	}
}

// groupByFile splits tests in canonical order into per-file runs
func groupByFile(tests []*registry.Descriptor) [][]*registry.Descriptor {
	var groups [][]*registry.Descriptor
	for i, d := range tests {
		if i == 0 || tests[i-1].File != d.File {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], d)
	}
	return groups
}
