package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"beeftest/internal/config"
	"beeftest/internal/domain"
	"beeftest/internal/report"
	"beeftest/internal/storage"
)

// ErrorViewer displays the failures of a saved run in an interactive TUI
type ErrorViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config, st storage.Storage) *ErrorViewer {
	return &ErrorViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the run's failures. Toggling a failure as resolved saves the
// run again.
func (ev *ErrorViewer) View(run *domain.RunRecord) error {
	if len(run.Details) == 0 {
		green := color.New(color.FgGreen)
		if ev.config.Color {
			green.EnableColor()
		} else {
			green.DisableColor()
		}
		green.Println("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range run.Details {
		list.AddItem(ev.listItemText(run, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	locationView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed tests (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(run.Details), run.Unresolved()))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(run.Details) {
			return
		}
		failure := run.Details[index]
		locationView.SetText(ev.formatLocation(failure))
		detailsView.SetText(FormatFailureDetails(failure))
	}

	toggleResolved := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(run.Details) {
			return
		}
		run.Details[index].Resolved = !run.Details[index].Resolved
		list.SetItemText(index, ev.listItemText(run, index), "")
		updateHeader()
		updateDetails()
		if err := ev.storage.Save(run); err != nil {
			slog.Warn("Could not save resolved state.", "error", err)
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				toggleResolved()
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

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(locationView, 2, 0, false).
		AddItem(tview.NewFlex().
			AddItem(detailsView, 0, 1, false).
			AddItem(tview.NewBox(), 2, 0, false), 0, 1, false)

	body := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (ev *ErrorViewer) listItemText(run *domain.RunRecord, index int) string {
	failure := run.Details[index]
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(failure.TestName))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(failure.TestName))
}

func (ev *ErrorViewer) formatLocation(failure domain.TestFailure) string {
	path := report.DisplayPath(ev.config.WorkDir, failure.File)
	return fmt.Sprintf("[cyan]at:[white] [yellow]%s:%d[white]\n", tview.Escape(path), failure.Line)
}

// FormatFailureDetails formats a failure using tview colour tags
func FormatFailureDetails(failure domain.TestFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.TestName))
	if failure.Resolved {
		b.WriteString("[green]Marked as resolved[white]\n\n")
	}

	if len(failure.Failed) == 0 {
		b.WriteString("[gray]No failed assertion was recorded.[white]\n")
		return b.String()
	}

	b.WriteString("[yellow]Failed assertions:[white]\n")
	for _, r := range failure.Failed {
		fmt.Fprintf(&b, "  line %d: %s\n", r.Line, tview.Escape(r.Expression))
	}
	return b.String()
}
