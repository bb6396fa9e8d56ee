package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"beeftest/internal/cli"
	"beeftest/internal/config"
	"beeftest/internal/execution"
	"beeftest/internal/registry"
	"beeftest/internal/report"
	"beeftest/internal/selection"
	"beeftest/internal/storage"
	"beeftest/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *registry.Registry
	storage  storage.Storage
	stdout   io.Writer
	stderr   io.Writer

	// newExecutor builds the executor for a run of count tests
	newExecutor func(reporter report.Reporter, count int) execution.Executor
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	st storage.Storage,
	stdout io.Writer,
	stderr io.Writer,
) *RunCommand {
	rc := &RunCommand{
		config:   cfg,
		registry: reg,
		storage:  st,
		stdout:   stdout,
		stderr:   stderr,
	}
	rc.newExecutor = rc.newRunner
	return rc
}

// newRunner creates the sequential runner, with a progress bar on stderr
// when enabled
func (rc *RunCommand) newRunner(reporter report.Reporter, count int) execution.Executor {
	runner := execution.NewRunner(reporter)
	if rc.config.Progress {
		runner.SetProgress(ui.NewProgressBar(rc.stderr, count, rc.config.Color))
	}
	return runner
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Select tests; nothing runs if a name or file is unknown
	selector := selection.NewSelector(rc.registry).WithWorkDir(rc.config.WorkDir)
	sel, err := selector.Select(args, rc.config.Flags.Files)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	slog.Debug("Selected tests.", "count", sel.Len(), "files", len(sel.Files()))

	consoleOpts := report.ConsoleOptions{
		Verbosity: rc.config.Verbosity,
		MaxLine:   rc.registry.MaxLine(),
		Color:     rc.config.Color,
		WorkDir:   rc.config.WorkDir,
	}
	reporters := []report.Reporter{report.NewConsole(rc.stdout, consoleOpts)}

	// Mirror the report to a log file
	if rc.config.LogFile != "" {
		logFile, err := os.Create(rc.config.LogFile)
		if err != nil {
			return &cli.ExitError{Code: cli.ExitUsage, Message: fmt.Sprintf("Cannot open log file %q: %v", rc.config.LogFile, err)}
		}
		defer logFile.Close()

		plain := consoleOpts
		plain.Color = false
		reporters = append(reporters, report.NewConsole(logFile, plain))
	}

	var recorder *report.Recorder
	if rc.config.Save {
		recorder = report.NewRecorder()
		reporters = append(reporters, recorder)
	}

	executor := rc.newExecutor(report.Multi(reporters...), sel.Len())
	summary := executor.Run(sel)

	// Save results; the exit status stays the failed count either way
	if recorder != nil {
		if err := rc.storage.Save(recorder.Record()); err != nil {
			slog.Error("Failed to save test results.", "error", err)
		}
	}

	if summary.Failed > 0 {
		return &cli.ExitError{Code: cli.FailedExitCode(summary.Failed)}
	}
	return nil
}
