package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"beeftest/internal/cli"
	"beeftest/internal/config"
	"beeftest/internal/registry"
	"beeftest/internal/storage"
	"beeftest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *registry.Registry, stdout, stderr io.Writer) *Commands {
	st := storage.New(cfg)
	errorViewer := ui.NewErrorViewer(cfg, st)

	return &Commands{
		Run:      NewRunCommand(cfg, reg, st, stdout, stderr),
		List:     NewListCommand(cfg, reg, stdout),
		Failures: NewFailuresCommand(cfg, st, errorViewer, stdout),
	}
}

// Register registers all commands with cobra. The root command runs tests
// itself; "run" does the same and lets a test named like a subcommand be
// selected.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, stderr io.Writer) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		return setup(cfg, flags, stderr)
	}
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Diagnostics level: debug, info, warn or error (default warn)")
	rootCmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", "", "Diagnostics format: text or json (default text)")

	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.Run.Execute
	addRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [test names...]",
		Short: "Run the selected tests",
		Long:  "Run the tests named on the command line and every test declared in the files given with -f. Without names or files every test runs.",
		Args:  cobra.ArbitraryArgs,
		RunE:  c.Run.Execute,
	}
	addRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List the files declaring tests, without running anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVar(&flags.Filter, "filter", "", "Filter tests by name pattern (supports wildcards, e.g., 'add*' or '*user*')")
	listCmd.Flags().BoolVarP(&flags.ShowTests, "tests", "t", false, "Show the tests of each file")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failures of the last saved run",
		Long:  "Display the failures of the last run saved with --save in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	failuresCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print the run statistics instead of opening the viewer")
	rootCmd.AddCommand(failuresCmd)
}

func addRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringArrayVarP(&flags.Files, "file", "f", nil, "Run every test declared in this source file (repeatable)")
	cmd.Flags().StringVarP(&flags.Verbosity, "verbosity", "v", "", "Verbosity level 0-3: failed tests, failed assertions, all tests, all assertions (default 1)")
	cmd.Flags().StringVar(&flags.LogFile, "log", "", "Also write the plain report to this file")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save the run for the failures viewer")
}

// setup applies parsed flags to the config and installs the logger
func setup(cfg *config.Config, flags *cli.Flags, stderr io.Writer) error {
	if err := cfg.Apply(flags.ToConfigFlags()); err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	logger, err := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	slog.SetDefault(logger)
	return nil
}

// NewRootCommand builds the command tree over reg
func NewRootCommand(cfg *config.Config, reg *registry.Registry, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "beeftest [test names...]",
		Short:         "Run the tests compiled into this program",
		Long:          `Run the tests registered in this program. Test names select tests by name, -f selects every test of a file. Without either, all tests run. The exit status is the number of failed tests, capped at 255.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	})

	var flags cli.Flags
	cmds := NewCommands(cfg, reg, stdout, stderr)
	cmds.Register(rootCmd, &flags, cfg, stderr)
	return rootCmd
}

// Execute runs the command line args against reg and returns the exit
// status. Messages go to stdout next to the report.
func Execute(reg *registry.Registry, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return cli.ExitUsage
	}

	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCommand(cfg, reg, stdout, stderr)
	rootCmd.SetArgs(args)
	return exitCode(rootCmd.Execute(), stdout)
}

func exitCode(err error, w io.Writer) int {
	if err == nil {
		return cli.ExitOK
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(w, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return cli.ExitUsage
}
