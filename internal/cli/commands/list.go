package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"beeftest/internal/config"
	"beeftest/internal/registry"
	"beeftest/internal/selection"
	"beeftest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *registry.Registry
	filter   *selection.Filter
	stdout   io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, reg *registry.Registry, stdout io.Writer) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: reg,
		filter:   selection.NewFilter(),
		stdout:   stdout,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	lc.registry.Seal()

	// Filter tests
	tests := lc.filter.ByPattern(lc.registry.All(), lc.config.Flags.Filter)

	if len(tests) == 0 {
		fmt.Fprintln(lc.stdout, "No tests found")
		return nil
	}

	ui.NewFormatter(lc.config, lc.stdout).PrintTestList(tests, lc.config.Flags.ShowTests)
	return nil
}
