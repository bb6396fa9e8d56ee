package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"beeftest/internal/config"
	"beeftest/internal/storage"
	"beeftest/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
	stdout  io.Writer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer, stdout io.Writer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
		stdout:  stdout,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	run, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved run, run the tests with --save first: %w", err)
	}

	if fc.config.Flags.Summary {
		ui.NewFormatter(fc.config, fc.stdout).PrintRunStats(run)
		return nil
	}
	return fc.viewer.View(run)
}
