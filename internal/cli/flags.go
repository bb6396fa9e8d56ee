package cli

import "beeftest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Files     []string
	Verbosity string
	LogFile   string
	Progress  bool
	NoColor   bool
	Save      bool
	Filter    string
	ShowTests bool
	Summary   bool
	LogLevel  string
	LogFormat string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	files := make([]string, len(f.Files))
	copy(files, f.Files)

	return config.Flags{
		Files:     files,
		Verbosity: f.Verbosity,
		LogFile:   f.LogFile,
		Progress:  f.Progress,
		NoColor:   f.NoColor,
		Save:      f.Save,
		Filter:    f.Filter,
		ShowTests: f.ShowTests,
		Summary:   f.Summary,
		LogLevel:  f.LogLevel,
		LogFormat: f.LogFormat,
	}
}
