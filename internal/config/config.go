package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"beeftest/internal/report"
)

// Config holds all configuration for the application
type Config struct {
	// Reporting settings
	Verbosity report.Level
	Color     bool
	LogFile   string // Mirror of the console report, without colours
	Progress  bool

	// Working directory, used to shorten and resolve file paths
	WorkDir string

	// Saved run settings
	Save       bool
	OutputDir  string
	OutputFile string
	Database   Database

	// Diagnostics
	LogLevel  string
	LogFormat string

	// Command flags
	Flags Flags
}

// Database holds the MySQL connection settings for saved runs
type Database struct {
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Enabled reports whether runs are saved to MySQL instead of a JSON file
func (d Database) Enabled() bool {
	return d.DSN != "" || (d.Host != "" && d.Name != "")
}

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

// New creates a new Config with defaults
func New() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return &Config{
		Verbosity:  report.DefaultLevel,
		Color:      term.IsTerminal(int(os.Stdout.Fd())),
		WorkDir:    wd,
		OutputDir:  DefaultOutputDir,
		OutputFile: DefaultOutputFile,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// Load creates a config from defaults and the environment. Variables from
// envFile are added to the environment first; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := New()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvVerbosity); v != "" {
		level, err := report.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbosity, err)
		}
		c.Verbosity = level
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.Color = false
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	c.Database = Database{
		DSN:      os.Getenv(EnvDSN),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_DATABASE"),
	}
	if c.Database.Host != "" && c.Database.Port == "" {
		c.Database.Port = DefaultDatabasePort
	}
	return nil
}

// Apply overrides the configuration with command-line flags
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags

	if flags.Verbosity != "" {
		level, err := report.ParseLevel(flags.Verbosity)
		if err != nil {
			return err
		}
		c.Verbosity = level
	}
	if flags.NoColor {
		c.Color = false
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.LogFormat = flags.LogFormat
	}
	c.Progress = flags.Progress
	c.Save = flags.Save
	return nil
}

// GetOutputPath returns the full path of the saved run file.
// Relative output directories are resolved against the working directory.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputDir, c.OutputFile)
	if filepath.IsAbs(p) || c.WorkDir == "" {
		return p
	}
	return filepath.Join(c.WorkDir, p)
}
