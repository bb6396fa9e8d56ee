package config

const (
	// DefaultOutputDir is the directory saved runs are written to
	DefaultOutputDir = ".beeftest"
	// DefaultOutputFile is the file name of the saved run
	DefaultOutputFile = "last-run.json"
	// DefaultEnvFile is loaded, if present, before reading the environment
	DefaultEnvFile = ".env"
	// DefaultLogLevel is the level of diagnostic logging on stderr
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the format of diagnostic logging on stderr
	DefaultLogFormat = "text"
	// DefaultDatabasePort is used when DB_HOST is set without DB_PORT
	DefaultDatabasePort = "3306"
)

// Environment variables read by Load
const (
	EnvVerbosity = "BEEFTEST_VERBOSITY"
	EnvOutputDir = "BEEFTEST_OUTPUT_DIR"
	EnvLogFile   = "BEEFTEST_LOG_FILE"
	EnvLogLevel  = "BEEFTEST_LOG_LEVEL"
	EnvDSN       = "BEEFTEST_DB_DSN"
	EnvNoColor   = "NO_COLOR"
)
