package cli

// Exit statuses other than the failed test count
const (
	ExitOK    = 0
	ExitUsage = 255 // unknown test or file, bad flag or parameter
	MaxFailed = 255
)

// ExitError is an error that carries the process exit code.
// An empty Message means nothing is printed.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// FailedExitCode maps a failed test count to an exit status
func FailedExitCode(failed int) int {
	return min(failed, MaxFailed)
}
