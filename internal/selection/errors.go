package selection

import "fmt"

// UnknownTestError is returned when a requested name matches no registered test
type UnknownTestError struct {
	Name string
}

func (e *UnknownTestError) Error() string {
	return fmt.Sprintf("No tests found for name %q", e.Name)
}

// UnknownFileError is returned when a requested file declares no registered test
type UnknownFileError struct {
	File string
}

func (e *UnknownFileError) Error() string {
	return fmt.Sprintf("No tests found for file %q", e.File)
}
