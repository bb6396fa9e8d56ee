package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Level selects how much of a run the console reporter prints
type Level int

const (
	// FailTests prints failed tests only
	FailTests Level = iota
	// FailAsserts prints failed tests with their failed assertions
	FailAsserts
	// AllTests prints every test without assertion detail
	AllTests
	// AllAsserts prints every test with every assertion
	AllAsserts
)

// DefaultLevel is used when no verbosity is configured
const DefaultLevel = FailAsserts

// ParseLevel parses a verbosity given as an integer from 0 to 3
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultLevel, fmt.Errorf("verbosity level must be an integer, got %q", s)
	}
	level := Level(n)
	if !level.Valid() {
		return DefaultLevel, fmt.Errorf("verbosity level must be between %d and %d, got %d", FailTests, AllAsserts, n)
	}
	return level, nil
}

// Valid reports whether l is one of the known levels
func (l Level) Valid() bool {
	return l >= FailTests && l <= AllAsserts
}

func (l Level) String() string {
	switch l {
	case FailTests:
		return "fail-tests"
	case FailAsserts:
		return "fail-asserts"
	case AllTests:
		return "all-tests"
	case AllAsserts:
		return "all-asserts"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}
