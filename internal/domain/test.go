package domain

// TestInfo identifies a declared test
type TestInfo struct {
	Name string // Test name, not necessarily unique
	File string // Source file the test was declared in
	Line int    // Source line of the declaration
}
