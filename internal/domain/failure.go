package domain

// TestFailure represents a failed test of a stored run
type TestFailure struct {
	TestName string   `json:"test_name"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Failed   []Record `json:"failed_assertions"`
	Resolved bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// NewTestFailure builds the stored form of a failed outcome
func NewTestFailure(o Outcome) TestFailure {
	return TestFailure{
		TestName: o.Test.Name,
		File:     o.Test.File,
		Line:     o.Test.Line,
		Failed:   o.FailedRecords(),
	}
}
