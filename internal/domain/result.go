package domain

import "time"

// Record holds the result of a single assertion
type Record struct {
	Expression string `json:"expression"` // Source text of the checked condition
	Line       int    `json:"line"`
	Pass       bool   `json:"pass"`
}

// Outcome is the result of executing one test
type Outcome struct {
	Test     TestInfo
	Pass     bool
	Records  []Record
	Duration time.Duration
}

// FailedRecords returns the records of assertions that did not hold
func (o Outcome) FailedRecords() []Record {
	var failed []Record
	for _, r := range o.Records {
		if !r.Pass {
			failed = append(failed, r)
		}
	}
	return failed
}

// RunSummary contains the counts reported at the end of a run
type RunSummary struct {
	Executed int `json:"executed"`
	Failed   int `json:"failed"`
}

// Passed returns the number of tests that passed
func (s RunSummary) Passed() int {
	return s.Executed - s.Failed
}

// Add accounts for one finished test
func (s *RunSummary) Add(pass bool) {
	s.Executed++
	if !pass {
		s.Failed++
	}
}
