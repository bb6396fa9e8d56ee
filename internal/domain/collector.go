package domain

// abortSignal is raised by a failed hard check and recovered by the runner.
type abortSignal struct{}

// Collector gathers the assertion records of a single test execution.
// A new Collector is created for every test and discarded once reported.
type Collector struct {
	test    TestInfo
	records []Record
	aborted bool // set by a failed hard check; later checks are not recorded
}

// NewCollector creates an empty Collector for the given test
func NewCollector(test TestInfo) *Collector {
	return &Collector{test: test}
}

// Test returns the test being collected
func (c *Collector) Test() TestInfo {
	return c.test
}

// Check records the outcome of a soft assertion and returns it.
// Execution continues regardless of the outcome. Nothing is recorded once a
// hard check failed, e.g. from a deferred call while the body unwinds.
func (c *Collector) Check(expression string, line int, pass bool) bool {
	if c.aborted {
		return pass
	}
	c.records = append(c.records, Record{Expression: expression, Line: line, Pass: pass})
	return pass
}

// Require records the outcome of a hard assertion. On failure the rest of the
// test body is skipped.
func (c *Collector) Require(expression string, line int, pass bool) {
	if !c.Check(expression, line, pass) && !c.aborted {
		c.aborted = true
		panic(abortSignal{})
	}
}

// Aborted reports whether a hard check failed
func (c *Collector) Aborted() bool {
	return c.aborted
}

// Records returns the recorded assertions in evaluation order
func (c *Collector) Records() []Record {
	return c.records
}

// Pass reports whether every recorded assertion held. A test without
// assertions passes.
func (c *Collector) Pass() bool {
	for _, r := range c.records {
		if !r.Pass {
			return false
		}
	}
	return true
}

// IsAbort reports whether a recovered panic value was raised by Require
func IsAbort(v any) bool {
	_, ok := v.(abortSignal)
	return ok
}
