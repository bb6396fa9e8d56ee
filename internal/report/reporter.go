package report

import "beeftest/internal/domain"

// Reporter receives run events as they happen
type Reporter interface {
	TestStarted(test domain.TestInfo)
	TestFinished(outcome domain.Outcome)
	Summary(summary domain.RunSummary)
}

type multi []Reporter

// Multi returns a Reporter forwarding every event to each reporter in turn
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multi) TestStarted(test domain.TestInfo) {
	for _, r := range m {
		r.TestStarted(test)
	}
}

func (m multi) TestFinished(outcome domain.Outcome) {
	for _, r := range m {
		r.TestFinished(outcome)
	}
}

func (m multi) Summary(summary domain.RunSummary) {
	for _, r := range m {
		r.Summary(summary)
	}
}
