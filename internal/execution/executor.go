package execution

import (
	"beeftest/internal/domain"
	"beeftest/internal/selection"
)

// Executor executes selected tests and returns the run summary
type Executor interface {
	Run(sel selection.Selection) domain.RunSummary
}

// Progress is notified after every finished test
type Progress interface {
	Update(passed, failed int)
	Finish()
}
