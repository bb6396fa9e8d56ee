package report

import (
	"time"

	"github.com/google/uuid"

	"beeftest/internal/domain"
)

// Recorder collects a run into its persisted form
type Recorder struct {
	id       string
	started  time.Time
	finished time.Time
	summary  domain.RunSummary
	failures []domain.TestFailure
}

// NewRecorder creates a Recorder for a run starting now
func NewRecorder() *Recorder {
	return &Recorder{
		id:      uuid.NewString(),
		started: time.Now(),
	}
}

// TestStarted implements Reporter
func (r *Recorder) TestStarted(domain.TestInfo) {}

// TestFinished implements Reporter
func (r *Recorder) TestFinished(o domain.Outcome) {
	if !o.Pass {
		r.failures = append(r.failures, domain.NewTestFailure(o))
	}
}

// Summary implements Reporter
func (r *Recorder) Summary(s domain.RunSummary) {
	r.summary = s
	r.finished = time.Now()
}

// Record returns the collected run
func (r *Recorder) Record() *domain.RunRecord {
	finished := r.finished
	if finished.IsZero() {
		finished = time.Now()
	}
	duration := finished.Sub(r.started)

	details := r.failures
	if details == nil {
		details = []domain.TestFailure{}
	}

	return &domain.RunRecord{
		Meta: domain.RunMeta{
			RunID:           r.id,
			Executed:        r.summary.Executed,
			Passed:          r.summary.Passed(),
			Failed:          r.summary.Failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       r.started.Format(time.RFC3339),
		},
		Details: details,
	}
}
