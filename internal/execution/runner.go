package execution

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"beeftest/internal/domain"
	"beeftest/internal/registry"
	"beeftest/internal/report"
	"beeftest/internal/selection"
)

// Runner executes tests one after another in selection order.
// Each outcome is handed to the reporter before the next test starts.
type Runner struct {
	reporter report.Reporter
	progress Progress
}

var _ Executor = (*Runner)(nil)

// NewRunner creates a new Runner reporting to reporter
func NewRunner(reporter report.Reporter) *Runner {
	return &Runner{reporter: reporter}
}

// SetProgress sets the progress sink for the runner
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// Run executes every test of sel and reports the summary
func (r *Runner) Run(sel selection.Selection) domain.RunSummary {
	var summary domain.RunSummary

	for _, d := range sel {
		r.reporter.TestStarted(d.Info())
		outcome := r.runTest(d)
		r.reporter.TestFinished(outcome)

		summary.Add(outcome.Pass)
		if r.progress != nil {
			r.progress.Update(summary.Passed(), summary.Failed)
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	r.reporter.Summary(summary)
	return summary
}

// runTest runs one test body against a fresh collector
func (r *Runner) runTest(d *registry.Descriptor) domain.Outcome {
	collector := domain.NewCollector(d.Info())
	start := time.Now()
	execute(d, collector)

	return domain.Outcome{
		Test:     d.Info(),
		Pass:     collector.Pass(),
		Records:  collector.Records(),
		Duration: time.Since(start),
	}
}

// execute calls the body on its own goroutine and waits for it, stopping at
// a failed hard check. Any other panic, or a body that ends with
// runtime.Goexit, is recorded as a failed assertion on the test's
// declaration line.
func execute(d *registry.Descriptor, c *domain.Collector) {
	done := make(chan struct{})

	go func() {
		returned := false
		defer close(done)
		defer func() {
			v := recover()
			switch {
			case v != nil && !domain.IsAbort(v):
				slog.Debug("Test panicked.", "test", d.Name, "file", d.File, "panic", v, "stack", string(debug.Stack()))
				c.Check(fmt.Sprintf("panic: %v", v), d.Line, false)
			case v == nil && !returned:
				slog.Debug("Test body exited its goroutine.", "test", d.Name, "file", d.File)
				c.Check("test body called runtime.Goexit", d.Line, false)
			}
		}()

		d.Body.Run(c)
		returned = true
	}()

	<-done
}
