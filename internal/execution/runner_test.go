package execution

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beeftest/internal/domain"
	"beeftest/internal/registry"
	"beeftest/internal/selection"
)

type captured struct {
	events   []string
	outcomes []domain.Outcome
	summary  *domain.RunSummary
}

func (c *captured) TestStarted(t domain.TestInfo) {
	c.events = append(c.events, "start "+t.Name)
}

func (c *captured) TestFinished(o domain.Outcome) {
	c.events = append(c.events, "finish "+o.Test.Name)
	c.outcomes = append(c.outcomes, o)
}

func (c *captured) Summary(s domain.RunSummary) {
	c.events = append(c.events, "summary")
	c.summary = &s
}

type fakeProgress struct {
	updates  [][2]int
	finished bool
}

func (p *fakeProgress) Update(passed, failed int) {
	p.updates = append(p.updates, [2]int{passed, failed})
}

func (p *fakeProgress) Finish() {
	p.finished = true
}

func newTest(name string, line int, body func(c *domain.Collector)) *registry.Descriptor {
	return registry.NewDescriptor(name, "runner_test.go", line, registry.BodyFunc(body))
}

func TestRunner_SoftChecksContinue(t *testing.T) {
	rep := &captured{}
	sel := selection.Selection{newTest("soft", 1, func(c *domain.Collector) {
		c.Check("Cond(one)", 2, true)
		c.Check("Cond(two)", 3, false)
		c.Check("Cond(three)", 4, true)
	})}

	summary := NewRunner(rep).Run(sel)

	require.Len(t, rep.outcomes, 1)
	assert.False(t, rep.outcomes[0].Pass)
	assert.Len(t, rep.outcomes[0].Records, 3)
	assert.Equal(t, domain.RunSummary{Executed: 1, Failed: 1}, summary)
}

func TestRunner_HardChecksStop(t *testing.T) {
	rep := &captured{}
	reachedEnd := false
	sel := selection.Selection{newTest("hard", 1, func(c *domain.Collector) {
		c.Require("Assert(one)", 2, true)
		c.Require("Assert(two)", 3, false)
		c.Require("Assert(three)", 4, true)
		reachedEnd = true
	})}

	summary := NewRunner(rep).Run(sel)

	require.Len(t, rep.outcomes, 1)
	assert.False(t, rep.outcomes[0].Pass)
	assert.Equal(t, []domain.Record{
		{Expression: "Assert(one)", Line: 2, Pass: true},
		{Expression: "Assert(two)", Line: 3, Pass: false},
	}, rep.outcomes[0].Records)
	assert.False(t, reachedEnd)
	assert.Equal(t, 1, summary.Failed)
}

func TestRunner_DeferredCheckAfterHardFailure(t *testing.T) {
	rep := &captured{}
	sel := selection.Selection{newTest("deferred", 1, func(c *domain.Collector) {
		c.Check("Cond(first)", 2, true)
		defer c.Check("Cond(deferred)", 3, false)
		c.Require("Assert(false)", 4, false)
		c.Check("Cond(never)", 5, true)
	})}

	NewRunner(rep).Run(sel)

	require.Len(t, rep.outcomes, 1)
	assert.Equal(t, []domain.Record{
		{Expression: "Cond(first)", Line: 2, Pass: true},
		{Expression: "Assert(false)", Line: 4, Pass: false},
	}, rep.outcomes[0].Records)
}

func TestRunner_GoexitIsRecordedAsFailure(t *testing.T) {
	rep := &captured{}
	sel := selection.Selection{
		newTest("exits", 10, func(c *domain.Collector) {
			c.Check("Cond(before)", 11, true)
			runtime.Goexit()
		}),
		newTest("after", 20, func(c *domain.Collector) {
			c.Check("Cond(after)", 21, true)
		}),
	}

	summary := NewRunner(rep).Run(sel)

	require.Len(t, rep.outcomes, 2)
	assert.Equal(t, []domain.Record{
		{Expression: "Cond(before)", Line: 11, Pass: true},
		{Expression: "test body called runtime.Goexit", Line: 10, Pass: false},
	}, rep.outcomes[0].Records)
	assert.True(t, rep.outcomes[1].Pass)
	assert.Equal(t, domain.RunSummary{Executed: 2, Failed: 1}, summary)
}

func TestRunner_StreamsInOrder(t *testing.T) {
	rep := &captured{}
	var seenBeforeSecond []string
	sel := selection.Selection{
		newTest("a", 1, func(c *domain.Collector) {}),
		newTest("b", 2, func(c *domain.Collector) {
			seenBeforeSecond = append([]string(nil), rep.events...)
		}),
	}

	NewRunner(rep).Run(sel)

	assert.Equal(t, []string{"start a", "finish a", "start b"}, seenBeforeSecond)
	assert.Equal(t, []string{"start a", "finish a", "start b", "finish b", "summary"}, rep.events)
}

func TestRunner_SummaryArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		passes []bool
		failed int
	}{
		{name: "empty selection", passes: nil, failed: 0},
		{name: "all pass", passes: []bool{true, true, true}, failed: 0},
		{name: "mixed", passes: []bool{true, false, true, false}, failed: 2},
		{name: "all fail", passes: []bool{false, false}, failed: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sel selection.Selection
			for i, pass := range tt.passes {
				pass := pass
				sel = append(sel, newTest(fmt.Sprintf("t%d", i), i+1, func(c *domain.Collector) {
					c.Check("Cond(x)", 1, pass)
				}))
			}
			// A test without assertions passes.
			sel = append(sel, newTest("vacuous", 100, func(c *domain.Collector) {}))

			rep := &captured{}
			summary := NewRunner(rep).Run(sel)

			want := domain.RunSummary{Executed: len(tt.passes) + 1, Failed: tt.failed}
			assert.Equal(t, want, summary)
			require.NotNil(t, rep.summary)
			assert.Equal(t, want, *rep.summary)
		})
	}
}

func TestRunner_PanicIsRecordedAsFailure(t *testing.T) {
	rep := &captured{}
	sel := selection.Selection{
		newTest("panics", 10, func(c *domain.Collector) {
			c.Check("Cond(before)", 11, true)
			var m map[string]int
			m["boom"] = 1
		}),
		newTest("after", 20, func(c *domain.Collector) {
			c.Check("Cond(after)", 21, true)
		}),
	}

	summary := NewRunner(rep).Run(sel)

	require.Len(t, rep.outcomes, 2)
	records := rep.outcomes[0].Records
	require.Len(t, records, 2)
	assert.Contains(t, records[1].Expression, "panic: assignment to entry in nil map")
	assert.Equal(t, 10, records[1].Line)
	assert.False(t, records[1].Pass)
	assert.True(t, rep.outcomes[1].Pass)
	assert.Equal(t, domain.RunSummary{Executed: 2, Failed: 1}, summary)
}

func TestRunner_FreshCollectorPerTest(t *testing.T) {
	rep := &captured{}
	sel := selection.Selection{
		newTest("first", 1, func(c *domain.Collector) { c.Check("Cond(a)", 2, false) }),
		newTest("second", 3, func(c *domain.Collector) { c.Check("Cond(b)", 4, true) }),
	}

	NewRunner(rep).Run(sel)

	require.Len(t, rep.outcomes, 2)
	assert.Len(t, rep.outcomes[1].Records, 1)
	assert.True(t, rep.outcomes[1].Pass)
	assert.Equal(t, "second", rep.outcomes[1].Test.Name)
}

func TestRunner_Progress(t *testing.T) {
	rep := &captured{}
	progress := &fakeProgress{}
	sel := selection.Selection{
		newTest("ok", 1, func(c *domain.Collector) {}),
		newTest("bad", 2, func(c *domain.Collector) { c.Check("Cond(x)", 3, false) }),
	}

	runner := NewRunner(rep)
	runner.SetProgress(progress)
	var executor Executor = runner
	executor.Run(sel)

	assert.Equal(t, [][2]int{{1, 0}, {1, 1}}, progress.updates)
	assert.True(t, progress.finished)
}
