package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"beeftest/internal/config"
	"beeftest/internal/domain"
	"beeftest/internal/registry"
)

func plainConfig() *config.Config {
	cfg := config.New()
	cfg.Color = false
	cfg.WorkDir = "/src"
	return cfg
}

func listFixture() []*registry.Descriptor {
	noop := registry.BodyFunc(func(*domain.Collector) {})
	return []*registry.Descriptor{
		registry.NewDescriptor("adds", "/src/a_test.go", 3, noop),
		registry.NewDescriptor("subtracts", "/src/a_test.go", 9, noop),
		registry.NewDescriptor("concat", "/src/pkg/b_test.go", 4, noop),
	}
}

func TestFormatter_PrintTestList(t *testing.T) {
	tests := []struct {
		name      string
		showTests bool
		want      string
	}{
		{
			name: "files",
			want: "Found 2 file(s) with tests:\n\n" +
				"├── a_test.go (2)\n" +
				"└── pkg/b_test.go (1)\n",
		},
		{
			name:      "tests",
			showTests: true,
			want: "Found 3 test(s) in 2 file(s):\n\n" +
				"├── a_test.go (2)\n" +
				"│   ├── :3 adds\n" +
				"│   └── :9 subtracts\n" +
				"└── pkg/b_test.go (1)\n" +
				"    └── :4 concat\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewFormatter(plainConfig(), &buf).PrintTestList(listFixture(), tt.showTests)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatter_PrintRunStats(t *testing.T) {
	run := &domain.RunRecord{
		Meta: domain.RunMeta{
			RunID:           "2f1c",
			Executed:        3,
			Passed:          1,
			Failed:          2,
			DurationSeconds: 0.25,
			Timestamp:       "2026-01-02T03:04:05Z",
		},
		Details: []domain.TestFailure{
			{
				TestName: "subtracts",
				File:     "/src/a_test.go",
				Line:     9,
				Failed:   []domain.Record{{Expression: "Cond(3 - 1 == 1)", Line: 11}},
			},
			{
				TestName: "concat",
				File:     "/src/pkg/b_test.go",
				Line:     4,
				Resolved: true,
			},
		},
	}

	var buf bytes.Buffer
	NewFormatter(plainConfig(), &buf).PrintRunStats(run)
	out := buf.String()

	assert.Contains(t, out, "│ Unresolved Failures             │ 1 ")
	assert.Contains(t, out, "│ Duration                        │ 0.250s ")
	assert.Contains(t, out, "✗ 2 of 3 test(s) failed\n\n")
	assert.Contains(t, out, "a_test.go\n  |_ :9 \"subtracts\"\n  |     :11 Cond(3 - 1 == 1)\n")
	assert.Contains(t, out, "pkg/b_test.go\n  |✓ :4 \"concat\"\n")
}

func TestFormatter_PrintRunStatsAllPassed(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(plainConfig(), &buf).PrintRunStats(&domain.RunRecord{
		Meta: domain.RunMeta{Executed: 2, Passed: 2},
	})
	assert.Contains(t, buf.String(), "✓ All tests passed!\n")
}

func TestFormatFailureDetails(t *testing.T) {
	details := FormatFailureDetails(domain.TestFailure{
		TestName: "hard stop",
		Line:     120,
		Failed:   []domain.Record{{Expression: "Assert(len(s) == 3)", Line: 122}},
	})

	assert.Contains(t, details, "Test: hard stop")
	assert.Contains(t, details, "line 122: Assert(len(s) == 3)")
	assert.NotContains(t, details, "Marked as resolved")

	details = FormatFailureDetails(domain.TestFailure{TestName: "panics", Resolved: true})
	assert.Contains(t, details, "Marked as resolved")
	assert.Contains(t, details, "No failed assertion was recorded.")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		useColor bool
	}{
		{name: "plain", useColor: false},
		{name: "coloured", useColor: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			bar := NewProgressBar(&buf, 2, tt.useColor)
			bar.Update(1, 0)
			bar.Update(1, 1)
			bar.Finish()

			assert.Contains(t, buf.String(), "2/2")
			assert.Equal(t, tt.useColor, strings.Contains(buf.String(), "\x1b["))
		})
	}
}
