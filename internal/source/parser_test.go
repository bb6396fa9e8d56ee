package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParser_FindArgument(t *testing.T) {
	parser := NewParser()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "math_test.go")
	goContent := `package demo

var _ = beeftest.Test("adds", func(t *beeftest.T) {
	t.Cond(1+1 == 2)
	t.Assert(len(xs)==3, "three items")
	t.Cond(strings.HasPrefix(name,
		"beef"))
	if t.Cond(ok) { t.Assert(done) }
	t.Cond(1+1 ==
		3)
})
`
	if err := os.WriteFile(testFile, []byte(goContent), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		name     string
		line     int
		method   string
		expected string
	}{
		{name: "binary expression is normalized", line: 4, method: "Cond", expected: "1+1 == 2"},
		{name: "only the first argument", line: 5, method: "Assert", expected: "len(xs) == 3"},
		{name: "method chosen by name", line: 8, method: "Assert", expected: "done"},
		{name: "first call on the line", line: 8, method: "Cond", expected: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.FindArgument(testFile, tt.line, tt.method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	t.Run("call spanning lines", func(t *testing.T) {
		got, err := parser.FindArgument(testFile, 6, "Cond")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `strings.HasPrefix(name, "beef")` {
			t.Errorf("unexpected argument text %q", got)
		}
	})

	t.Run("operand on the next line", func(t *testing.T) {
		got, err := parser.FindArgument(testFile, 9, "Cond")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "1+1 == 3" {
			t.Errorf("expected %q, got %q", "1+1 == 3", got)
		}
		if strings.Contains(got, "\n") {
			t.Errorf("argument text spans lines: %q", got)
		}
	})

	t.Run("no call on line", func(t *testing.T) {
		if _, err := parser.FindArgument(testFile, 3, "Cond"); err == nil {
			t.Error("expected error for a line without a matching call")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindArgument("/non/existent/file.go", 1, "Cond")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}
