// Package beeftest is a small self-registering test framework.
//
// Tests are declared next to the code they check and register themselves
// while the program initializes:
//
//	var _ = beeftest.Test("adds", func(t *beeftest.T) {
//		t.Cond(1+1 == 2)       // soft: recorded, execution continues
//		t.Assert(len(xs) == 3) // hard: on failure the rest of the test is skipped
//	})
//
//	func main() { beeftest.Main() }
//
// Main selects tests by name or by file from the command line, runs them in
// file and line order and exits with the number of failed tests.
package beeftest

import (
	"fmt"
	"os"
	"runtime"

	"beeftest/internal/cli/commands"
	"beeftest/internal/domain"
	"beeftest/internal/registry"
	"beeftest/internal/source"
)

var sources = source.NewParser()

// T records the assertions of a running test
type T struct {
	c *domain.Collector
}

// Test declares a test named name, registering it under the caller's file
// and line. It returns true so it can initialize a package-level variable.
func Test(name string, body func(t *T)) bool {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 1
	}

	d := registry.NewDescriptor(name, file, line, registry.BodyFunc(func(c *domain.Collector) {
		body(&T{c: c})
	}))
	if err := registry.Global().Register(d); err != nil {
		panic(fmt.Sprintf("beeftest: %v", err))
	}
	return true
}

// Name returns the name of the running test
func (t *T) Name() string {
	return t.c.Test().Name
}

// Cond records ok as a soft check and returns it. The test continues either way.
// msg, if given, replaces the source text shown for the check.
func (t *T) Cond(ok bool, msg ...any) bool {
	if t.c.Aborted() {
		return ok
	}
	expression, line := describe("Cond", msg)
	return t.c.Check(expression, line, ok)
}

// Assert records ok as a hard check. If ok is false the rest of the test body
// is skipped. msg, if given, replaces the source text shown for the check.
func (t *T) Assert(ok bool, msg ...any) {
	if t.c.Aborted() {
		return
	}
	expression, line := describe("Assert", msg)
	t.c.Require(expression, line, ok)
}

// describe builds the expression text of a check made two frames up
func describe(method string, msg []any) (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if len(msg) > 0 {
		return fmt.Sprintf("%s(%s)", method, fmt.Sprint(msg...)), line
	}
	if !ok {
		return method + "(?)", line
	}
	arg, err := sources.FindArgument(file, line, method)
	if err != nil {
		return fmt.Sprintf("%s(%s:%d)", method, file, line), line
	}
	return fmt.Sprintf("%s(%s)", method, arg), line
}

// Main runs the command line over every declared test and exits with the
// resulting status.
func Main() {
	os.Exit(Run(os.Args[1:]))
}

// Run is Main without exiting. It returns the process exit status.
func Run(args []string) int {
	return commands.Execute(registry.Global(), args, os.Stdout, os.Stderr)
}
