package registry

import (
	"path/filepath"

	"beeftest/internal/domain"
)

// Body is the executable part of a test. Run reports assertions to the
// collector; a failed hard check unwinds out of Run.
type Body interface {
	Run(c *domain.Collector)
}

// BodyFunc adapts a plain function to Body
type BodyFunc func(c *domain.Collector)

// Run calls f(c)
func (f BodyFunc) Run(c *domain.Collector) {
	f(c)
}

// Descriptor is the registered identity of one declared test.
// Its fields must not change once registered.
type Descriptor struct {
	Name string
	File string
	Line int
	Body Body

	seq uint64 // registration order, assigned by Register
}

// NewDescriptor creates a descriptor with a cleaned file key
func NewDescriptor(name, file string, line int, body Body) *Descriptor {
	return &Descriptor{
		Name: name,
		File: FileKey(file),
		Line: line,
		Body: body,
	}
}

// Seq returns the registration sequence number (starting at 1), or 0 if the
// descriptor was never registered.
func (d *Descriptor) Seq() uint64 {
	return d.seq
}

// Info returns the identity of the test
func (d *Descriptor) Info() domain.TestInfo {
	return domain.TestInfo{Name: d.Name, File: d.File, Line: d.Line}
}

// Less reports whether d sorts before other in canonical order:
// file, then line, then registration order.
func (d *Descriptor) Less(other *Descriptor) bool {
	if d.File != other.File {
		return d.File < other.File
	}
	if d.Line != other.Line {
		return d.Line < other.Line
	}
	return d.seq < other.seq
}

// FileKey returns the form under which a source file is indexed
func FileKey(file string) string {
	if file == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(file))
}
