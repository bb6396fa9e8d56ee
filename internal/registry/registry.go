package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

var (
	// ErrAlreadyRegistered is returned when the same descriptor is registered twice
	ErrAlreadyRegistered = errors.New("test already registered")
	// ErrInvalidDescriptor is returned for descriptors missing a name, body or line
	ErrInvalidDescriptor = errors.New("invalid test descriptor")
	// ErrSealed is returned when registering after tests were selected
	ErrSealed = errors.New("registry is sealed")
)

// Registry holds every declared test, indexed by name and by source file.
//
// Registration happens during package initialization, before any lookup.
// Seal marks the end of that phase; writes after it are rejected.
type Registry struct {
	byName map[string][]*Descriptor
	byFile map[string][]*Descriptor
	all    []*Descriptor

	nextSeq uint64
	maxLine int
	sealed  bool
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		byName: make(map[string][]*Descriptor),
		byFile: make(map[string][]*Descriptor),
	}
}

// Register adds a descriptor to both indexes
func (r *Registry) Register(d *Descriptor) error {
	if r.sealed {
		return fmt.Errorf("register %q: %w", d.Name, ErrSealed)
	}
	if d.Name == "" || d.Body == nil || d.Line <= 0 {
		return fmt.Errorf("register %q at %s:%d: %w", d.Name, d.File, d.Line, ErrInvalidDescriptor)
	}
	if d.seq != 0 {
		return fmt.Errorf("register %q at %s:%d: %w", d.Name, d.File, d.Line, ErrAlreadyRegistered)
	}

	r.nextSeq++
	d.seq = r.nextSeq

	r.byName[d.Name] = append(r.byName[d.Name], d)
	r.byFile[d.File] = insertSorted(r.byFile[d.File], d)
	r.all = insertSorted(r.all, d)

	if d.Line > r.maxLine {
		r.maxLine = d.Line
	}
	return nil
}

// Seal ends the registration phase
func (r *Registry) Seal() {
	if !r.sealed {
		slog.Debug("Registry sealed.", "tests", len(r.all), "files", len(r.byFile))
	}
	r.sealed = true
}

// Sealed reports whether Seal was called
func (r *Registry) Sealed() bool {
	return r.sealed
}

// LookupByName returns all tests registered under name, in canonical order
func (r *Registry) LookupByName(name string) ([]*Descriptor, bool) {
	tests, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	sorted := make([]*Descriptor, len(tests))
	copy(sorted, tests)
	sortDescriptors(sorted)
	return sorted, true
}

// LookupByFile returns all tests declared in file, in canonical order
func (r *Registry) LookupByFile(file string) ([]*Descriptor, bool) {
	tests, ok := r.byFile[FileKey(file)]
	if !ok {
		return nil, false
	}
	return append([]*Descriptor(nil), tests...), true
}

// All returns every registered test in canonical order
func (r *Registry) All() []*Descriptor {
	return append([]*Descriptor(nil), r.all...)
}

// Files returns the sorted list of files that declare tests
func (r *Registry) Files() []string {
	files := make([]string, 0, len(r.byFile))
	for file := range r.byFile {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Len returns the number of registered tests
func (r *Registry) Len() int {
	return len(r.all)
}

// MaxLine returns the largest declaration line seen, used for column alignment
func (r *Registry) MaxLine() int {
	return r.maxLine
}

func insertSorted(list []*Descriptor, d *Descriptor) []*Descriptor {
	i := sort.Search(len(list), func(i int) bool { return d.Less(list[i]) })
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = d
	return list
}

func sortDescriptors(list []*Descriptor) {
	sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
}
