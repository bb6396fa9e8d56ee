package selection

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"beeftest/internal/registry"
)

// Selection is the ordered, duplicate-free list of tests chosen for a run
type Selection []*registry.Descriptor

// Len returns the number of selected tests
func (s Selection) Len() int {
	return len(s)
}

// Files returns the distinct files of the selection in run order
func (s Selection) Files() []string {
	var files []string
	for i, d := range s {
		if i == 0 || s[i-1].File != d.File {
			files = append(files, d.File)
		}
	}
	return files
}

// Selector resolves requested names and files against a registry
type Selector struct {
	registry *registry.Registry
	workDir  string
}

// NewSelector creates a Selector. Relative file requests are also tried
// against the current working directory.
func NewSelector(reg *registry.Registry) *Selector {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return &Selector{registry: reg, workDir: wd}
}

// WithWorkDir returns a copy of s resolving relative files against dir
func (s *Selector) WithWorkDir(dir string) *Selector {
	return &Selector{registry: s.registry, workDir: dir}
}

// Select resolves names and files into the tests to run.
// With no names and no files every registered test is selected. The first
// unknown file or name aborts the whole selection.
func (s *Selector) Select(names, files []string) (Selection, error) {
	s.registry.Seal()

	var effective []string
	seenName := make(map[string]bool)
	addName := func(name string) {
		if !seenName[name] {
			seenName[name] = true
			effective = append(effective, name)
		}
	}

	for _, name := range names {
		addName(name)
	}

	for _, file := range files {
		tests, ok := s.lookupFile(file)
		if !ok {
			return nil, &UnknownFileError{File: file}
		}
		for _, d := range tests {
			addName(d.Name)
		}
	}

	if len(effective) == 0 {
		all := Selection(s.registry.All())
		slog.Debug("Selected all tests.", "count", len(all))
		return all, nil
	}

	seen := make(map[*registry.Descriptor]bool)
	var selected Selection
	for _, name := range effective {
		tests, ok := s.registry.LookupByName(name)
		if !ok {
			return nil, &UnknownTestError{Name: name}
		}
		for _, d := range tests {
			if !seen[d] {
				seen[d] = true
				selected = append(selected, d)
			}
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].Less(selected[j]) })
	slog.Debug("Selected tests.", "names", len(names), "files", len(files), "count", len(selected))
	return selected, nil
}

func (s *Selector) lookupFile(file string) ([]*registry.Descriptor, bool) {
	if tests, ok := s.registry.LookupByFile(file); ok {
		return tests, true
	}
	if filepath.IsAbs(file) || s.workDir == "" {
		return nil, false
	}
	return s.registry.LookupByFile(filepath.Join(s.workDir, file))
}
