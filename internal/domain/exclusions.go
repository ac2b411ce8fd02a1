package domain

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

// ExclusionSet holds bare file names, or glob patterns over bare names, that
// directory walks skip, plus absolute keys of files that are never
// classified whatever their name.
type ExclusionSet struct {
	patterns []string
	keys     map[m.Path]struct{}
}

// NewExclusionSet builds an ExclusionSet. Blank entries are dropped.
func NewExclusionSet(names ...string) ExclusionSet {
	patterns := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		patterns = append(patterns, name)
	}

	return ExclusionSet{patterns: patterns}
}

// Len returns the number of entries.
func (s ExclusionSet) Len() int {
	return len(s.patterns)
}

// Patterns returns a copy of the entries.
func (s ExclusionSet) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Excludes reports whether the bare file name is excluded. A malformed pattern
// only matches itself.
func (s ExclusionSet) Excludes(name string) bool {
	for _, pattern := range s.patterns {
		if pattern == name {
			return true
		}

		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}

// WithPaths returns a copy of s that also rejects the given absolute keys.
// Merge targets are added here so a walk never reads back its own output.
func (s ExclusionSet) WithPaths(keys ...m.Path) ExclusionSet {
	out := ExclusionSet{
		patterns: s.patterns,
		keys:     make(map[m.Path]struct{}, len(s.keys)+len(keys)),
	}

	for key := range s.keys {
		out.keys[key] = struct{}{}
	}

	for _, key := range keys {
		if key != "" {
			out.keys[key] = struct{}{}
		}
	}

	return out
}

// ExcludesPath reports whether the absolute key was added with WithPaths.
func (s ExclusionSet) ExcludesPath(key m.Path) bool {
	_, ok := s.keys[key]

	return ok
}
