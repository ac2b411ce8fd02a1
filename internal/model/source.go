// Package model defines the data structures shared by the amalgamation layers.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Dir returns the directory part of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Join appends elem to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// FileKind classifies a C-family file by its extension.
type FileKind string

const (
	// KindUnknown is any file that is neither a header nor a source.
	KindUnknown FileKind = ""
	// KindHeader holds declarations (.h, .hpp).
	KindHeader FileKind = "header"
	// KindSource holds definitions (.cpp, .cc, .cxx).
	KindSource FileKind = "source"
)

var (
	headerExtensions = map[string]struct{}{".h": {}, ".hpp": {}}
	sourceExtensions = map[string]struct{}{".cpp": {}, ".cc": {}, ".cxx": {}}
)

// KindOf returns the kind implied by the extension of path.
func KindOf(path Path) FileKind {
	ext := filepath.Ext(string(path))
	if _, ok := headerExtensions[ext]; ok {
		return KindHeader
	}

	if _, ok := sourceExtensions[ext]; ok {
		return KindSource
	}

	return KindUnknown
}

// Origin records how a file entered the input set.
type Origin string

const (
	// OriginExplicit marks a file named directly by the caller.
	OriginExplicit Origin = "explicit"
	// OriginDiscovered marks a file found while walking a search root.
	OriginDiscovered Origin = "discovered"
	// OriginResolved marks a header reached only through an include directive.
	OriginResolved Origin = "resolved"
)

// File is a header or source participating in a merge.
type File struct {
	// Path is the cleaned path as given, discovered or resolved. It is what
	// boundary markers and diagnostics print.
	Path Path
	// Key is the absolute cleaned path and identifies the file.
	Key    Path
	Kind   FileKind
	Origin Origin
}

// String implements fmt.Stringer.
func (f File) String() string {
	return string(f.Path)
}

// Classification is the output of the file classifier.
type Classification struct {
	Headers     []File
	Sources     []File
	SearchRoots []Path
	// Excluded counts files skipped during directory walks.
	Excluded int
}

// Files returns headers followed by sources.
func (c Classification) Files() []File {
	files := make([]File, 0, len(c.Headers)+len(c.Sources))
	files = append(files, c.Headers...)

	return append(files, c.Sources...)
}
