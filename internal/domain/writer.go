package domain

import (
	"bytes"
	"fmt"
	"strings"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

const (
	// DefaultHeaderExt and DefaultSourceExt name the merged artifacts when no
	// extension is configured.
	DefaultHeaderExt = ".h"
	DefaultSourceExt = ".cpp"

	pragmaOnceLine = "#pragma once"
	markerRule     = "//--------------------------------------------------------"
)

// OutputTargets are the two artifact paths of a merge.
type OutputTargets struct {
	Header m.Path
	Source m.Path
}

// TargetsFor derives the artifact paths from an extension-less base path.
func TargetsFor(base m.Path, headerExt, sourceExt string) OutputTargets {
	return OutputTargets{
		Header: m.Path(string(base) + normalizeExt(headerExt, DefaultHeaderExt)),
		Source: m.Path(string(base) + normalizeExt(sourceExt, DefaultSourceExt)),
	}
}

func normalizeExt(ext, fallback string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return fallback
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// OutputBuffer accumulates one merged artifact in memory.
type OutputBuffer struct {
	buf bytes.Buffer
}

// NewHeaderBuffer starts a merged header with its single top-level guard.
func NewHeaderBuffer() *OutputBuffer {
	b := &OutputBuffer{}
	b.WriteLine(pragmaOnceLine)

	return b
}

// NewSourceBuffer starts a merged source with the include of the merged
// header's base name.
func NewSourceBuffer(header m.Path) *OutputBuffer {
	b := &OutputBuffer{}
	b.WriteLine(`#include "` + header.Base() + `"`)

	return b
}

// WriteLine appends line and a newline.
func (b *OutputBuffer) WriteLine(line string) {
	b.buf.WriteString(line)
	b.buf.WriteByte('\n')
}

// BeginFile writes the opening boundary marker for path.
func (b *OutputBuffer) BeginFile(path m.Path) {
	b.marker("begin", path)
}

// EndFile writes the closing boundary marker for path.
func (b *OutputBuffer) EndFile(path m.Path) {
	b.marker("end", path)
}

func (b *OutputBuffer) marker(edge string, path m.Path) {
	b.WriteLine(markerRule)
	b.WriteLine(fmt.Sprintf("//-------%s of file: %s", edge, path))
	b.WriteLine(markerRule)
}

// Bytes returns the buffered artifact.
func (b *OutputBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
