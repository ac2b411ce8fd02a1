package domain

import (
	"errors"
	"fmt"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

var (
	// ErrUnrecognizedFileKind is returned for an explicit input that is neither
	// a header nor a source.
	ErrUnrecognizedFileKind = errors.New("unrecognized file kind")
	// ErrExplicitExclusionConflict is returned when an explicit input is also
	// excluded by name.
	ErrExplicitExclusionConflict = errors.New("explicit input is excluded")
	// ErrInvalidInputPath is returned for an input that is neither an existing
	// file nor an existing directory.
	ErrInvalidInputPath = errors.New("invalid input path")
	// ErrHeaderNotFound is matched by every *HeaderNotFoundError.
	ErrHeaderNotFound = errors.New("header not found")
	// ErrStaleOutput is returned by Check when committed artifacts differ from
	// a fresh merge.
	ErrStaleOutput = errors.New("merged output is stale")
	// ErrNoInputs is returned when a workflow is started without inputs.
	ErrNoInputs = errors.New("no inputs given")
)

// HeaderNotFoundError reports a local include that no candidate satisfied.
type HeaderNotFoundError struct {
	Including m.Path
	Directive string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q included from %s", ErrHeaderNotFound, e.Directive, e.Including)
}

// Unwrap lets errors.Is match ErrHeaderNotFound.
func (e *HeaderNotFoundError) Unwrap() error {
	return ErrHeaderNotFound
}
