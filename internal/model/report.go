package model

// MergeResult summarizes one successful merge.
type MergeResult struct {
	HeaderPath Path
	SourcePath Path

	// Headers lists header bodies in emission order.
	Headers []File
	// Leftovers is the tail of Headers appended by leftover reconciliation.
	Leftovers []File
	Sources   []File

	SearchRoots []Path
	Excluded    int

	// Header and Source hold the merged artifacts as committed.
	Header []byte `yaml:"-"`
	Source []byte `yaml:"-"`
}

// ArtifactDiff describes an artifact whose committed content differs from a
// fresh merge.
type ArtifactDiff struct {
	Path    Path
	Missing bool
	Diff    string
}

// Manifest is the persisted record of a merge.
type Manifest struct {
	Version     int            `yaml:"version"`
	Header      string         `yaml:"header"`
	Source      string         `yaml:"source"`
	SearchRoots []string       `yaml:"search_roots,omitempty"`
	Headers     []ManifestFile `yaml:"headers"`
	Sources     []ManifestFile `yaml:"sources"`
	Leftovers   []string       `yaml:"leftovers,omitempty"`
	Counts      ManifestCounts `yaml:"counts"`
}

// ManifestFile is one merged file in a Manifest.
type ManifestFile struct {
	Path   string `yaml:"path"`
	Origin Origin `yaml:"origin"`
}

// ManifestCounts mirrors the diagnostics printed after a merge.
type ManifestCounts struct {
	Headers   int `yaml:"headers"`
	Sources   int `yaml:"sources"`
	Leftovers int `yaml:"leftovers"`
	Excluded  int `yaml:"excluded"`
}
