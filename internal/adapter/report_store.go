package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "amalgam.dev/pkg/amalgam/internal/model"
	"amalgam.dev/pkg/amalgam/pkg/atomicfile"
)

// ManifestStore persists merge manifests.
type ManifestStore interface {
	SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error
	LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error)
}

// YAMLManifestStore stores manifests as YAML documents.
type YAMLManifestStore struct{}

// NewManifestStore returns the YAML-backed ManifestStore.
func NewManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// SaveManifest writes manifest to path, replacing any previous manifest atomically.
func (s *YAMLManifestStore) SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	batch := atomicfile.NewBatch()
	defer batch.Discard()

	if err := batch.Stage(string(path), data); err != nil {
		return err
	}

	return batch.Commit()
}

// LoadManifest reads a manifest previously written by SaveManifest.
func (s *YAMLManifestStore) LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return m.Manifest{}, err
	}

	// #nosec G304 - manifest path is operator configuration
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("unmarshal manifest %s: %w", path, err)
	}

	return manifest, nil
}
