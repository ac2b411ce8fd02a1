package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

func TestYAMLManifestStore_SaveAndLoad(t *testing.T) {
	store := NewManifestStore()
	ctx := context.Background()
	path := m.Path(filepath.Join(t.TempDir(), "nested", "amalgamation.yaml"))

	manifest := m.Manifest{
		Version:     1,
		Header:      "out/amalgamation.h",
		Source:      "out/amalgamation.cpp",
		SearchRoots: []string{"src"},
		Headers: []m.ManifestFile{
			{Path: "src/a.h", Origin: m.OriginDiscovered},
			{Path: "vendor/v.h", Origin: m.OriginResolved},
		},
		Sources:   []m.ManifestFile{{Path: "src/a.cpp", Origin: m.OriginDiscovered}},
		Leftovers: []string{"src/unused.h"},
		Counts:    m.ManifestCounts{Headers: 2, Sources: 1, Leftovers: 1, Excluded: 3},
	}

	require.NoError(t, store.SaveManifest(ctx, path, manifest))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "leftovers:")
	assert.Contains(t, string(raw), "origin: resolved")

	loaded, err := store.LoadManifest(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded)
}

func TestYAMLManifestStore_Errors(t *testing.T) {
	store := NewManifestStore()
	dir := t.TempDir()

	t.Run("missing manifest", func(t *testing.T) {
		_, err := store.LoadManifest(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed manifest", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("headers: [\n"), 0o600))

		_, err := store.LoadManifest(context.Background(), m.Path(path))
		require.ErrorContains(t, err, "unmarshal manifest")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.SaveManifest(ctx, m.Path(filepath.Join(dir, "x.yaml")), m.Manifest{})
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, filepath.Join(dir, "x.yaml"))
	})
}
