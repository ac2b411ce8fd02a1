package atomicfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}

func TestBatch(t *testing.T) {
	t.Run("Commit publishes every staged file", func(t *testing.T) {
		dir := t.TempDir()
		batch := NewBatch()
		defer batch.Discard()

		require.NoError(t, batch.Stage(filepath.Join(dir, "out.h"), []byte("header")))
		require.NoError(t, batch.Stage(filepath.Join(dir, "out.cpp"), []byte("source")))
		require.Equal(t, 2, batch.Len())

		_, err := os.Stat(filepath.Join(dir, "out.h"))
		require.True(t, os.IsNotExist(err), "target must not exist before commit")

		require.NoError(t, batch.Commit())

		got, err := os.ReadFile(filepath.Join(dir, "out.h"))
		require.NoError(t, err)
		require.Equal(t, "header", string(got))

		got, err = os.ReadFile(filepath.Join(dir, "out.cpp"))
		require.NoError(t, err)
		require.Equal(t, "source", string(got))

		require.ElementsMatch(t, []string{"out.h", "out.cpp"}, listDir(t, dir))
	})

	t.Run("Commit replaces existing targets", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.h")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

		batch := NewBatch()
		require.NoError(t, batch.Stage(target, []byte("new")))
		require.NoError(t, batch.Commit())

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, "new", string(got))
	})

	t.Run("Discard leaves targets untouched", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.h")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

		batch := NewBatch()
		require.NoError(t, batch.Stage(target, []byte("new")))
		batch.Discard()

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, "old", string(got))
		require.Equal(t, []string{"out.h"}, listDir(t, dir))
	})

	t.Run("Stage twice keeps the latest content", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.h")

		batch := NewBatch()
		require.NoError(t, batch.Stage(target, []byte("first")))
		require.NoError(t, batch.Stage(target, []byte("second")))
		require.Equal(t, []string{target}, batch.Targets())
		require.NoError(t, batch.Commit())

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, "second", string(got))
		require.Equal(t, []string{"out.h"}, listDir(t, dir))
	})

	t.Run("Stage into a missing directory fails", func(t *testing.T) {
		batch := NewBatch()
		err := batch.Stage(filepath.Join(t.TempDir(), "missing", "out.h"), []byte("x"))
		require.Error(t, err)
		require.Equal(t, 0, batch.Len())
	})

	t.Run("use after Commit", func(t *testing.T) {
		dir := t.TempDir()
		batch := NewBatch()
		require.NoError(t, batch.Commit())

		require.ErrorIs(t, batch.Stage(filepath.Join(dir, "out.h"), nil), ErrCommitted)
		require.ErrorIs(t, batch.Commit(), ErrCommitted)
		batch.Discard()
	})

	t.Run("failed rename keeps earlier targets published", func(t *testing.T) {
		dir := t.TempDir()
		header := filepath.Join(dir, "out.h")
		source := filepath.Join(dir, "out.cpp")
		require.NoError(t, os.WriteFile(header, []byte("old header"), 0o600))
		require.NoError(t, os.MkdirAll(filepath.Join(source, "blocker"), 0o755))

		batch := NewBatch()
		require.NoError(t, batch.Stage(header, []byte("new header")))
		require.NoError(t, batch.Stage(source, []byte("new source")))

		err := batch.Commit()
		require.Error(t, err)
		require.Contains(t, err.Error(), source)
		require.Equal(t, []string{source}, batch.Targets())

		got, err := os.ReadFile(header)
		require.NoError(t, err)
		require.Equal(t, "new header", string(got))

		batch.Discard()
		require.ElementsMatch(t, []string{"out.h", "out.cpp"}, listDir(t, dir))
	})
}
