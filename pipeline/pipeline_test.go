package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darce-One/shanties/logging"
)

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("fixture"), 0o644))
	return path
}

func TestFindMidiFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "billy.mid")
	writeFixture(t, dir, "nested/rio.MIDI")
	writeFixture(t, dir, "notes.txt")

	paths, err := FindMidiFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, strings.HasSuffix(paths[0], "billy.mid"))
	assert.True(t, strings.HasSuffix(strings.ToLower(paths[1]), "rio.midi"))
}

func TestFindMidiFilesMissingRoot(t *testing.T) {
	_, err := FindMidiFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestNewAnalyzerDefaults(t *testing.T) {
	a := NewAnalyzer(nil)
	assert.Equal(t, "results", a.config.OutputDir)
	assert.NotEmpty(t, a.registry)
}

func TestRunSkipsUnparseableFiles(t *testing.T) {
	dataset := t.TempDir()
	writeFixture(t, dataset, "corrupt.mid")

	out := filepath.Join(t.TempDir(), "out")
	a := NewAnalyzer(&Config{OutputDir: out, Logger: &logging.NoOpLogger{}})
	require.NoError(t, a.Run(dataset))

	// The batch still produces reports; the corrupt file contributes no row.
	data, err := os.ReadFile(filepath.Join(out, "features.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "file,"))

	_, err = os.Stat(filepath.Join(out, "features.json"))
	assert.NoError(t, err)
}

func TestRunEmptyDatasetWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	a := NewAnalyzer(&Config{OutputDir: out, Logger: &logging.NoOpLogger{}})
	require.NoError(t, a.Run(t.TempDir()))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingDataset(t *testing.T) {
	a := NewAnalyzer(&Config{OutputDir: t.TempDir(), Logger: &logging.NoOpLogger{}})
	assert.Error(t, a.Run(filepath.Join(t.TempDir(), "nope")))
}
