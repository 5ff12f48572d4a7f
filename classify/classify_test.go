package classify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexHTML = `
<html><body>
<h3>Capstan Shanties:</h3>
<table>
  <tr><td>1 <a href="billy.html">Billy Boy</a></td></tr>
  <tr><td>2 <a href="rio.html">Rio Grande</a></td></tr>
  <tr><td>no link here</td></tr>
</table>
<h3>Halliard Shanties:</h3>
<table>
  <tr><td>8 <a href="whiskey.html">Whiskey Johnny!</a></td></tr>
</table>
<h3>Introduction</h3>
<table>
  <tr><td>1 <a href="pref.html">Preface</a></td></tr>
</table>
</body></html>`

func TestParseIndex(t *testing.T) {
	types, err := ParseIndex(strings.NewReader(indexHTML))
	require.NoError(t, err)
	assert.Len(t, types, 3)

	assert.Equal(t, ShantyInfo{Name: "Billy Boy", Type: "Capstan Shanties", Number: "1"}, types["Billy Boy"])
	assert.Equal(t, ShantyInfo{Name: "Rio Grande", Type: "Capstan Shanties", Number: "2"}, types["Rio Grande"])
	assert.Equal(t, ShantyInfo{Name: "Whiskey Johnny!", Type: "Halliard Shanties", Number: "8"}, types["Whiskey Johnny!"])

	// Headings that do not mention shanties contribute nothing.
	assert.NotContains(t, types, "Preface")
}

func TestParseIndexFindsTablesInsideWrappers(t *testing.T) {
	// The table is not a sibling of the heading; pairing must follow
	// document order, as with a wrapped layout.
	wrapped := `
<html><body>
<h3>Pumping Shanties:</h3>
<div class="contents">
  <table>
    <tr><td>5 <a href="lowlands.html">Lowlands</a></td></tr>
  </table>
</div>
<div>
  <table>
    <tr><td>9 <a href="stray.html">Stray Table</a></td></tr>
  </table>
</div>
</body></html>`

	types, err := ParseIndex(strings.NewReader(wrapped))
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, ShantyInfo{Name: "Lowlands", Type: "Pumping Shanties", Number: "5"}, types["Lowlands"])

	// Only the first table after a heading carries its entries.
	assert.NotContains(t, types, "Stray Table")
}

func TestParseIndexEmptyDocument(t *testing.T) {
	types, err := ParseIndex(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestMatchFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"01billy.mid",  // matches Billy Boy after stripping the track number
		"rio.midi",     // matches Rio Grande
		"unknown.mid",  // no index entry
		"music01.mid",  // generic accompaniment, skipped
		"whiskey.txt",  // wrong extension
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	types := map[string]ShantyInfo{
		"Billy Boy":  {Name: "Billy Boy", Type: "Capstan Shanties", Number: "1"},
		"Rio Grande": {Name: "Rio Grande", Type: "Capstan Shanties", Number: "2"},
	}

	matched, err := MatchFiles(types, dir)
	require.NoError(t, err)
	assert.Len(t, matched, 2)
	assert.Equal(t, "Billy Boy", matched["01billy.mid"].Name)
	assert.Equal(t, "Rio Grande", matched["rio.midi"].Name)
	assert.NotContains(t, matched, "unknown.mid")
	assert.NotContains(t, matched, "music01.mid")
}

func TestMatchFilesMissingDir(t *testing.T) {
	_, err := MatchFiles(nil, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSimplifyName(t *testing.T) {
	assert.Equal(t, "whiskey johnny", simplifyName("Whiskey Johnny!"))
	assert.Equal(t, "ansel", simplifyName("A-n'sel"))
	assert.Equal(t, "billy boy", simplifyName("  Billy   Boy  "))
}

func TestIsGenericMusicFile(t *testing.T) {
	assert.True(t, isGenericMusicFile("music01.mid"))
	assert.True(t, isGenericMusicFile("music9.midi"))
	assert.False(t, isGenericMusicFile("musical_chairs.mid"))
	assert.False(t, isGenericMusicFile("billyboy.mid"))
}

func TestWriteOutputs(t *testing.T) {
	dir := t.TempDir()
	matched := map[string]ShantyInfo{
		"rio.mid":   {Name: "Rio Grande", Type: "Capstan Shanties", Number: "2"},
		"billy.mid": {Name: "Billy Boy", Type: "Capstan Shanties", Number: "1"},
	}

	jsonPath := filepath.Join(dir, "types.json")
	require.NoError(t, WriteJSON(matched, jsonPath))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded map[string]ShantyInfo
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, matched, decoded)

	csvPath := filepath.Join(dir, "types.csv")
	require.NoError(t, WriteCSV(matched, csvPath))

	data, err = os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "midi_file,shanty_name,shanty_type,shanty_number", lines[0])
	assert.Equal(t, "billy.mid,Billy Boy,Capstan Shanties,1", lines[1])
	assert.Equal(t, "rio.mid,Rio Grande,Capstan Shanties,2", lines[2])
}
