package classify

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// WriteJSON saves the filename-to-shanty mapping as indented JSON.
func WriteJSON(matched map[string]ShantyInfo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating json output: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(matched)
}

// WriteCSV saves the filename-to-shanty mapping as CSV, one row per MIDI
// file, ordered by filename.
func WriteCSV(matched map[string]ShantyInfo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv output: %w", err)
	}
	defer f.Close()

	files := make([]string, 0, len(matched))
	for file := range matched {
		files = append(files, file)
	}
	sort.Strings(files)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"midi_file", "shanty_name", "shanty_type", "shanty_number"}); err != nil {
		return err
	}
	for _, file := range files {
		info := matched[file]
		if err := w.Write([]string{file, info.Name, info.Type, info.Number}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
