// Package report writes extracted feature vectors to CSV and JSON. The
// column order follows the extractor registry so reports are stable across
// runs and directly loadable for downstream analysis.
package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/Darce-One/shanties/features"
)

// FileFeatures is the feature vector computed for one MIDI file.
type FileFeatures struct {
	File     string             `json:"file"`
	Features map[string]float64 `json:"features"`
}

// FeatureNames returns the report column order for an extractor registry.
func FeatureNames(extractors []features.Extractor) []string {
	names := make([]string, len(extractors))
	for i, e := range extractors {
		names[i] = e.Name()
	}
	return names
}

// WriteCSV writes one row per file with a leading "file" column followed by
// the named features. Features missing from a row are written as 0.
func WriteCSV(w io.Writer, names []string, rows []FileFeatures) error {
	cw := csv.NewWriter(w)

	header := append([]string{"file"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(names)+1)
		record = append(record, row.File)
		for _, name := range names {
			record = append(record, strconv.FormatFloat(row.Features[name], 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []FileFeatures) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
