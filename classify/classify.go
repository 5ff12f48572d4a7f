// Package classify extracts shanty types from the HTML index of "The Shanty
// Book, Part I" and matches them against the MIDI files of the dataset, so
// that extracted feature vectors can be labeled by shanty type.
package classify

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Darce-One/shanties/logging"
)

// ShantyInfo describes one entry of the book index.
type ShantyInfo struct {
	Name   string `json:"shanty_name"`
	Type   string `json:"shanty_type"`
	Number string `json:"shanty_number"`
}

var (
	nonWordRe       = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	leadingDigitsRe = regexp.MustCompile(`^[0-9]+`)
)

// ParseIndex reads the HTML index and returns shanty names mapped to their
// types. Types come from h3 headings mentioning shanties; the shanty names
// and numbers come from the first cell of each row of the table following
// the heading. Headings and tables are paired in document order, so a table
// wrapped in intermediate elements still belongs to the last heading seen.
func ParseIndex(r io.Reader) (map[string]ShantyInfo, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{"component": "classify"})
	types := make(map[string]ShantyInfo)
	shantyType := ""

	doc.Find("h3, table").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h3" {
			text := strings.TrimSpace(sel.Text())
			lower := strings.ToLower(text)
			if strings.Contains(lower, "shanty") || strings.Contains(lower, "shanties") {
				shantyType = strings.TrimSpace(strings.ReplaceAll(text, ":", ""))
				logger.Info("found shanty type", logging.Fields{"type": shantyType})
			}
			return
		}

		if shantyType == "" {
			return
		}
		currentType := shantyType
		// Only the first table after a heading carries its entries.
		shantyType = ""

		sel.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cell := row.Find("td").First()
			if cell.Length() == 0 {
				return
			}
			link := cell.Find("a").First()
			if link.Length() == 0 {
				return
			}

			number := ""
			if fields := strings.Fields(cell.Text()); len(fields) > 0 {
				number = fields[0]
			}
			name := strings.TrimSpace(link.Text())
			if name == "" {
				return
			}

			types[name] = ShantyInfo{Name: name, Type: currentType, Number: number}
		})
	})

	return types, nil
}

// MatchFiles maps MIDI filenames in musicDir to shanty index entries using
// fuzzy name matching: names are lowercased, stripped of punctuation, and a
// file matches when its base name (leading track numbers removed) contains
// or is contained in the simplified shanty name. Generic musicNN files are
// skipped. Unmatched files are logged and left out.
func MatchFiles(types map[string]ShantyInfo, musicDir string) (map[string]ShantyInfo, error) {
	entries, err := os.ReadDir(musicDir)
	if err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{"component": "classify"})

	fuzzy := make(map[string]ShantyInfo, len(types))
	for name, info := range types {
		fuzzy[simplifyName(name)] = info
	}

	matched := make(map[string]ShantyInfo)
	for _, entry := range entries {
		filename := entry.Name()
		ext := strings.ToLower(filepath.Ext(filename))
		if entry.IsDir() || (ext != ".mid" && ext != ".midi") {
			continue
		}
		if isGenericMusicFile(filename) {
			continue
		}

		base := strings.TrimSuffix(filename, filepath.Ext(filename))
		base = leadingDigitsRe.ReplaceAllString(strings.ToLower(base), "")

		found := false
		for simple, info := range fuzzy {
			if strings.Contains(simple, base) || strings.Contains(base, simple) {
				matched[filename] = info
				logger.Info("matched midi file", logging.Fields{
					"file":   filename,
					"shanty": info.Name,
					"type":   info.Type,
				})
				found = true
				break
			}
		}
		if !found {
			logger.Warn("no shanty index entry for midi file", logging.Fields{"file": filename})
		}
	}

	return matched, nil
}

// simplifyName lowercases a shanty title and strips punctuation so it can be
// compared against filenames.
func simplifyName(name string) string {
	simple := nonWordRe.ReplaceAllString(strings.ToLower(name), "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(simple, " "))
}

// isGenericMusicFile reports accompaniment files named musicNN, which do not
// correspond to shanties in the index.
func isGenericMusicFile(filename string) bool {
	return strings.HasPrefix(filename, "music") &&
		len(filename) > 5 &&
		filename[5] >= '0' && filename[5] <= '9'
}
