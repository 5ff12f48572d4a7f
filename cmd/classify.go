package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Darce-One/shanties/classify"
	"github.com/Darce-One/shanties/logging"
)

var (
	classifyHTMLFile  string
	classifyMusicDir  string
	classifyOutputDir string
)

func init() {
	classifyCmd.Flags().StringVar(&classifyHTMLFile, "html-file", "", "path to the Shanty Book HTML index")
	classifyCmd.Flags().StringVar(&classifyMusicDir, "music-dir", "data/shanty_book/music", "directory containing MIDI files")
	classifyCmd.Flags().StringVar(&classifyOutputDir, "output-dir", "results", "directory to save output files")
	classifyCmd.MarkFlagRequired("html-file")
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Label MIDI files with shanty types from the book index",
	Long: `Parses the HTML index of "The Shanty Book, Part I" for shanty types,
fuzzy-matches them against the MIDI files of the dataset and writes the
mapping to shanty_types.csv and shanty_types.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify()
	},
}

func runClassify() error {
	logger := logging.WithFields(logging.Fields{"component": "classify"})

	f, err := os.Open(classifyHTMLFile)
	if err != nil {
		return fmt.Errorf("opening html index: %w", err)
	}
	defer f.Close()

	types, err := classify.ParseIndex(f)
	if err != nil {
		return fmt.Errorf("parsing html index: %w", err)
	}
	logger.Info("parsed shanty index", logging.Fields{"shanties": len(types)})

	matched, err := classify.MatchFiles(types, classifyMusicDir)
	if err != nil {
		return fmt.Errorf("matching midi files: %w", err)
	}

	if err := os.MkdirAll(classifyOutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	jsonPath := filepath.Join(classifyOutputDir, "shanty_types.json")
	csvPath := filepath.Join(classifyOutputDir, "shanty_types.csv")
	if err := classify.WriteJSON(matched, jsonPath); err != nil {
		return err
	}
	if err := classify.WriteCSV(matched, csvPath); err != nil {
		return err
	}

	logger.Info("classification complete", logging.Fields{
		"matched": len(matched),
		"json":    jsonPath,
		"csv":     csvPath,
	})
	return nil
}
