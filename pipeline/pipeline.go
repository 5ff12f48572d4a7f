// Package pipeline runs the batch analysis: walk a dataset of MIDI files,
// reduce each to a score, extract the feature set and write the reports.
package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Darce-One/shanties/features"
	"github.com/Darce-One/shanties/logging"
	"github.com/Darce-One/shanties/midiscore"
	"github.com/Darce-One/shanties/report"
)

// Config holds the analysis pipeline options.
type Config struct {
	// OutputDir receives features.csv and features.json.
	OutputDir string

	// Normalized scales features into [0,1] with fixed calibration
	// constants instead of reporting raw values.
	Normalized bool

	Logger logging.Logger
}

// DefaultConfig returns the pipeline defaults: raw feature values written
// under ./results.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "results",
		Logger:    logging.GetGlobalLogger(),
	}
}

// Analyzer extracts feature vectors for every MIDI file of a dataset.
type Analyzer struct {
	config   *Config
	registry []features.Extractor
	logger   logging.Logger
}

// NewAnalyzer creates an analyzer for the given config. A nil config uses
// DefaultConfig.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}

	registry := features.NewRegistry()
	if config.Normalized {
		registry = features.NewNormalizedRegistry()
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	return &Analyzer{
		config:   config,
		registry: registry,
		logger:   logger.WithFields(logging.Fields{"component": "pipeline"}),
	}
}

// Run analyzes every MIDI file under datasetDir and writes features.csv and
// features.json to the configured output directory. Files that fail to parse
// are logged and skipped; they do not abort the batch.
func (a *Analyzer) Run(datasetDir string) error {
	paths, err := FindMidiFiles(datasetDir)
	if err != nil {
		return fmt.Errorf("walking dataset: %w", err)
	}
	if len(paths) == 0 {
		a.logger.Warn("no midi files found", logging.Fields{"dataset": datasetDir})
		return nil
	}

	var rows []report.FileFeatures
	for _, path := range paths {
		s, err := midiscore.ReadScoreFile(path)
		if err != nil {
			a.logger.Error(err, "skipping file", logging.Fields{"file": path})
			continue
		}
		rows = append(rows, report.FileFeatures{
			File:     path,
			Features: features.ExtractAll(s, a.registry),
		})
	}

	if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	names := report.FeatureNames(a.registry)
	if err := a.writeReport("features.csv", func(f *os.File) error {
		return report.WriteCSV(f, names, rows)
	}); err != nil {
		return err
	}
	if err := a.writeReport("features.json", func(f *os.File) error {
		return report.WriteJSON(f, rows)
	}); err != nil {
		return err
	}

	a.logger.Info("analysis complete", logging.Fields{
		"files":    len(paths),
		"analyzed": len(rows),
		"skipped":  len(paths) - len(rows),
		"output":   a.config.OutputDir,
	})
	return nil
}

func (a *Analyzer) writeReport(name string, write func(*os.File) error) error {
	path := filepath.Join(a.config.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}

// FindMidiFiles returns every .mid/.midi file under root, recursively.
func FindMidiFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(path)
		if strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
