package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Darce-One/shanties/pipeline"
)

var (
	analyzeOutDir     string
	analyzeNormalized bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "output-dir", "o", "results", "directory to save feature reports")
	analyzeCmd.Flags().BoolVar(&analyzeNormalized, "normalized", false, "scale features into [0,1] with fixed calibration constants")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset-dir>",
	Short: "Extract feature vectors from every MIDI file in a dataset",
	Long: `Recursively finds all .mid/.midi files under the dataset directory,
parses each into a score, selects the melodic part and computes the full
feature set. Results go to features.csv and features.json in the output
directory. Files that fail to parse are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer := pipeline.NewAnalyzer(&pipeline.Config{
			OutputDir:  analyzeOutDir,
			Normalized: analyzeNormalized,
		})
		return analyzer.Run(args[0])
	},
}
