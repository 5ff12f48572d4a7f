package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shanties",
	Short: "Symbolic feature analysis for sea shanty MIDI collections",
	Long: `Walks a dataset of sea shanty MIDI files, reduces each score to a
vector of melodic, rhythmic and structural features, and matches files
against the Shanty Book index to label them by shanty type.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
