package features

import (
	"math"

	"github.com/Darce-One/shanties/algorithms/stats"
	"github.com/Darce-One/shanties/score"
)

// beatTolerance is the floating-point slack when deciding whether an onset
// lies on an integer beat.
const beatTolerance = 1e-5

// AverageNoteDuration is the arithmetic mean of note durations in beats.
// Default 0 for a score without notes.
type AverageNoteDuration struct{}

func (AverageNoteDuration) Name() string { return "average_note_duration" }

func (AverageNoteDuration) Extract(s *score.Score) float64 {
	return stats.Mean(s.Durations())
}

// RhythmComplexity is the Shannon entropy (bits) of the distribution of
// distinct note duration values. Default 0 for a score without notes.
type RhythmComplexity struct{}

func (RhythmComplexity) Name() string { return "rhythm_complexity" }

func (RhythmComplexity) Extract(s *score.Score) float64 {
	return stats.ShannonEntropy(s.Durations())
}

// Syncopation is the fraction of note onsets that fall off the integer beat
// grid. Always in [0,1]; default 0 for a score without notes.
type Syncopation struct{}

func (Syncopation) Name() string { return "syncopation" }

func (Syncopation) Extract(s *score.Score) float64 {
	onsets := s.Onsets()
	if len(onsets) == 0 {
		return 0.0
	}
	syncopated := 0
	for _, offset := range onsets {
		if math.Abs(offset-math.Round(offset)) > beatTolerance {
			syncopated++
		}
	}
	return float64(syncopated) / float64(len(onsets))
}

// NoteCountPerBar is the mean number of note onsets per measure. Default 0
// for a score without measures.
type NoteCountPerBar struct{}

func (NoteCountPerBar) Name() string { return "note_count_per_bar" }

func (NoteCountPerBar) Extract(s *score.Score) float64 {
	return stats.Mean(s.NoteCountsPerMeasure())
}

// NoteCountPerBarVariability is the sample variance of per-measure note
// counts, restricted to measures that contain at least one note. Default 0
// with fewer than two qualifying measures.
type NoteCountPerBarVariability struct{}

func (NoteCountPerBarVariability) Name() string { return "note_count_per_bar_variability" }

func (NoteCountPerBarVariability) Extract(s *score.Score) float64 {
	var counts []float64
	for _, c := range s.NoteCountsPerMeasure() {
		if c > 0 {
			counts = append(counts, c)
		}
	}
	return stats.SampleVariance(counts)
}

// RestFrequency is the ratio of rests to all note-and-rest events. Always
// in [0,1]; default 0 for a score without events.
type RestFrequency struct{}

func (RestFrequency) Name() string { return "rest_frequency" }

func (RestFrequency) Extract(s *score.Score) float64 {
	noteCount := len(s.Notes())
	restCount := len(s.Rests())
	total := noteCount + restCount
	if total == 0 {
		return 0.0
	}
	return float64(restCount) / float64(total)
}
