package features

import (
	"strconv"

	"github.com/Darce-One/shanties/algorithms/stats"
	"github.com/Darce-One/shanties/score"
)

// trigramSize is the window length used by the pattern repetition features.
const trigramSize = 3

// ScoreLengthInBars is the total number of measures in the score.
type ScoreLengthInBars struct{}

func (ScoreLengthInBars) Name() string { return "score_length_in_bars" }

func (ScoreLengthInBars) Extract(s *score.Score) float64 {
	return float64(s.NumMeasures())
}

// MelodicPatternRepetition slides a trigram window over the pitch sequence
// and reports 1 - distinct/total windows. Always in [0,1]; default 0 with
// fewer than three notes.
type MelodicPatternRepetition struct{}

func (MelodicPatternRepetition) Name() string { return "melodic_pattern_repetition" }

func (MelodicPatternRepetition) Extract(s *score.Score) float64 {
	pitches := s.Pitches()
	tokens := make([]string, len(pitches))
	for i, p := range pitches {
		tokens[i] = strconv.Itoa(p)
	}
	return stats.NgramRepetition(tokens, trigramSize)
}

// RhythmicPatternRepetition applies the same trigram repetition measure to
// the note duration sequence. Always in [0,1]; default 0 with fewer than
// three notes.
type RhythmicPatternRepetition struct{}

func (RhythmicPatternRepetition) Name() string { return "rhythmic_pattern_repetition" }

func (RhythmicPatternRepetition) Extract(s *score.Score) float64 {
	durations := s.Durations()
	tokens := make([]string, len(durations))
	for i, d := range durations {
		tokens[i] = stats.FloatToken(d)
	}
	return stats.NgramRepetition(tokens, trigramSize)
}

// EntropyOfPitchSequence is the Shannon entropy (bits) of the distribution
// of raw pitch values, as opposed to IntervalComplexity which works on
// intervals. Default 0 for a score without notes.
type EntropyOfPitchSequence struct{}

func (EntropyOfPitchSequence) Name() string { return "entropy_of_pitch_sequence" }

func (EntropyOfPitchSequence) Extract(s *score.Score) float64 {
	return stats.ShannonEntropy(s.Pitches())
}

// VarianceInNoteDensity is the sample variance of per-measure note counts
// across all measures, empty ones included. Default 0 with fewer than two
// measures.
type VarianceInNoteDensity struct{}

func (VarianceInNoteDensity) Name() string { return "variance_in_note_density" }

func (VarianceInNoteDensity) Extract(s *score.Score) float64 {
	return stats.SampleVariance(s.NoteCountsPerMeasure())
}
