package features

import (
	"math"

	"github.com/Darce-One/shanties/score"
)

// Extractor computes a single named scalar feature from a score. Extractors
// are stateless and never mutate the score; for an empty or underpopulated
// score each one returns its documented default instead of failing.
type Extractor interface {
	// Name returns the stable identifier the feature is reported under.
	Name() string

	// Extract computes the feature. The result is always a finite number.
	Extract(s *score.Score) float64
}

// NewRegistry returns the full extractor set in report order. Values are
// raw: semitones, beats, counts, and bits of entropy. Use
// NewNormalizedRegistry for the [0,1]-calibrated variant.
func NewRegistry() []Extractor {
	return []Extractor{
		PitchRange{},
		AverageInterval{},
		IntervalComplexity{},
		LeapFrequency{},
		ContourDirectionality{},
		MelodicContourComplexity{},
		AverageNoteDuration{},
		RhythmComplexity{},
		Syncopation{},
		NoteCountPerBar{},
		NoteCountPerBarVariability{},
		RestFrequency{},
		ScoreLengthInBars{},
		MelodicPatternRepetition{},
		RhythmicPatternRepetition{},
		EntropyOfPitchSequence{},
		VarianceInNoteDensity{},
	}
}

// ExtractAll runs every extractor over the score and collects the results
// keyed by extractor name. Extractors are independent, so the map content
// does not depend on registry order.
func ExtractAll(s *score.Score, extractors []Extractor) map[string]float64 {
	feats := make(map[string]float64, len(extractors))
	for _, e := range extractors {
		v := e.Extract(s)
		// Extractors guard their own divisions; this is the batch-level
		// backstop for the finite-output contract.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0.0
		}
		feats[e.Name()] = v
	}
	return feats
}
