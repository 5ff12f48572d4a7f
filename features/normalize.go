package features

import "github.com/Darce-One/shanties/score"

// Calibration constants for the normalized feature set. These are fixed,
// hand-chosen denominators, never derived from the data being analyzed.
const (
	// maxPitchRangeSemitones caps the melodic range at two octaves.
	maxPitchRangeSemitones = 24.0

	// maxIntervalSemitones is the widest interval MIDI can express.
	maxIntervalSemitones = 127.0

	// maxDurationBeats caps the average note length at a whole note.
	maxDurationBeats = 4.0

	// maxBarCount caps the score length at 200 bars.
	maxBarCount = 200.0

	// maxNotesPerBar caps the expected onsets in a single bar.
	maxNotesPerBar = 20.0

	// maxNoteCountVariance caps the per-bar note count variance.
	maxNoteCountVariance = 20.0

	// maxDensityVariance caps the all-bars note density variance.
	maxDensityVariance = 10.0

	// maxPitchEntropyBits caps pitch and interval entropy at 7 bits
	// (128 categories, the MIDI pitch space).
	maxPitchEntropyBits = 7.0

	// maxDurationEntropyBits caps duration entropy at 5 bits
	// (32 distinct duration values).
	maxDurationEntropyBits = 5.0
)

// normalized wraps an extractor with a fixed calibration denominator and
// clamps the result to [0,1]. A scale of 1 passes ratios through unchanged.
type normalized struct {
	inner Extractor
	scale float64
}

func (n normalized) Name() string { return n.inner.Name() }

func (n normalized) Extract(s *score.Score) float64 {
	v := n.inner.Extract(s)
	if n.scale != 1.0 {
		v /= n.scale
	}
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// NewNormalizedRegistry returns the extractor set with every output scaled
// into [0,1] by the calibration constants above. Feature names and ordering
// match NewRegistry; only the value scale differs.
func NewNormalizedRegistry() []Extractor {
	return []Extractor{
		normalized{PitchRange{}, maxPitchRangeSemitones},
		normalized{AverageInterval{}, maxIntervalSemitones},
		normalized{IntervalComplexity{}, maxPitchEntropyBits},
		normalized{LeapFrequency{}, 1.0},
		normalized{ContourDirectionality{}, 1.0},
		normalized{MelodicContourComplexity{}, 1.0},
		normalized{AverageNoteDuration{}, maxDurationBeats},
		normalized{RhythmComplexity{}, maxDurationEntropyBits},
		normalized{Syncopation{}, 1.0},
		normalized{NoteCountPerBar{}, maxNotesPerBar},
		normalized{NoteCountPerBarVariability{}, maxNoteCountVariance},
		normalized{RestFrequency{}, 1.0},
		normalized{ScoreLengthInBars{}, maxBarCount},
		normalized{MelodicPatternRepetition{}, 1.0},
		normalized{RhythmicPatternRepetition{}, 1.0},
		normalized{EntropyOfPitchSequence{}, maxPitchEntropyBits},
		normalized{VarianceInNoteDensity{}, maxDensityVariance},
	}
}
