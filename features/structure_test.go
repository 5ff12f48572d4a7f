package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Darce-One/shanties/score"
)

func TestScoreLengthInBars(t *testing.T) {
	assert.Equal(t, 2.0, ScoreLengthInBars{}.Extract(quarterMelody(60, 62, 64, 66, 68)))
	assert.Equal(t, 1.0, ScoreLengthInBars{}.Extract(quarterMelody(60, 62, 64, 66)))
	assert.Zero(t, ScoreLengthInBars{}.Extract(emptyScore()))
}

func TestMelodicPatternRepetition(t *testing.T) {
	// Alternating pair: 4 trigram windows but only 2 distinct.
	v := MelodicPatternRepetition{}.Extract(quarterMelody(60, 61, 60, 61, 60, 61))
	assert.InDelta(t, 0.5, v, 1e-12)

	// Strictly ascending line: every window unique.
	assert.Zero(t, MelodicPatternRepetition{}.Extract(quarterMelody(60, 61, 62, 63, 64)))

	assert.Zero(t, MelodicPatternRepetition{}.Extract(quarterMelody(60, 61)))
	assert.Zero(t, MelodicPatternRepetition{}.Extract(emptyScore()))
}

func TestRhythmicPatternRepetition(t *testing.T) {
	// Six identical durations: one distinct window out of four.
	s := melody([]int{60, 61, 62, 63, 64, 65}, []float64{1, 1, 1, 1, 1, 1})
	assert.InDelta(t, 0.75, RhythmicPatternRepetition{}.Extract(s), 1e-12)

	// All-distinct durations never repeat a window.
	s = melody([]int{60, 61, 62, 63, 64}, []float64{0.25, 0.5, 1, 2, 4})
	assert.Zero(t, RhythmicPatternRepetition{}.Extract(s))

	assert.Zero(t, RhythmicPatternRepetition{}.Extract(emptyScore()))
}

func TestEntropyOfPitchSequence(t *testing.T) {
	assert.Zero(t, EntropyOfPitchSequence{}.Extract(quarterMelody(60, 60, 60, 60)))

	v := EntropyOfPitchSequence{}.Extract(quarterMelody(60, 62, 64, 66))
	assert.InDelta(t, math.Log2(4), v, 1e-12)

	assert.Zero(t, EntropyOfPitchSequence{}.Extract(emptyScore()))
}

func TestVarianceInNoteDensity(t *testing.T) {
	// Unlike the variability feature, empty bars count here: {2, 0}.
	s := score.Build([]score.Note{
		{Pitch: 60, Offset: 0, Duration: 1},
		{Pitch: 62, Offset: 1, Duration: 1},
	}, []score.Rest{{Offset: 4, Duration: 4}}, 4.0)
	assert.InDelta(t, 2.0, VarianceInNoteDensity{}.Extract(s), 1e-12)

	// One bar only.
	assert.Zero(t, VarianceInNoteDensity{}.Extract(quarterMelody(60, 62)))
	assert.Zero(t, VarianceInNoteDensity{}.Extract(emptyScore()))
}
