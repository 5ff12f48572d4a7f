package features

import "github.com/Darce-One/shanties/score"

// quarterMelody builds a score of quarter notes at the given MIDI pitches,
// one per beat in 4/4.
func quarterMelody(pitches ...int) *score.Score {
	notes := make([]score.Note, len(pitches))
	for i, p := range pitches {
		notes[i] = score.Note{Pitch: p, Offset: float64(i), Duration: 1.0}
	}
	return score.Build(notes, nil, 4.0)
}

// melody builds a score from parallel pitch/duration slices, each note
// starting where the previous one ends.
func melody(pitches []int, durations []float64) *score.Score {
	notes := make([]score.Note, len(pitches))
	offset := 0.0
	for i, p := range pitches {
		notes[i] = score.Note{Pitch: p, Offset: offset, Duration: durations[i]}
		offset += durations[i]
	}
	return score.Build(notes, nil, 4.0)
}

// emptyScore is a well-formed score with zero events.
func emptyScore() *score.Score {
	return score.Build(nil, nil, 4.0)
}
