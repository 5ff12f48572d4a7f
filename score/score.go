package score

import "math"

// Note is a single pitched event in a score. Pitch is the MIDI semitone
// number (0-127); Offset and Duration are expressed in quarter-note beats
// from the start of the score.
type Note struct {
	Pitch    int     `json:"pitch"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

// Rest is an unpitched gap between notes.
type Rest struct {
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

// Measure is one bar of the score. Number is the zero-based bar index.
type Measure struct {
	Number int    `json:"number"`
	Notes  []Note `json:"notes"`
	Rests  []Rest `json:"rests"`
}

// Score is an ordered sequence of measures. It is built once per input file
// and treated as immutable afterwards: feature extractors only read it.
type Score struct {
	Measures []Measure `json:"measures"`

	// BeatsPerMeasure is the length of a bar in quarter-note beats, kept
	// for reference; it does not affect any accessor below.
	BeatsPerMeasure float64 `json:"beats_per_measure"`
}

// Build partitions the given events into measures of beatsPerMeasure beats.
// An event belongs to the measure containing its onset. Events must already
// be in score order. A non-positive beatsPerMeasure falls back to 4/4.
func Build(notes []Note, rests []Rest, beatsPerMeasure float64) *Score {
	if beatsPerMeasure <= 0 {
		beatsPerMeasure = 4.0
	}

	end := 0.0
	for _, n := range notes {
		if e := n.Offset + n.Duration; e > end {
			end = e
		}
	}
	for _, r := range rests {
		if e := r.Offset + r.Duration; e > end {
			end = e
		}
	}

	numMeasures := 0
	if end > 0 {
		// An event ending exactly on a barline does not open a new bar.
		numMeasures = int(math.Ceil(end/beatsPerMeasure - 1e-9))
		if numMeasures < 1 {
			numMeasures = 1
		}
	}

	s := &Score{
		Measures:        make([]Measure, numMeasures),
		BeatsPerMeasure: beatsPerMeasure,
	}
	for i := range s.Measures {
		s.Measures[i].Number = i
	}

	idx := func(offset float64) int {
		i := int(offset / beatsPerMeasure)
		if i < 0 {
			i = 0
		}
		if i >= numMeasures {
			i = numMeasures - 1
		}
		return i
	}

	for _, n := range notes {
		i := idx(n.Offset)
		s.Measures[i].Notes = append(s.Measures[i].Notes, n)
	}
	for _, r := range rests {
		i := idx(r.Offset)
		s.Measures[i].Rests = append(s.Measures[i].Rests, r)
	}

	return s
}

// Notes returns all note events in score order, rests excluded.
func (s *Score) Notes() []Note {
	var notes []Note
	for _, m := range s.Measures {
		notes = append(notes, m.Notes...)
	}
	return notes
}

// Rests returns all rest events in score order.
func (s *Score) Rests() []Rest {
	var rests []Rest
	for _, m := range s.Measures {
		rests = append(rests, m.Rests...)
	}
	return rests
}

// Pitches returns the ordered sequence of note pitches.
func (s *Score) Pitches() []int {
	notes := s.Notes()
	pitches := make([]int, len(notes))
	for i, n := range notes {
		pitches[i] = n.Pitch
	}
	return pitches
}

// Durations returns the ordered sequence of note durations in beats.
func (s *Score) Durations() []float64 {
	notes := s.Notes()
	durations := make([]float64, len(notes))
	for i, n := range notes {
		durations[i] = n.Duration
	}
	return durations
}

// Onsets returns the ordered sequence of note start offsets in beats.
func (s *Score) Onsets() []float64 {
	notes := s.Notes()
	onsets := make([]float64, len(notes))
	for i, n := range notes {
		onsets[i] = n.Offset
	}
	return onsets
}

// NoteCountsPerMeasure returns the number of note events in each measure.
func (s *Score) NoteCountsPerMeasure() []float64 {
	counts := make([]float64, len(s.Measures))
	for i, m := range s.Measures {
		counts[i] = float64(len(m.Notes))
	}
	return counts
}

// NumMeasures returns the number of bars in the score.
func (s *Score) NumMeasures() int {
	return len(s.Measures)
}
