package features

import (
	"github.com/Darce-One/shanties/algorithms/stats"
	"github.com/Darce-One/shanties/score"
)

// leapThreshold is the largest interval, in semitones, still counted as a
// step. Anything above it is a leap.
const leapThreshold = 2

// absIntervals returns the absolute semitone distances between consecutive
// pitches. Fewer than two pitches yield no intervals.
func absIntervals(pitches []int) []int {
	if len(pitches) < 2 {
		return nil
	}
	intervals := make([]int, len(pitches)-1)
	for i := 1; i < len(pitches); i++ {
		d := pitches[i] - pitches[i-1]
		if d < 0 {
			d = -d
		}
		intervals[i-1] = d
	}
	return intervals
}

// directions returns the sign of each non-zero consecutive pitch change
// (+1 up, -1 down). Repeated pitches are skipped.
func directions(pitches []int) []int {
	var dirs []int
	for i := 1; i < len(pitches); i++ {
		switch {
		case pitches[i] > pitches[i-1]:
			dirs = append(dirs, 1)
		case pitches[i] < pitches[i-1]:
			dirs = append(dirs, -1)
		}
	}
	return dirs
}

// PitchRange is the distance in semitones between the highest and lowest
// note of the melody. Default 0 for a score without notes.
type PitchRange struct{}

func (PitchRange) Name() string { return "pitch_range" }

func (PitchRange) Extract(s *score.Score) float64 {
	pitches := s.Pitches()
	if len(pitches) == 0 {
		return 0.0
	}
	lo, hi := pitches[0], pitches[0]
	for _, p := range pitches {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return float64(hi - lo)
}

// AverageInterval is the mean absolute interval between consecutive notes,
// in semitones. Default 0 with fewer than two notes.
type AverageInterval struct{}

func (AverageInterval) Name() string { return "average_interval" }

func (AverageInterval) Extract(s *score.Score) float64 {
	intervals := absIntervals(s.Pitches())
	if len(intervals) == 0 {
		return 0.0
	}
	sum := 0
	for _, iv := range intervals {
		sum += iv
	}
	return float64(sum) / float64(len(intervals))
}

// IntervalComplexity quantifies interval diversity as the Shannon entropy
// (bits) of the distribution of absolute interval sizes. Default 0 with
// fewer than two notes.
type IntervalComplexity struct{}

func (IntervalComplexity) Name() string { return "interval_complexity" }

func (IntervalComplexity) Extract(s *score.Score) float64 {
	intervals := absIntervals(s.Pitches())
	if len(intervals) == 0 {
		return 0.0
	}
	return stats.ShannonEntropy(intervals)
}

// LeapFrequency is the fraction of consecutive-note intervals larger than a
// step. Always in [0,1]; default 0 with fewer than two notes.
type LeapFrequency struct{}

func (LeapFrequency) Name() string { return "leap_frequency" }

func (LeapFrequency) Extract(s *score.Score) float64 {
	intervals := absIntervals(s.Pitches())
	if len(intervals) == 0 {
		return 0.0
	}
	leaps := 0
	for _, iv := range intervals {
		if iv > leapThreshold {
			leaps++
		}
	}
	return float64(leaps) / float64(len(intervals))
}

// ContourDirectionality is the fraction of non-zero pitch changes that move
// upward. Repeated pitches are ignored. Default 0 with fewer than two notes
// or no non-zero changes.
type ContourDirectionality struct{}

func (ContourDirectionality) Name() string { return "contour_directionality" }

func (ContourDirectionality) Extract(s *score.Score) float64 {
	dirs := directions(s.Pitches())
	if len(dirs) == 0 {
		return 0.0
	}
	up := 0
	for _, d := range dirs {
		if d > 0 {
			up++
		}
	}
	return float64(up) / float64(len(dirs))
}

// MelodicContourComplexity counts direction reversals in the melodic
// contour, normalized by the maximum possible number of reversals (the
// number of non-zero direction segments minus one). Default 0 with fewer
// than three notes or when no reversal is possible.
type MelodicContourComplexity struct{}

func (MelodicContourComplexity) Name() string { return "melodic_contour_complexity" }

func (MelodicContourComplexity) Extract(s *score.Score) float64 {
	pitches := s.Pitches()
	if len(pitches) < 3 {
		return 0.0
	}
	dirs := directions(pitches)
	if len(dirs) < 2 {
		return 0.0
	}
	changes := 0
	for i := 1; i < len(dirs); i++ {
		if dirs[i] != dirs[i-1] {
			changes++
		}
	}
	return float64(changes) / float64(len(dirs)-1)
}
