// Package midiscore turns standard MIDI files into symbolic scores for
// feature extraction. It resolves the primary melodic track, converts tick
// timing into quarter-note beats, derives rests from the gaps between notes
// and partitions everything into measures.
package midiscore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Darce-One/shanties/score"
)

const (
	// defaultTicksPerQuarter is used when the file carries a non-metric
	// (SMPTE) time format.
	defaultTicksPerQuarter = 480.0

	// defaultBeatsPerBar applies when no time signature meta event exists.
	defaultBeatsPerBar = 4.0
)

// timedNote is a note with absolute tick timing, before beat conversion.
type timedNote struct {
	pitch     uint8
	startTick int64
	endTick   int64
}

// ReadScoreFile parses a MIDI file into a Score. A malformed file yields an
// error and no Score, never a partially built one.
func ReadScoreFile(path string) (*score.Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}

	parsed, err := parseSMF(data)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}

	return FromSMF(parsed)
}

// smfDecode is a variable so tests can stand in a decoder that panics.
var smfDecode = func(data []byte) (*smf.SMF, error) {
	return smf.ReadFrom(bytes.NewReader(data))
}

// parseSMF decodes SMF bytes, converting reader panics into errors. The SMF
// reader can panic on corrupt input, with string values as well as runtime
// errors from indexing truncated chunks, so any recovered value becomes an
// error.
// https://github.com/gomidi/midi/issues/20
func parseSMF(data []byte) (mf *smf.SMF, err error) {
	defer func() {
		if r := recover(); r != nil {
			mf, err = nil, fmt.Errorf("smf read panic: %v", r)
		}
	}()
	return smfDecode(data)
}

// FromSMF converts a parsed SMF into a Score, analyzing only the primary
// melodic track chosen by SelectPart.
func FromSMF(mf *smf.SMF) (*score.Score, error) {
	if mf == nil {
		return nil, errors.New("nil smf")
	}

	ticksPerQuarter := defaultTicksPerQuarter
	if tf, ok := mf.TimeFormat.(smf.MetricTicks); ok && tf > 0 {
		ticksPerQuarter = float64(tf)
	}

	timed := trackNotes(SelectPart(mf))
	sort.Slice(timed, func(i, j int) bool {
		if timed[i].startTick != timed[j].startTick {
			return timed[i].startTick < timed[j].startTick
		}
		return timed[i].pitch < timed[j].pitch
	})

	notes := make([]score.Note, len(timed))
	for i, tn := range timed {
		notes[i] = score.Note{
			Pitch:    int(tn.pitch),
			Offset:   float64(tn.startTick) / ticksPerQuarter,
			Duration: float64(tn.endTick-tn.startTick) / ticksPerQuarter,
		}
	}

	return score.Build(notes, restsBetween(notes), beatsPerBar(mf)), nil
}

// SelectPart picks the track representing the melodic line: a track whose
// name or instrument mentions a voice, else the first track carrying notes,
// else the first track.
func SelectPart(mf *smf.SMF) smf.Track {
	var fallback smf.Track
	haveFallback := false

	for _, t := range mf.Tracks {
		if !trackHasNotes(t) {
			continue
		}
		name := strings.ToLower(trackName(t))
		if strings.Contains(name, "voice") || strings.Contains(name, "vocal") {
			return t
		}
		if !haveFallback {
			fallback = t
			haveFallback = true
		}
	}

	if haveFallback {
		return fallback
	}
	if len(mf.Tracks) > 0 {
		return mf.Tracks[0]
	}
	return nil
}

// trackNotes pairs NoteOn/NoteOff events into timed notes. A NoteOn with
// zero velocity counts as NoteOff. Notes left hanging at the end of the
// track are closed at the final tick.
func trackNotes(t smf.Track) []timedNote {
	var notes []timedNote
	pressed := make(map[uint8]int64)

	var absTicks int64
	for _, ev := range t {
		absTicks += int64(ev.Delta)

		var channel, key, velocity uint8
		switch {
		case ev.Message.GetNoteOn(&channel, &key, &velocity):
			if velocity == 0 {
				notes = closeNote(notes, pressed, key, absTicks)
			} else if _, held := pressed[key]; !held {
				pressed[key] = absTicks
			}
		case ev.Message.GetNoteOff(&channel, &key, &velocity):
			notes = closeNote(notes, pressed, key, absTicks)
		}
	}

	for key, start := range pressed {
		if absTicks > start {
			notes = append(notes, timedNote{pitch: key, startTick: start, endTick: absTicks})
		}
	}

	return notes
}

func closeNote(notes []timedNote, pressed map[uint8]int64, key uint8, tick int64) []timedNote {
	start, held := pressed[key]
	if !held {
		return notes
	}
	delete(pressed, key)
	if tick <= start {
		return notes
	}
	return append(notes, timedNote{pitch: key, startTick: start, endTick: tick})
}

// restsBetween derives rest events from the silent gaps of the melody: the
// stretch before the first onset and any gap between the latest note end
// seen so far and the next onset. Notes must be sorted by offset.
func restsBetween(notes []score.Note) []score.Rest {
	var rests []score.Rest
	covered := 0.0

	for _, n := range notes {
		if gap := n.Offset - covered; gap > beatEpsilon {
			rests = append(rests, score.Rest{Offset: covered, Duration: gap})
		}
		if end := n.Offset + n.Duration; end > covered {
			covered = end
		}
	}

	return rests
}

// beatEpsilon ignores sub-tick rounding noise when deriving rests.
const beatEpsilon = 1e-6

// beatsPerBar scans the file for the first time signature meta event and
// returns the bar length in quarter-note beats (6/8 gives 3.0). Files
// without a time signature are treated as 4/4.
func beatsPerBar(mf *smf.SMF) float64 {
	for _, t := range mf.Tracks {
		for _, ev := range t {
			var num, denom uint8
			if ev.Message.GetMetaMeter(&num, &denom) {
				if num == 0 || denom == 0 {
					return defaultBeatsPerBar
				}
				return float64(num) * 4.0 / float64(denom)
			}
		}
	}
	return defaultBeatsPerBar
}

func trackHasNotes(t smf.Track) bool {
	for _, ev := range t {
		var channel, key, velocity uint8
		if ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
			return true
		}
	}
	return false
}

func trackName(t smf.Track) string {
	for _, ev := range t {
		var name string
		if ev.Message.GetMetaTrackName(&name) {
			return name
		}
		if ev.Message.GetMetaInstrument(&name) {
			return name
		}
	}
	return ""
}
