package sonify

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownScale is returned by ScaleByName for unregistered names.
var ErrUnknownScale = errors.New("unknown scale")

// Scale is an ascending list of note frequencies in Hz.
type Scale []float64

// DefaultScale names the scale used when none is configured.
const DefaultScale = "major"

const (
	midiC3   = 48
	octaves  = 3
	concertA = 440.0
)

var (
	majorSteps      = []int{0, 2, 4, 5, 7, 9, 11}
	minorSteps      = []int{0, 2, 3, 5, 7, 8, 10}
	pentatonicSteps = []int{0, 2, 4, 7, 9}
)

var scales = map[string]Scale{
	"major":      buildScale(midiC3, majorSteps, octaves),
	"minor":      buildScale(midiC3, minorSteps, octaves),
	"pentatonic": buildScale(midiC3, pentatonicSteps, octaves),
}

// Major is C major from C3 to C6: 22 notes over three octaves.
var Major = scales["major"]

// buildScale lays the semitone pattern over the given octaves and closes it
// with the root of the next octave.
func buildScale(root int, steps []int, octaves int) Scale {
	s := make(Scale, 0, len(steps)*octaves+1)
	for o := 0; o < octaves; o++ {
		for _, st := range steps {
			s = append(s, midiToHz(root+12*o+st))
		}
	}
	return append(s, midiToHz(root+12*octaves))
}

func midiToHz(note int) float64 {
	return concertA * math.Pow(2, float64(note-69)/12)
}

// ScaleByName returns a copy of the named scale.
func ScaleByName(name string) (Scale, error) {
	s, ok := scales[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScale, "%q", name)
	}
	return append(Scale(nil), s...), nil
}

// ScaleNames lists the registered scale names in sorted order.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
