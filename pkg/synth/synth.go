// Package synth renders short sine tones as 16-bit stereo PCM.
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"
)

const (
	// SampleRate is the output rate in Hz.
	SampleRate = 44100
	// Channels is the number of interleaved output channels.
	Channels = 2
	// BytesPerSample is the size of one encoded int16 sample.
	BytesPerSample = 2

	amplitude = 0.5
	fullScale = math.MaxInt16
)

// ErrInvalidTone is returned for non-positive frequencies or durations.
var ErrInvalidTone = errors.New("invalid tone")

// Buffer holds interleaved stereo samples (L, R, L, R, ...).
type Buffer struct {
	Samples []int16
}

// Frames returns the number of stereo sample frames.
func (b Buffer) Frames() int { return len(b.Samples) / Channels }

// Bytes encodes the samples as signed 16-bit little-endian PCM.
func (b Buffer) Bytes() []byte {
	out := make([]byte, len(b.Samples)*BytesPerSample)
	for i, s := range b.Samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(s))
	}
	return out
}

// FrameCount returns how many frames a tone of duration d spans.
func FrameCount(d time.Duration) int {
	ms := float64(d) / float64(time.Millisecond)
	return int(math.Round(SampleRate * ms / 1000))
}

// Synthesize renders a sine at freq Hz lasting d, faded linearly from full
// level to silence so the tone ends without a click. The same inputs always
// produce the same buffer.
func Synthesize(freq float64, d time.Duration) (Buffer, error) {
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return Buffer{}, errors.Wrapf(ErrInvalidTone, "frequency %v", freq)
	}
	if d <= 0 {
		return Buffer{}, errors.Wrapf(ErrInvalidTone, "duration %v", d)
	}
	n := FrameCount(d)
	if n == 0 {
		return Buffer{}, errors.Wrapf(ErrInvalidTone, "duration %v is shorter than one sample", d)
	}

	seconds := d.Seconds()
	step := seconds / float64(n)
	samples := make([]int16, n*Channels)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		v := amplitude * math.Sin(2*math.Pi*freq*t) * envelope(i, n)
		s := int16(v * fullScale)
		samples[i*Channels] = s
		samples[i*Channels+1] = s
	}
	return Buffer{Samples: samples}, nil
}

// envelope falls from 1 at the first sample to 0 at the last one.
func envelope(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 1 - float64(i)/float64(n-1)
}
