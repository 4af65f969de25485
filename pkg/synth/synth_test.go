package synth

import (
	"encoding/binary"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestSynthesizeLength(t *testing.T) {
	cases := []struct {
		d      time.Duration
		frames int
	}{
		{100 * time.Millisecond, 4410},
		{200 * time.Millisecond, 8820},
		{time.Millisecond, 44},
		{1500 * time.Microsecond, 66},
	}
	for _, tc := range cases {
		buf, err := Synthesize(440, tc.d)
		if err != nil {
			t.Fatalf("Synthesize(%v): %v", tc.d, err)
		}
		if buf.Frames() != tc.frames {
			t.Errorf("Synthesize(%v) frames = %d, want %d", tc.d, buf.Frames(), tc.frames)
		}
		if len(buf.Samples) != tc.frames*Channels {
			t.Errorf("Synthesize(%v) samples = %d, want %d", tc.d, len(buf.Samples), tc.frames*Channels)
		}
	}
}

func TestSynthesizeStereoAndEnvelope(t *testing.T) {
	buf, err := Synthesize(261.63, 100*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	n := buf.Frames()
	for i := 0; i < n; i++ {
		if buf.Samples[2*i] != buf.Samples[2*i+1] {
			t.Fatalf("frame %d channels differ: %d vs %d", i, buf.Samples[2*i], buf.Samples[2*i+1])
		}
	}
	if buf.Samples[0] != 0 {
		t.Fatalf("first sample = %d, want 0 (sin 0)", buf.Samples[0])
	}
	if last := buf.Samples[2*(n-1)]; last != 0 {
		t.Fatalf("last sample = %d, want 0 after fade-out", last)
	}
	const limit = math.MaxInt16/2 + 1
	for i, s := range buf.Samples {
		if s > limit || s < -limit {
			t.Fatalf("sample %d = %d exceeds half scale", i, s)
		}
	}
}

func TestSynthesizeMatchesFormula(t *testing.T) {
	const freq = 440.0
	buf, err := Synthesize(freq, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	n := buf.Frames()
	step := 0.01 / float64(n)
	for _, i := range []int{1, 7, 100, n / 2, n - 2} {
		tm := float64(i) * step
		env := 1 - float64(i)/float64(n-1)
		want := int16(0.5 * math.Sin(2*math.Pi*freq*tm) * env * math.MaxInt16)
		if got := buf.Samples[2*i]; got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a, _ := Synthesize(523.25, 50*time.Millisecond)
	b, _ := Synthesize(523.25, 50*time.Millisecond)
	if !slices.Equal(a.Samples, b.Samples) {
		t.Fatal("synthesis must be deterministic")
	}
}

func TestSynthesizeRejectsInvalid(t *testing.T) {
	if _, err := Synthesize(0, time.Second); !errors.Is(err, ErrInvalidTone) {
		t.Fatalf("zero frequency: got %v", err)
	}
	if _, err := Synthesize(440, 0); !errors.Is(err, ErrInvalidTone) {
		t.Fatalf("zero duration: got %v", err)
	}
	if _, err := Synthesize(440, time.Microsecond); !errors.Is(err, ErrInvalidTone) {
		t.Fatalf("sub-sample duration: got %v", err)
	}
}

func TestBytesLittleEndian(t *testing.T) {
	buf := Buffer{Samples: []int16{1, -2, math.MaxInt16, math.MinInt16}}
	raw := buf.Bytes()
	if len(raw) != 8 {
		t.Fatalf("len = %d, want 8", len(raw))
	}
	for i, want := range buf.Samples {
		got := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		if got != want {
			t.Fatalf("sample %d decoded %d, want %d", i, got, want)
		}
	}
}
