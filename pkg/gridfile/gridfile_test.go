package gridfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"sonolife/pkg/core"
	"sonolife/pkg/life"
)

func TestEncodeFormat(t *testing.T) {
	g := life.New(3, 2)
	g, _ = g.Set(0, 0, true)
	g, _ = g.Set(2, 1, true)
	want := "1 0 0\n0 0 1\n"
	if got := Encode(g); got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	g := life.Random(17, 11, 0.4, core.NewRNG(3))
	rows, err := Decode(strings.NewReader(Encode(g)))
	if err != nil {
		t.Fatal(err)
	}
	back := Apply(life.New(17, 11), rows)
	if !back.Equal(g) {
		t.Fatal("round trip changed the grid")
	}
}

func TestApplyOverlapCopy(t *testing.T) {
	dst := life.New(4, 4)
	dst, _ = dst.Set(3, 3, true)
	dst, _ = dst.Set(2, 0, true)

	rows, err := Decode(strings.NewReader("1 1\n1 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := Apply(dst, rows)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true,
		{3, 3}: true, {2, 0}: true,
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			alive, _ := got.Alive(x, y)
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
	if dst.Population() != 2 {
		t.Fatal("Apply must not mutate dst")
	}
}

func TestApplyTruncatesLargerFile(t *testing.T) {
	rows, err := Decode(strings.NewReader("0 1 1\n1 0 1\n1 1 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := Apply(life.New(2, 2), rows)
	if want := "0 1\n1 0\n"; Encode(got) != want {
		t.Fatalf("Apply = %q, want %q", Encode(got), want)
	}
}

func TestDecodeRejectsBadToken(t *testing.T) {
	_, err := Decode(strings.NewReader("0 1\n1 x\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error should name the line: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	g := life.Random(8, 6, 0.5, core.NewRNG(11))
	if err := Save(path, g); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, life.New(8, 6))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatal("loaded grid differs from saved grid")
	}
}

func TestLoadFailuresKeepGrid(t *testing.T) {
	dir := t.TempDir()
	dst := life.New(3, 3)
	dst, _ = dst.Set(1, 1, true)

	got, err := Load(filepath.Join(dir, "missing.txt"), dst)
	if !errors.Is(err, ErrIO) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: got %v", err)
	}
	if got != dst {
		t.Fatal("failed load must return the original grid")
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("1 0 2.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = Load(bad, dst)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("bad file: got %v", err)
	}
	if got != dst {
		t.Fatal("failed parse must return the original grid")
	}
}

func TestSaveFailure(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), life.New(2, 2))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
