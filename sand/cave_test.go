package sand

import (
	"errors"
	"testing"

	aoc "github.com/maisem/aoc2022"
)

func TestCaveAddIdempotent(t *testing.T) {
	c := NewCave()
	p := aoc.Pt{X: 1, Y: 2}
	c.Add(p, Rock)
	c.Add(p, Rock)
	c.Add(p, Sand)
	if c.Len() != 1 {
		t.Errorf("Len = %d; want 1", c.Len())
	}
	if c.Count(Rock) != 1 || c.Count(Sand) != 0 {
		t.Errorf("Count(Rock), Count(Sand) = %d, %d; want 1, 0", c.Count(Rock), c.Count(Sand))
	}
}

func TestCaveBounds(t *testing.T) {
	c, err := ParseRocks(sampleLines)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi, err := c.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if lo != (aoc.Pt{X: 494, Y: 4}) || hi != (aoc.Pt{X: 503, Y: 9}) {
		t.Errorf("Bounds = %v, %v; want {494 4}, {503 9}", lo, hi)
	}
	for _, p := range c.Cells() {
		if p.X < lo.X || p.X > hi.X || p.Y < lo.Y || p.Y > hi.Y {
			t.Errorf("%v outside bounds %v..%v", p, lo, hi)
		}
	}
}

func TestCaveBoundsEmpty(t *testing.T) {
	if _, _, err := NewCave().Bounds(); !errors.Is(err, ErrEmptyCave) {
		t.Errorf("error = %v; want ErrEmptyCave", err)
	}
}

func TestCaveClone(t *testing.T) {
	c := NewCave()
	c.Add(aoc.Pt{X: 0, Y: 0}, Rock)
	c2 := c.Clone()
	c2.Add(aoc.Pt{X: 1, Y: 1}, Sand)
	if c.Len() != 1 || c.Contains(aoc.Pt{X: 1, Y: 1}) {
		t.Errorf("original cave changed after adding to clone")
	}
	if c.Hash() == c2.Hash() {
		t.Errorf("clone with extra sand has the same hash")
	}
}

func TestCaveString(t *testing.T) {
	c := NewCave()
	c.Add(aoc.Pt{X: 499, Y: 2}, Rock)
	c.Add(aoc.Pt{X: 500, Y: 2}, Rock)
	c.Add(aoc.Pt{X: 501, Y: 2}, Rock)
	c.Add(aoc.Pt{X: 500, Y: 1}, Sand)
	want := "" +
		".+.\n" +
		".o.\n" +
		"###\n"
	if got := c.String(); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}
