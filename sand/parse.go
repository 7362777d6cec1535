// Package sand simulates sand falling into a cave of rock formations.
package sand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

var (
	ErrBadVertex          = errors.New("bad vertex")
	ErrUnsupportedSegment = errors.New("segment is not horizontal or vertical")
)

// ParseVertices parses a rock formation of the form
// "x1,y1 -> x2,y2 -> ... -> xn,yn".
func ParseVertices(line string) ([]aoc.Pt, error) {
	var pts []aoc.Pt
	for _, f := range strings.Split(line, "->") {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("%w %q: want x,y", ErrBadVertex, strings.TrimSpace(f))
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadVertex, strings.TrimSpace(f), err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadVertex, strings.TrimSpace(f), err)
		}
		pts = append(pts, aoc.Pt{X: x, Y: y})
	}
	return pts, nil
}

// RasterizeSegment returns every point from a to b inclusive. a and b
// must share a row or a column.
func RasterizeSegment(a, b aoc.Pt) ([]aoc.Pt, error) {
	if a.X != b.X && a.Y != b.Y {
		return nil, fmt.Errorf("%v -> %v: %w", a, b, ErrUnsupportedSegment)
	}
	out := []aoc.Pt{a}
	for p := a; p != b; {
		p = p.Toward(b)
		out = append(out, p)
	}
	return out, nil
}

// ParseRocks returns a cave holding the rock of every formation in
// lines. Blank lines are ignored.
func ParseRocks(lines []string) (*Cave, error) {
	c := NewCave()
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		vs, err := ParseVertices(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(vs) == 1 {
			c.Add(vs[0], Rock)
			continue
		}
		for j := 1; j < len(vs); j++ {
			pts, err := RasterizeSegment(vs[j-1], vs[j])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			for _, p := range pts {
				c.Add(p, Rock)
			}
		}
	}
	return c, nil
}
