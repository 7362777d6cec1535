package aoc

import (
	"strings"

	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Draw renders the grid one row per line, using cell to pick the
// character for each value.
func (g Grid[T]) Draw(cell func(T) byte) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteByte(cell(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

// Bounds returns the smallest and largest X and Y over pts, as two
// corner points. ok is false if pts is empty.
func Bounds[T constraints.Signed](pts []Pt2[T]) (lo, hi Pt2[T], ok bool) {
	if len(pts) == 0 {
		return lo, hi, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi, true
}
