package sand

import (
	"fmt"

	aoc "github.com/maisem/aoc2022"
)

// Source is where every grain starts falling.
var Source = aoc.Pt{X: 500, Y: 0}

// fallMoves are the moves a grain tries, in order.
var fallMoves = [...]aoc.Pt{
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}

// Occupier reports whether a cell is taken.
type Occupier interface {
	Contains(aoc.Pt) bool
}

// NextFreeNeighbor returns the cell a grain at p moves to next, and
// true. If every candidate is taken the grain rests, and it returns p
// and false.
func NextFreeNeighbor(p aoc.Pt, occ Occupier) (aoc.Pt, bool) {
	for _, m := range fallMoves {
		if n := p.Add(m); !occ.Contains(n) {
			return n, true
		}
	}
	return p, false
}

// Policy selects what lies below the rock and when a simulation stops.
type Policy int

const (
	// Abyss has nothing below the lowest rock. The simulation stops when
	// a grain falls past it.
	Abyss Policy = iota
	// Floor adds a floor two rows below the lowest rock. The simulation
	// stops when sand blocks the source.
	Floor
)

func (p Policy) String() string {
	switch p {
	case Abyss:
		return "abyss"
	case Floor:
		return "floor"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Result is the outcome of one simulation run.
type Result struct {
	// Cave is the final cave, including any floor and all rested sand.
	Cave *Cave
	// Rested is the number of grains that came to rest.
	Rested int
	// Steps is the number of moves made by the resumed path search. A
	// grain that picks up where the previous one rested does not repeat
	// the moves above that point, so this is less than the total fall
	// length of all grains.
	Steps int
}

// Simulate drops grains from Source into a copy of c until p says to
// stop. c is not modified.
func Simulate(c *Cave, p Policy) (Result, error) {
	return Trace(c, p, nil)
}

// Trace is like Simulate but calls onRest, if non-nil, with the
// position of each grain as it comes to rest.
func Trace(c *Cave, p Policy, onRest func(aoc.Pt)) (Result, error) {
	_, hi, err := c.Bounds()
	if err != nil {
		return Result{}, err
	}
	cave := c.Clone()
	switch p {
	case Abyss:
	case Floor:
		// Sand cannot spread further from the source than it falls, so a
		// floor this wide behaves like an endless one.
		y := hi.Y + 2
		for x := Source.X - y; x <= Source.X+y; x++ {
			cave.Add(aoc.Pt{X: x, Y: y}, Rock)
		}
	default:
		return Result{}, fmt.Errorf("unknown policy %v", p)
	}

	res := Result{Cave: cave}
	if p == Floor && cave.Contains(Source) {
		return res, nil
	}
	// path holds the cells the current grain fell through. Once it rests,
	// the next grain would retrace the same cells, so it resumes from the
	// top of path instead of the source.
	var path aoc.Stack[aoc.Pt]
	for {
		pos, ok := path.Peek()
		if !ok {
			pos = Source
			path.Push(pos)
		}
		next, ok := NextFreeNeighbor(pos, cave)
		if !ok {
			path.Pop()
			cave.Add(pos, Sand)
			res.Rested++
			if onRest != nil {
				onRest(pos)
			}
			if pos == Source {
				break
			}
			continue
		}
		if p == Abyss && next.Y > hi.Y {
			break
		}
		res.Steps++
		path.Push(next)
	}
	return res, nil
}
