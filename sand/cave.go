package sand

import (
	"errors"
	"slices"

	aoc "github.com/maisem/aoc2022"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// ErrEmptyCave is returned when bounds are requested for a cave with no
// occupied cells.
var ErrEmptyCave = errors.New("cave has no occupied cells")

// Tile is what occupies a cell.
type Tile byte

const (
	Rock Tile = '#'
	Sand Tile = 'o'
)

// Cave is the set of occupied cells: rock and settled sand. Cells are
// only ever added.
type Cave struct {
	tiles map[aoc.Pt]Tile
}

func NewCave() *Cave {
	return &Cave{tiles: make(map[aoc.Pt]Tile)}
}

// Contains reports whether p is occupied.
func (c *Cave) Contains(p aoc.Pt) bool {
	_, ok := c.tiles[p]
	return ok
}

// Add marks p as occupied by t. Adding an occupied cell is a no-op.
func (c *Cave) Add(p aoc.Pt, t Tile) {
	if _, ok := c.tiles[p]; ok {
		return
	}
	c.tiles[p] = t
}

func (c *Cave) Len() int {
	return len(c.tiles)
}

// Count returns the number of cells holding t.
func (c *Cave) Count(t Tile) int {
	n := 0
	for _, v := range c.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Bounds returns the top-left and bottom-right corners of the smallest
// rectangle holding every occupied cell.
func (c *Cave) Bounds() (lo, hi aoc.Pt, err error) {
	lo, hi, ok := aoc.Bounds(maps.Keys(c.tiles))
	if !ok {
		return lo, hi, ErrEmptyCave
	}
	return lo, hi, nil
}

func (c *Cave) Clone() *Cave {
	return &Cave{tiles: maps.Clone(c.tiles)}
}

// Cells returns the occupied cells ordered by row, then column.
func (c *Cave) Cells() []aoc.Pt {
	pts := maps.Keys(c.tiles)
	slices.SortFunc(pts, func(a, b aoc.Pt) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return pts
}

var hashTiles = deephash.HasherForType[map[aoc.Pt]Tile]()

// Hash returns a fingerprint of the occupied cells and their tiles.
func (c *Cave) Hash() deephash.Sum {
	return hashTiles(&c.tiles)
}

// String draws the cave, framing the occupied cells and the source.
func (c *Cave) String() string {
	lo, hi, ok := aoc.Bounds(append(maps.Keys(c.tiles), Source))
	if !ok {
		return ""
	}
	g := aoc.MakeGrid[byte](hi.X-lo.X+1, hi.Y-lo.Y+1)
	for y := range g {
		for x := range g[y] {
			g[y][x] = '.'
		}
	}
	g.Set(Source.Add(aoc.Pt{X: -lo.X, Y: -lo.Y}), '+')
	for p, t := range c.tiles {
		g.Set(p.Add(aoc.Pt{X: -lo.X, Y: -lo.Y}), byte(t))
	}
	return g.Draw(func(b byte) byte { return b })
}
