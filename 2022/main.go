package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/sand"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s *solver) pourSand(p sand.Policy) int {
	rocks := aoc.MustGet(sand.ParseRocks(s.Lines()))
	res := aoc.MustGet(sand.Simulate(rocks, p))
	s.Debugf("%v: %d grains, %d steps, %v\n%v", p, res.Rested, res.Steps, res.Cave.Hash(), res.Cave)
	return res.Rested
}

/*
want=24

498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
*/
func (s *solver) D14p1() any {
	return s.pourSand(sand.Abyss)
}

// want=93
func (s *solver) D14p2() any {
	return s.pourSand(sand.Floor)
}
