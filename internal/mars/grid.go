package mars

import (
	"fmt"
	"sort"
)

// Position is a cell on the grid. The origin is the bottom left corner.
type Position struct {
	X, Y int
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Grid is the rectangular surface robots move on, together with the
// scents left behind by robots that fell (or nearly fell) off it.
//
// Width and Height are inclusive upper bounds: a 5x3 grid has cells
// x in [0,5] and y in [0,3]. The scent set only ever grows.
//
// A Grid is shared by every robot of a run and is not safe for
// concurrent use.
type Grid struct {
	width  int
	height int
	scents map[Position]struct{}
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		scents: make(map[Position]struct{}),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// OutOfBounds reports whether p lies outside the grid.
func (g *Grid) OutOfBounds(p Position) bool {
	return p.X < 0 || p.X > g.width || p.Y < 0 || p.Y > g.height
}

// RecordScent marks p so later robots are not lost leaving from it.
func (g *Grid) RecordScent(p Position) {
	g.scents[p] = struct{}{}
}

func (g *Grid) HasScent(p Position) bool {
	_, ok := g.scents[p]
	return ok
}

// Scents returns the recorded scents ordered by y, then x.
func (g *Grid) Scents() []Position {
	out := make([]Position, 0, len(g.scents))
	for p := range g.scents {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
