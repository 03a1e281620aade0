package mission

import (
	"bufio"
	"fmt"
	"io"

	"martianrobots/internal/mars"
)

// Render draws the grid with its scents and the robot, top row first.
// '.' is an empty cell, '*' a scent, the robot shows its heading, or 'X'
// once it is lost.
func Render(w io.Writer, g *mars.Grid, r *mars.Robot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Grid %dx%d\n", g.Width(), g.Height())
	for y := g.Height(); y >= 0; y-- {
		for x := 0; x <= g.Width(); x++ {
			p := mars.Position{X: x, Y: y}
			switch {
			case r != nil && r.Position() == p && r.Lost():
				bw.WriteString("X ")
			case r != nil && r.Position() == p:
				bw.WriteString(r.Direction().String() + " ")
			case g.HasScent(p):
				bw.WriteString("* ")
			default:
				bw.WriteString(". ")
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
