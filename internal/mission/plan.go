package mission

import (
	"github.com/alecthomas/participle/v2"

	"martianrobots/internal/mars"
)

// Limits bound what the parser accepts. Zero means no limit.
type Limits struct {
	MaxCoordinate   int
	MaxInstructions int
}

// Plan is a validated mission, ready to run.
type Plan struct {
	Width  int
	Height int
	Orders []Order
}

// Order is one robot: where it starts and what it is told to do.
type Order struct {
	Start   mars.Position
	Heading mars.Direction
	Program []mars.Instruction
}

// Plan validates the document and converts it to the core types.
func (d *Document) Plan(limits Limits) (*Plan, error) {
	if err := d.Size.check(limits); err != nil {
		return nil, err
	}
	p := &Plan{Width: int(d.Size.Width), Height: int(d.Size.Height)}
	for _, spec := range d.Robots {
		var o Order
		if err := spec.Pose.resolve(&o, limits); err != nil {
			return nil, err
		}
		if err := spec.Commands.resolve(&o, limits); err != nil {
			return nil, err
		}
		p.Orders = append(p.Orders, o)
	}
	return p, nil
}

func (s *Size) check(limits Limits) error {
	if limits.MaxCoordinate > 0 && (int(s.Width) > limits.MaxCoordinate || int(s.Height) > limits.MaxCoordinate) {
		return participle.Errorf(s.Pos, "grid %d x %d exceeds the maximum coordinate %d", s.Width, s.Height, limits.MaxCoordinate)
	}
	return nil
}

func (p *Pose) resolve(o *Order, limits Limits) error {
	if limits.MaxCoordinate > 0 && (int(p.X) > limits.MaxCoordinate || int(p.Y) > limits.MaxCoordinate) {
		return participle.Errorf(p.Pos, "position %d %d exceeds the maximum coordinate %d", p.X, p.Y, limits.MaxCoordinate)
	}
	runes := []rune(p.Heading)
	if len(runes) != 1 {
		return participle.Errorf(p.Pos, "invalid direction %q, expected one of N, S, E, W", p.Heading)
	}
	dir, ok := mars.DirectionFromSymbol(runes[0])
	if !ok {
		return participle.Errorf(p.Pos, "invalid direction %q, expected one of N, S, E, W", p.Heading)
	}
	o.Start = mars.Position{X: int(p.X), Y: int(p.Y)}
	o.Heading = dir
	return nil
}

func (c *Commands) resolve(o *Order, limits Limits) error {
	runes := []rune(c.Text)
	if limits.MaxInstructions > 0 && len(runes) > limits.MaxInstructions {
		return participle.Errorf(c.Pos, "%d instructions exceed the maximum of %d", len(runes), limits.MaxInstructions)
	}
	prog := make([]mars.Instruction, 0, len(runes))
	for i, r := range c.Text {
		in, ok := mars.InstructionFromSymbol(r)
		if !ok {
			pos := c.Pos
			pos.Column += i
			pos.Offset += i
			return participle.Errorf(pos, "invalid instruction %q, expected one of F, L, R", r)
		}
		prog = append(prog, in)
	}
	o.Program = prog
	return nil
}
