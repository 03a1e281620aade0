package mars

import "fmt"

// State is a snapshot of a robot: where it is, which way it faces and
// whether it has been lost.
type State struct {
	Position
	Direction Direction
	Lost      bool
}

func (s State) String() string {
	out := fmt.Sprintf("%d %d %s", s.X, s.Y, s.Direction)
	if s.Lost {
		out += " LOST"
	}
	return out
}

// Robot follows instructions on a Grid it shares with other robots.
type Robot struct {
	grid *Grid
	pos  Position
	dir  Direction
	lost bool

	rescues int
}

// NewRobot places a robot on g. A robot placed outside the grid starts
// lost; scents are not consulted here.
func NewRobot(g *Grid, start Position, dir Direction) *Robot {
	return &Robot{
		grid: g,
		pos:  start,
		dir:  dir,
		lost: g.OutOfBounds(start),
	}
}

// ProcessInstructions applies seq in order. Instructions that arrive after
// the robot is lost are still consumed: moves do nothing, turns still turn.
func (r *Robot) ProcessInstructions(seq []Instruction) error {
	for i, in := range seq {
		if err := r.ProcessInstruction(in); err != nil {
			return fmt.Errorf("instruction %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Robot) ProcessInstruction(in Instruction) error {
	switch in {
	case Forward:
		r.MoveForward()
	case Right:
		r.RotateRight()
	case Left:
		r.RotateLeft()
	default:
		return fmt.Errorf("%w %s", ErrInvalidInstruction, in)
	}
	return nil
}

// MoveForward steps one cell in the current direction. A step that would
// leave the grid is not taken: the robot stays on its last cell, is lost
// unless that cell already carries a scent, and leaves a scent there.
func (r *Robot) MoveForward() {
	if r.lost {
		return
	}
	next := r.pos.Add(r.dir.Delta())
	if !r.grid.OutOfBounds(next) {
		r.pos = next
		return
	}
	if r.grid.HasScent(r.pos) {
		r.rescues++
	} else {
		r.lost = true
	}
	r.grid.RecordScent(r.pos)
}

func (r *Robot) RotateLeft() {
	r.dir = r.dir.Left()
}

func (r *Robot) RotateRight() {
	r.dir = r.dir.Right()
}

func (r *Robot) Position() Position   { return r.pos }
func (r *Robot) Direction() Direction { return r.dir }
func (r *Robot) Lost() bool           { return r.lost }

// Rescues counts the moves a scent stopped this robot from falling off.
func (r *Robot) Rescues() int { return r.rescues }

func (r *Robot) State() State {
	return State{Position: r.pos, Direction: r.dir, Lost: r.lost}
}

func (r *Robot) String() string {
	return r.State().String()
}
