package mars

import "fmt"

// Direction is a compass heading. The constants are declared in
// clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Delta returns the unit vector for one step in direction d.
func (d Direction) Delta() Position {
	switch d {
	case North:
		return Position{0, 1}
	case East:
		return Position{1, 0}
	case South:
		return Position{0, -1}
	case West:
		return Position{-1, 0}
	}
	panic(fmt.Sprintf("mars: invalid direction %d", int(d)))
}

// Right returns the heading after a quarter turn clockwise.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(fmt.Sprintf("mars: invalid direction %d", int(d)))
}

// Left returns the heading after a quarter turn anticlockwise.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	panic(fmt.Sprintf("mars: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionFromSymbol maps N, E, S or W to its Direction.
func DirectionFromSymbol(r rune) (Direction, bool) {
	switch r {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	}
	return 0, false
}
