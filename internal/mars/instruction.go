package mars

import (
	"errors"
	"fmt"
)

// ErrInvalidInstruction is returned when a robot is handed an Instruction
// outside the defined set. Parsers never produce one.
var ErrInvalidInstruction = errors.New("invalid instruction")

// Instruction is a single robot command. The zero value is invalid.
type Instruction int

const (
	Forward Instruction = iota + 1
	Left
	Right
)

func (i Instruction) String() string {
	switch i {
	case Forward:
		return "F"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Instruction(%d)", int(i))
}

// InstructionFromSymbol maps F, L or R to its Instruction.
func InstructionFromSymbol(r rune) (Instruction, bool) {
	switch r {
	case 'F':
		return Forward, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	}
	return 0, false
}
