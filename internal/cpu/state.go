package cpu

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// AddressMask limits the address register to the 12 bit address space.
const AddressMask = 0x0FFF

var (
	// ErrWideRegister is returned when a 16 bit register is requested through the 8 bit accessor.
	ErrWideRegister = errors.New("register is 16 bits wide")
	// ErrNarrowRegister is returned when an 8 bit register is requested through the 16 bit accessor.
	ErrNarrowRegister = errors.New("register is not 16 bits wide")
	// ErrUnknownRegister is returned for register values that do not name a register.
	ErrUnknownRegister = errors.New("unknown register")
)

// State is the complete CHIP-8 machine state of an emulation session.
// It is owned by a single caller and not safe for concurrent use.
type State struct {
	V  [16]uint8 // general purpose registers V0-VF
	I  uint16    // address register
	DT uint8     // delay timer, decremented by an external peripheral layer
	ST uint8     // sound timer, decremented by an external peripheral layer
	PC uint16    // program counter
	SP uint8     // stack pointer, no push or pop is implemented

	Memory *Memory

	// RandomByte is the random source of the RND instruction.
	RandomByte func() uint8
}

// New returns a new machine state with zeroed registers and memory.
func New() *State {
	return &State{
		Memory:     NewMemory(),
		RandomByte: randomByte,
	}
}

// Register returns the cell of an 8 bit register. The 16 bit registers
// I and PC have to be accessed through Register16.
func (s *State) Register(r Register) (*uint8, error) {
	switch {
	case r.IsGeneral():
		return &s.V[r], nil
	case r == DT:
		return &s.DT, nil
	case r == ST:
		return &s.ST, nil
	case r == SP:
		return &s.SP, nil
	case r.IsWide():
		return nil, fmt.Errorf("%w: %s", ErrWideRegister, r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegister, uint8(r))
	}
}

// Register16 returns the cell of a 16 bit register.
func (s *State) Register16(r Register) (*uint16, error) {
	switch r {
	case I:
		return &s.I, nil
	case PC:
		return &s.PC, nil
	}
	if r.IsGeneral() || r == DT || r == ST || r == SP {
		return nil, fmt.Errorf("%w: %s", ErrNarrowRegister, r)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownRegister, uint8(r))
}

// Random returns the next byte of the random source.
func (s *State) Random() uint8 {
	if s.RandomByte == nil {
		return randomByte()
	}
	return s.RandomByte()
}

func randomByte() uint8 {
	return uint8(rand.UintN(256))
}
