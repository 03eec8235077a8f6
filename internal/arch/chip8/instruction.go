package chip8

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Flow classifies how an instruction family changes the program counter.
type Flow uint8

// Control flow classes.
const (
	Sequential Flow = iota // continues with the next word
	Jump                   // unconditional transfer
	Call                   // subroutine call
	Return                 // subroutine return
	Skip                   // conditional skip of the next word
)

var flowNames = [...]string{
	Sequential: "sequential",
	Jump:       "jump",
	Call:       "call",
	Return:     "return",
	Skip:       "skip",
}

func (f Flow) String() string {
	if int(f) >= len(flowNames) {
		return "invalid"
	}
	return flowNames[f]
}

// Instruction is an instruction family of the reference table.
type Instruction struct {
	ins *chip8.Instruction
}

// IsNil reports whether the reference opcode has no instruction assigned.
func (i Instruction) IsNil() bool {
	return i.ins == nil
}

// Name returns the family name in the casing of the reference table.
func (i Instruction) Name() string {
	if i.IsNil() {
		return ""
	}
	return i.ins.Name
}

// Flow returns the control flow class of the family.
func (i Instruction) Flow() Flow {
	switch {
	case i.IsNil():
		return Sequential
	case i.ins == chip8.Jp:
		return Jump
	case i.ins == chip8.Call:
		return Call
	case i.ins == chip8.Ret:
		return Return
	case chip8.SkipInstructions.Contains(i.ins.Name):
		return Skip
	default:
		return Sequential
	}
}
