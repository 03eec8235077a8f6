package chip8

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Opcode is a reference table entry: a mask/value pair and its instruction family.
type Opcode struct {
	op chip8.Opcode
}

// Mask returns the bits of a word that select the opcode.
func (o Opcode) Mask() uint16 {
	return o.op.Info.Mask
}

// Value returns the expected bits after masking.
func (o Opcode) Value() uint16 {
	return o.op.Info.Value
}

// Instruction returns the instruction family of the opcode.
func (o Opcode) Instruction() Instruction {
	return Instruction{ins: o.op.Instruction}
}

// ReadsMemory reports whether the family is listed as reading memory.
// The reference table classifies whole families, so every LD form reads.
func (o Opcode) ReadsMemory() bool {
	return !o.Instruction().IsNil() && chip8.MemoryReadInstructions.Contains(o.op.Instruction.Name)
}

// WritesMemory reports whether the family is listed as writing memory.
func (o Opcode) WritesMemory() bool {
	return !o.Instruction().IsNil() && chip8.MemoryWriteInstructions.Contains(o.op.Instruction.Name)
}

func (o Opcode) matches(word uint16) bool {
	return word&o.Mask() == o.Value() && !o.Instruction().IsNil()
}
