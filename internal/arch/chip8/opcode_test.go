package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpcode_Matches(t *testing.T) {
	opcode := Opcode{op: chip8.Opcode{
		Info:        chip8.OpcodeInfo{Mask: 0xF000, Value: 0x1000},
		Instruction: chip8.Jp,
	}}

	assert.True(t, opcode.matches(0x1ABC))
	assert.False(t, opcode.matches(0x2ABC))

	opcode.op.Instruction = nil
	assert.False(t, opcode.matches(0x1ABC))
}

func TestOpcode_MemoryAccess(t *testing.T) {
	tests := []struct {
		name        string
		instruction *chip8.Instruction
		reads       bool
		writes      bool
	}{
		{"nil", nil, false, false},
		{"LD", chip8.Ld, true, true},
		{"DRW", chip8.Drw, true, false},
		{"JP", chip8.Jp, false, false},
		{"ADD", chip8.Add, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opcode := Opcode{op: chip8.Opcode{Instruction: tt.instruction}}
			assert.Equal(t, tt.reads, opcode.ReadsMemory())
			assert.Equal(t, tt.writes, opcode.WritesMemory())
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word     uint16
		expected *chip8.Instruction
		flow     Flow
	}{
		{0x00E0, chip8.Cls, Sequential},
		{0x00EE, chip8.Ret, Return},
		{0x1ABC, chip8.Jp, Jump},
		{0x2ABC, chip8.Call, Call},
		{0x3A12, chip8.Se, Skip},
		{0x4A12, chip8.Sne, Skip},
		{0x6A12, chip8.Ld, Sequential},
		{0x7A12, chip8.Add, Sequential},
		{0x8AB1, chip8.Or, Sequential},
		{0x8AB4, chip8.Add, Sequential},
		{0x8AB7, chip8.Subn, Sequential},
		{0x8ABE, chip8.Shl, Sequential},
		{0xA123, chip8.Ld, Sequential},
		{0xCA12, chip8.Rnd, Sequential},
		{0xDAB5, chip8.Drw, Sequential},
		{0xEA9E, chip8.Skp, Skip},
		{0xEAA1, chip8.Sknp, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.expected.Name, func(t *testing.T) {
			op, ok := Lookup(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.expected.Name, op.Instruction().Name())
			assert.Equal(t, tt.flow, op.Instruction().Flow())
			assert.Equal(t, op.Value(), tt.word&op.Mask())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup(0xFFFF)
	assert.False(t, ok)

	_, ok = Lookup(0x8AB8)
	assert.False(t, ok)
}

func TestOpcodes_AllNibbles(t *testing.T) {
	for nibble := range 16 {
		opcodes := chip8.Opcodes[nibble]
		assert.NotEmpty(t, opcodes, "expected opcodes for nibble %X", nibble)

		for _, op := range opcodes {
			opcode := Opcode{op: op}
			assert.False(t, opcode.Instruction().IsNil())
			assert.NotEmpty(t, opcode.Instruction().Name())
		}
	}
}
