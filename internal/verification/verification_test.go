package verification

import (
	"errors"
	"testing"

	"github.com/Vertridge/Chip8Emulator/internal/arch/chip8"
	"github.com/Vertridge/Chip8Emulator/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func disassemble(t *testing.T, words []uint16) []instruction.Instruction {
	t.Helper()
	instructions := make([]instruction.Instruction, 0, len(words))
	for i, word := range words {
		address := uint16(0x200 + 2*i)
		ins, err := instruction.DecodeInstruction(address, word)
		if err != nil {
			ins = instruction.NewData(address, word)
		}
		instructions = append(instructions, ins)
	}
	return instructions
}

func fixedLookup(table map[uint16]reference) lookupFunc {
	return func(word uint16) (reference, bool) {
		ref, ok := table[word]
		return ref, ok
	}
}

func TestVerify(t *testing.T) {
	words := []uint16{0x00E0, 0x610F, 0x3105, 0x2300, 0xF255, 0x0123}
	lookup := fixedLookup(map[uint16]reference{
		0x00E0: {name: "cls"},
		0x610F: {name: "ld", reads: true, writes: true},
		0x3105: {name: "se", flow: chip8.Skip},
		0x2300: {name: "call", flow: chip8.Call},
		0xF255: {name: "ld", reads: true, writes: true},
	})

	result, err := verify(log.NewTestLogger(t), words, disassemble(t, words), lookup)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.Verified)
	assert.Equal(t, 1, result.Unverified)
	assert.Equal(t, 0, result.Mismatches)
	assert.True(t, result.Families.Contains("SE"))
	assert.Len(t, result.Families, 4)
}

func TestVerify_Mismatch(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		ref  reference
	}{
		{"mnemonic", 0x8124, reference{name: "sub"}},
		{"skip classification", 0x3105, reference{name: "se"}},
		{"call classification", 0x2ABC, reference{name: "call", flow: chip8.Jump}},
		{"jump classification", 0x1ABC, reference{name: "jp"}},
		{"indexed jump classification", 0xB123, reference{name: "jp", flow: chip8.Call}},
		{"return classification", 0x00EE, reference{name: "ret", flow: chip8.Sequential}},
		{"block load reads", 0xF365, reference{name: "ld", writes: true}},
		{"block store writes", 0xF355, reference{name: "ld", reads: true}},
		{"bcd writes", 0xF333, reference{name: "ld", reads: true}},
		{"unknown word", 0xFFFF, reference{name: "ld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := []uint16{tt.word}
			lookup := fixedLookup(map[uint16]reference{tt.word: tt.ref})

			result, err := verify(log.NewTestLogger(t), words, disassemble(t, words), lookup)
			assert.True(t, errors.Is(err, ErrMismatch))
			assert.Equal(t, 1, result.Mismatches)
			assert.Equal(t, 0, result.Verified)
		})
	}
}

func TestVerify_LengthMismatch(t *testing.T) {
	_, err := verify(log.NewTestLogger(t), []uint16{0x00E0}, nil, fixedLookup(nil))
	assert.ErrorContains(t, err, "mismatched lengths")
}

func TestVerifyInstructions_ReferenceTable(t *testing.T) {
	words := []uint16{
		0x00E0, 0x00EE, 0x1ABC, 0x2ABC, 0x3A12, 0x4A12, 0x5AB0, 0x6A12,
		0x7A12, 0x8AB0, 0x8AB1, 0x8AB2, 0x8AB3, 0x8AB4, 0x8AB5, 0x8AB6,
		0x8AB7, 0x8ABE, 0x9AB0, 0xA123, 0xB123, 0xCA12, 0xDAB5, 0xEA9E,
		0xEAA1, 0xFA07, 0xFA0A, 0xFA15, 0xFA18, 0xFA1E, 0xFA29, 0xFA33,
		0xFA55, 0xFA65,
	}

	result, err := VerifyInstructions(log.NewTestLogger(t), words, disassemble(t, words))
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Mismatches)
	assert.Equal(t, len(words), result.Verified+result.Unverified)
}

func TestDecodedFlow(t *testing.T) {
	tests := []struct {
		op       instruction.Opcode
		expected chip8.Flow
	}{
		{instruction.OpJp, chip8.Jump},
		{instruction.OpJpV0, chip8.Jump},
		{instruction.OpCall, chip8.Call},
		{instruction.OpSys, chip8.Sequential},
		{instruction.OpRet, chip8.Return},
		{instruction.OpSkp, chip8.Skip},
		{instruction.OpSneReg, chip8.Skip},
		{instruction.OpStore, chip8.Sequential},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, decodedFlow(tt.op))
		})
	}
}

func TestLookupReference(t *testing.T) {
	ref, ok := lookupReference(0xFA55)
	assert.True(t, ok)
	assert.True(t, ref.writes)
	assert.Equal(t, chip8.Sequential, ref.flow)

	ref, ok = lookupReference(0x2ABC)
	assert.True(t, ok)
	assert.Equal(t, chip8.Call, ref.flow)

	ref, ok = lookupReference(0xEA9E)
	assert.True(t, ok)
	assert.Equal(t, chip8.Skip, ref.flow)

	_, ok = lookupReference(0xFFFF)
	assert.False(t, ok)
}
