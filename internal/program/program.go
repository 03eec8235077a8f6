// Package program represents a loaded CHIP-8 program.
package program

import (
	"hash/crc32"

	"github.com/Vertridge/Chip8Emulator/internal/instruction"
)

// Offset defines the content of a word slot in a program that can represent data or code.
type Offset struct {
	Address uint16
	Word    uint16

	Type OffsetType

	Label string // name of label or subroutine if identified as a jump destination
	Code  string // dump of the instruction at this offset
}

// Program defines a CHIP-8 program image and its disassembly.
type Program struct {
	Name        string   // file name the program was loaded from
	Data        []byte   // raw image as read from disk
	Words       []uint16 // instruction words in machine byte order
	BaseAddress uint16   // address of the first word
	Checksum    uint32   // CRC32 of Data

	Instructions []instruction.Instruction
	Offsets      []*Offset
}

// New creates a new program from a raw image and its instruction words.
func New(name string, data []byte, words []uint16, baseAddress uint16) *Program {
	crc32q := crc32.MakeTable(crc32.IEEE)
	return &Program{
		Name:        name,
		Data:        data,
		Words:       words,
		BaseAddress: baseAddress,
		Checksum:    crc32.Checksum(data, crc32q),
	}
}

// SetInstructions stores the disassembly of the program words and creates an
// offset for every instruction. Offsets whose address has an entry in labels
// are marked as jump destinations.
func (p *Program) SetInstructions(instructions []instruction.Instruction, labels map[uint16]string) {
	p.Instructions = instructions
	p.Offsets = make([]*Offset, 0, len(instructions))

	for i, ins := range instructions {
		offset := &Offset{
			Address: ins.Address(),
			Code:    ins.Dump(),
		}
		if i < len(p.Words) {
			offset.Word = p.Words[i]
		}

		if ins.Opcode() == instruction.OpUnknown {
			offset.SetType(DataOffset)
		} else {
			offset.SetType(CodeOffset)
		}

		if label, ok := labels[offset.Address]; ok {
			offset.Label = label
			offset.SetType(JumpDestination)
		}

		p.Offsets = append(p.Offsets, offset)
	}
}

// OffsetInfo returns the offset of the given address or nil if the address
// is not the start of a word of the program.
func (p *Program) OffsetInfo(address uint16) *Offset {
	if address < p.BaseAddress || (address-p.BaseAddress)%2 != 0 {
		return nil
	}
	index := int(address-p.BaseAddress) / 2
	if index >= len(p.Offsets) {
		return nil
	}
	return p.Offsets[index]
}
