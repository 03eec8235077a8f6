// Package disasm implements the CHIP-8 disassembler.
package disasm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Vertridge/Chip8Emulator/internal/instruction"
	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// wordSize is the size of an instruction in bytes.
const wordSize = 2

// errAddressSpace is returned when the program does not fit the 16 bit address space.
var errAddressSpace = errors.New("program exceeds address space")

// Disasm implements a disassembler for fixed width CHIP-8 instruction words.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
	}
}

// Options returns the options the disassembler was created with.
func (dis *Disasm) Options() options.Disassembler {
	return dis.options
}

// Disassemble decodes every word into an instruction. The i-th word is
// assigned the address base + 2*i, no words are skipped or merged.
func (dis *Disasm) Disassemble(words []uint16) ([]instruction.Instruction, error) {
	base := int(dis.options.BaseAddress)
	if last := base + wordSize*len(words); len(words) > 0 && last-wordSize > 0xFFFF {
		return nil, fmt.Errorf("%w: %d words at 0x%x", errAddressSpace, len(words), base)
	}

	instructions := make([]instruction.Instruction, 0, len(words))
	for i, word := range words {
		address := uint16(base + wordSize*i)

		ins, err := instruction.DecodeInstruction(address, word)
		if err != nil {
			if !dis.options.Lenient || !errors.Is(err, instruction.ErrUnknownOpcode) {
				return nil, fmt.Errorf("disassembling word at 0x%x: %w", address, err)
			}

			dis.logger.Warn("Unknown opcode, emitting data word",
				log.Hex("address", address),
				log.Hex("word", word))
			ins = instruction.NewData(address, word)
		}

		instructions = append(instructions, ins)
	}

	dis.logger.Debug("Disassembled program",
		log.Int("instructions", len(instructions)),
		log.Hex("base", dis.options.BaseAddress))
	return instructions, nil
}

// DisassembleToString disassembles the words and returns the dump of every
// instruction, one newline terminated line each, in program order.
func (dis *Disasm) DisassembleToString(words []uint16) (string, error) {
	instructions, err := dis.Disassemble(words)
	if err != nil {
		return "", err
	}
	return Dump(instructions), nil
}

// Dump renders the instructions as newline terminated lines.
func Dump(instructions []instruction.Instruction) string {
	var sb strings.Builder
	for _, ins := range instructions {
		sb.WriteString(ins.Dump())
		sb.WriteByte('\n')
	}
	return sb.String()
}
