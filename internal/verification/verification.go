// Package verification cross-checks decoded instructions against the reference
// CHIP-8 opcode table.
package verification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Vertridge/Chip8Emulator/internal/arch/chip8"
	"github.com/Vertridge/Chip8Emulator/internal/instruction"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// maxLoggedMismatches limits the mismatches that are logged individually.
const maxLoggedMismatches = 10

// ErrMismatch is returned when the decoding differs from the reference table.
var ErrMismatch = errors.New("instruction mismatch")

// reference describes the reference table entry of a word.
type reference struct {
	name   string
	flow   chip8.Flow
	reads  bool
	writes bool
}

type lookupFunc func(word uint16) (reference, bool)

// Result contains the statistics of a verification run.
type Result struct {
	Verified   int             // instructions matching the reference table
	Unverified int             // words unknown to the reference table
	Mismatches int             // instructions differing from the reference table
	Families   set.Set[string] // reference instruction families that were seen
}

// VerifyInstructions checks that every instruction decodes to the same
// instruction family as the reference table. The instructions have to be the
// disassembly of the words, one instruction per word.
func VerifyInstructions(logger *log.Logger, words []uint16, instructions []instruction.Instruction) (Result, error) {
	return verify(logger, words, instructions, lookupReference)
}

func verify(logger *log.Logger, words []uint16, instructions []instruction.Instruction,
	lookup lookupFunc) (Result, error) {

	result := Result{
		Families: set.New[string](),
	}
	if len(words) != len(instructions) {
		return result, fmt.Errorf("mismatched lengths, %d words != %d instructions", len(words), len(instructions))
	}

	for i, ins := range instructions {
		word := words[i]
		ref, ok := lookup(word)
		if !ok {
			result.Unverified++
			logger.Debug("Word not in reference table",
				log.Hex("address", ins.Address()),
				log.Hex("word", word))
			continue
		}
		result.Families.Add(strings.ToUpper(ref.name))

		if problem := compare(ins, ref); problem != "" {
			result.Mismatches++
			if result.Mismatches <= maxLoggedMismatches {
				logger.Error("Instruction mismatch",
					log.Hex("address", ins.Address()),
					log.Hex("word", word),
					log.String("decoded", ins.Opcode().String()),
					log.String("reference", ref.name),
					log.Stringer("reference_flow", ref.flow),
					log.String("problem", problem))
			}
			continue
		}
		result.Verified++
	}

	logger.Debug("Verified instructions",
		log.Int("verified", result.Verified),
		log.Int("unverified", result.Unverified),
		log.Int("families", len(result.Families)))

	if result.Mismatches > 0 {
		return result, fmt.Errorf("%w: %d of %d instructions", ErrMismatch, result.Mismatches, len(instructions))
	}
	return result, nil
}

// compare returns a description of the difference between the instruction
// and its reference entry, or an empty string if they agree. The reference
// table lists memory access per family, so only accesses of the decoded
// opcode that the family lacks are reported.
func compare(ins instruction.Instruction, ref reference) string {
	op := ins.Opcode()
	switch {
	case op == instruction.OpUnknown:
		return "word is a known reference opcode"
	case !strings.EqualFold(op.Mnemonic(), ref.name):
		return "mnemonic differs"
	case decodedFlow(op) != ref.flow:
		return fmt.Sprintf("control flow differs, decoded %s", decodedFlow(op))
	case op.ReadsMemory() && !ref.reads:
		return "memory read not in reference"
	case op.WritesMemory() && !ref.writes:
		return "memory write not in reference"
	default:
		return ""
	}
}

func decodedFlow(op instruction.Opcode) chip8.Flow {
	switch {
	case op.IsSkip():
		return chip8.Skip
	case op.IsCall():
		return chip8.Call
	case op.IsJump():
		return chip8.Jump
	case op.IsReturn():
		return chip8.Return
	default:
		return chip8.Sequential
	}
}

func lookupReference(word uint16) (reference, bool) {
	op, ok := chip8.Lookup(word)
	if !ok {
		return reference{}, false
	}
	ins := op.Instruction()
	return reference{
		name:   ins.Name(),
		flow:   ins.Flow(),
		reads:  op.ReadsMemory(),
		writes: op.WritesMemory(),
	}, true
}
