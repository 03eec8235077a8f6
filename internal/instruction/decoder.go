package instruction

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is returned when no definition matches an instruction word.
var ErrUnknownOpcode = errors.New("unknown opcode")

// DecodeError is returned by the decoder for words that do not encode any opcode.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s 0x%04x", ErrUnknownOpcode, e.Word)
}

// Unwrap allows matching the error with errors.Is against ErrUnknownOpcode.
func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// Decode returns the first definition of the table that matches the word.
// It is safe for concurrent use.
func Decode(word uint16) (Definition, error) {
	for _, def := range definitions {
		if def.Matches(word) {
			return def, nil
		}
	}
	return Definition{}, &DecodeError{Word: word}
}

// DecodeInstruction decodes the word and returns the instruction that
// resides at the given address.
func DecodeInstruction(address, word uint16) (Instruction, error) {
	def, err := Decode(word)
	if err != nil {
		return nil, err
	}
	return New(def, address, word)
}
