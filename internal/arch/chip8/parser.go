package chip8

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Lookup returns the first reference opcode of the word's high nibble group
// that matches the word.
func Lookup(word uint16) (Opcode, bool) {
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if opcode := (Opcode{op: op}); opcode.matches(word) {
			return opcode, true
		}
	}
	return Opcode{}, false
}
