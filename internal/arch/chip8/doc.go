// Package chip8 bridges the CHIP-8 reference opcode table of retrogolib.
//
// The reference table groups the opcodes by their high nibble and is
// maintained independently of the decoder of this repository. It is used to
// cross-check decoded instructions: every word that the reference table knows
// must resolve to an instruction of the same family.
//
// # Lookup
//
// Lookup scans the opcodes of the high nibble of a word in table order and
// returns the first opcode whose mask and value match:
//
//	op, ok := chip8.Lookup(0x8124)
//	if ok {
//		fmt.Println(op.Instruction().Name())
//	}
//
// # Limitations
//
//   - SYS (0nnn) is not part of every reference table, words without a match
//     are reported as unknown by Lookup
//   - instruction names use the casing of the reference table
package chip8
