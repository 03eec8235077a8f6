package cpu

import "fmt"

// Register identifies a register of the CHIP-8 register file.
// The values 0x0-0xF map directly to the general purpose registers V0-VF.
type Register uint8

// General purpose registers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF // flags register, overwritten by arithmetic and shift instructions
)

// Special purpose registers.
const (
	DT Register = 0x10 + iota // delay timer
	ST                        // sound timer
	SP                        // stack pointer
	I                         // 16 bit address register
	PC                        // 16 bit program counter
)

// IsGeneral returns whether the register is one of V0-VF.
func (r Register) IsGeneral() bool {
	return r <= VF
}

// IsWide returns whether the register is 16 bits wide.
func (r Register) IsWide() bool {
	return r == I || r == PC
}

func (r Register) String() string {
	switch {
	case r.IsGeneral():
		return fmt.Sprintf("V%X", uint8(r))
	case r == DT:
		return "VDelay"
	case r == ST:
		return "VSound"
	case r == SP:
		return "SP"
	case r == I:
		return "I"
	case r == PC:
		return "PC"
	default:
		return fmt.Sprintf("Register(%d)", uint8(r))
	}
}
