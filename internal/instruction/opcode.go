// Package instruction implements the CHIP-8 instruction set: the opcode
// definition table, the decoder and the executable instruction values.
package instruction

import "fmt"

// Opcode identifies a concrete CHIP-8 operation. Several opcodes can share
// a mnemonic, for example LD exists in 13 operand forms.
type Opcode uint8

// Opcodes in the order of the definition table.
const (
	OpUnknown Opcode = iota // not a decodable opcode, used by data placeholders

	OpCls      // 00E0 CLS
	OpRet      // 00EE RET
	OpSys      // 0nnn SYS addr
	OpJp       // 1nnn JP addr
	OpCall     // 2nnn CALL addr
	OpSeByte   // 3xkk SE Vx, byte
	OpSneByte  // 4xkk SNE Vx, byte
	OpSeReg    // 5xy0 SE Vx, Vy
	OpLdByte   // 6xkk LD Vx, byte
	OpAddByte  // 7xkk ADD Vx, byte
	OpLdReg    // 8xy0 LD Vx, Vy
	OpOr       // 8xy1 OR Vx, Vy
	OpAnd      // 8xy2 AND Vx, Vy
	OpXor      // 8xy3 XOR Vx, Vy
	OpAddReg   // 8xy4 ADD Vx, Vy
	OpSub      // 8xy5 SUB Vx, Vy
	OpShr      // 8xy6 SHR Vx, Vy
	OpSubn     // 8xy7 SUBN Vx, Vy
	OpShl      // 8xyE SHL Vx, Vy
	OpSneReg   // 9xy0 SNE Vx, Vy
	OpLdI      // Annn LD I, addr
	OpJpV0     // Bnnn JP V0, addr
	OpRnd      // Cxkk RND Vx, byte
	OpDrw      // Dxyn DRW Vx, Vy, nibble
	OpSkp      // Ex9E SKP Vx
	OpSknp     // ExA1 SKNP Vx
	OpLdDelay  // Fx07 LD Vx, DT
	OpLdKey    // Fx0A LD Vx, K
	OpSetDelay // Fx15 LD DT, Vx
	OpSetSound // Fx18 LD ST, Vx
	OpAddI     // Fx1E ADD I, Vx
	OpLdFont   // Fx29 LD F, Vx
	OpLdBCD    // Fx33 LD B, Vx
	OpStore    // Fx55 LD [I], Vx
	OpLoad     // Fx65 LD Vx, [I]

	opcodeCount
)

type opcodeInfo struct {
	mnemonic string
	operands string
}

var opcodeInfos = [opcodeCount]opcodeInfo{
	OpUnknown:  {".word", ""},
	OpCls:      {"CLS", ""},
	OpRet:      {"RET", ""},
	OpSys:      {"SYS", "addr"},
	OpJp:       {"JP", "addr"},
	OpCall:     {"CALL", "addr"},
	OpSeByte:   {"SE", "Vx, byte"},
	OpSneByte:  {"SNE", "Vx, byte"},
	OpSeReg:    {"SE", "Vx, Vy"},
	OpLdByte:   {"LD", "Vx, byte"},
	OpAddByte:  {"ADD", "Vx, byte"},
	OpLdReg:    {"LD", "Vx, Vy"},
	OpOr:       {"OR", "Vx, Vy"},
	OpAnd:      {"AND", "Vx, Vy"},
	OpXor:      {"XOR", "Vx, Vy"},
	OpAddReg:   {"ADD", "Vx, Vy"},
	OpSub:      {"SUB", "Vx, Vy"},
	OpShr:      {"SHR", "Vx, Vy"},
	OpSubn:     {"SUBN", "Vx, Vy"},
	OpShl:      {"SHL", "Vx, Vy"},
	OpSneReg:   {"SNE", "Vx, Vy"},
	OpLdI:      {"LD", "I, addr"},
	OpJpV0:     {"JP", "V0, addr"},
	OpRnd:      {"RND", "Vx, byte"},
	OpDrw:      {"DRW", "Vx, Vy, nibble"},
	OpSkp:      {"SKP", "Vx"},
	OpSknp:     {"SKNP", "Vx"},
	OpLdDelay:  {"LD", "Vx, DT"},
	OpLdKey:    {"LD", "Vx, K"},
	OpSetDelay: {"LD", "DT, Vx"},
	OpSetSound: {"LD", "ST, Vx"},
	OpAddI:     {"ADD", "I, Vx"},
	OpLdFont:   {"LD", "F, Vx"},
	OpLdBCD:    {"LD", "B, Vx"},
	OpStore:    {"LD", "[I], Vx"},
	OpLoad:     {"LD", "Vx, [I]"},
}

// Mnemonic returns the mnemonic of the opcode family, for example "LD".
func (o Opcode) Mnemonic() string {
	if o >= opcodeCount {
		return ""
	}
	return opcodeInfos[o].mnemonic
}

// String returns the mnemonic together with the operand form, for example "LD Vx, byte".
func (o Opcode) String() string {
	if o >= opcodeCount {
		return fmt.Sprintf("Opcode(%d)", uint8(o))
	}
	info := opcodeInfos[o]
	if info.operands == "" {
		return info.mnemonic
	}
	return info.mnemonic + " " + info.operands
}

// IsSkip returns whether the opcode conditionally skips the next instruction.
func (o Opcode) IsSkip() bool {
	switch o {
	case OpSeByte, OpSneByte, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	default:
		return false
	}
}

// IsJump returns whether the opcode unconditionally transfers control.
func (o Opcode) IsJump() bool {
	return o == OpJp || o == OpJpV0
}

// IsCall returns whether the opcode calls a CHIP-8 subroutine. SYS calls
// machine code and is not included.
func (o Opcode) IsCall() bool {
	return o == OpCall
}

// IsReturn returns whether the opcode returns from a subroutine.
func (o Opcode) IsReturn() bool {
	return o == OpRet
}

// ReadsMemory returns whether the opcode reads memory at I.
func (o Opcode) ReadsMemory() bool {
	return o == OpLoad || o == OpDrw
}

// WritesMemory returns whether the opcode writes memory at I.
func (o Opcode) WritesMemory() bool {
	return o == OpStore || o == OpLdBCD
}
