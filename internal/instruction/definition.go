package instruction

import "math/bits"

// Operand extraction masks.
const (
	maskAddress = 0x0FFF // nnn
	maskX       = 0x0F00 // x
	maskY       = 0x00F0 // y
	maskByte    = 0x00FF // kk
	maskNibble  = 0x000F // n
)

// Opcode selection masks.
const (
	selectHigh       = 0xF000 // first nibble only
	selectHighLow    = 0xF00F // first and last nibble
	selectHighByte   = 0xF0FF // first nibble and low byte
	selectSystemByte = 0x00FF // low byte of the 0x0 group
)

// Definition describes how an opcode is encoded in a 16 bit instruction word.
// Masks[0] selects the bits that identify the opcode, Masks[1] to Masks[3]
// select the operand fields in the order they appear in the word.
type Definition struct {
	Opcode Opcode
	Value  uint16 // opcode bits after applying Masks[0]
	Fields int    // number of operand fields
	Masks  [4]uint16
}

// definitions is ordered, the first matching entry wins. CLS and RET have to
// precede SYS as every 00xx word also matches the SYS selection mask.
var definitions = [...]Definition{
	{OpCls, 0x00E0, 0, [4]uint16{selectSystemByte}},
	{OpRet, 0x00EE, 0, [4]uint16{selectSystemByte}},
	{OpSys, 0x0000, 1, [4]uint16{selectHigh, maskAddress}},
	{OpJp, 0x1000, 1, [4]uint16{selectHigh, maskAddress}},
	{OpCall, 0x2000, 1, [4]uint16{selectHigh, maskAddress}},
	{OpSeByte, 0x3000, 2, [4]uint16{selectHigh, maskX, maskByte}},
	{OpSneByte, 0x4000, 2, [4]uint16{selectHigh, maskX, maskByte}},
	{OpSeReg, 0x5000, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpLdByte, 0x6000, 2, [4]uint16{selectHigh, maskX, maskByte}},
	{OpAddByte, 0x7000, 2, [4]uint16{selectHigh, maskX, maskByte}},
	{OpLdReg, 0x8000, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpOr, 0x8001, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpAnd, 0x8002, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpXor, 0x8003, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpAddReg, 0x8004, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpSub, 0x8005, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpShr, 0x8006, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpSubn, 0x8007, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpShl, 0x800E, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpSneReg, 0x9000, 2, [4]uint16{selectHighLow, maskX, maskY}},
	{OpLdI, 0xA000, 1, [4]uint16{selectHigh, maskAddress}},
	{OpJpV0, 0xB000, 1, [4]uint16{selectHigh, maskAddress}},
	{OpRnd, 0xC000, 2, [4]uint16{selectHigh, maskX, maskByte}},
	{OpDrw, 0xD000, 3, [4]uint16{selectHigh, maskX, maskY, maskNibble}},
	{OpSkp, 0xE09E, 1, [4]uint16{selectHighByte, maskX}},
	{OpSknp, 0xE0A1, 1, [4]uint16{selectHighByte, maskX}},
	{OpLdDelay, 0xF007, 1, [4]uint16{selectHighByte, maskX}},
	{OpLdKey, 0xF00A, 1, [4]uint16{selectHighByte, maskX}},
	{OpSetDelay, 0xF015, 1, [4]uint16{selectHighByte, maskX}},
	{OpSetSound, 0xF018, 1, [4]uint16{selectHighByte, maskX}},
	{OpAddI, 0xF01E, 1, [4]uint16{selectHighByte, maskX}},
	{OpLdFont, 0xF029, 1, [4]uint16{selectHighByte, maskX}},
	{OpLdBCD, 0xF033, 1, [4]uint16{selectHighByte, maskX}},
	{OpStore, 0xF055, 1, [4]uint16{selectHighByte, maskX}},
	{OpLoad, 0xF065, 1, [4]uint16{selectHighByte, maskX}},
}

// Definitions returns a copy of the definition table in matching order.
func Definitions() []Definition {
	result := make([]Definition, len(definitions))
	copy(result, definitions[:])
	return result
}

// Matches returns whether the word encodes the opcode of this definition.
func (d Definition) Matches(word uint16) bool {
	return word&d.Masks[0] == d.Value
}

// Mnemonic returns the mnemonic of the opcode family.
func (d Definition) Mnemonic() string {
	return d.Opcode.Mnemonic()
}

// Field extracts operand field slot (1-3) from the word. Register nibbles are
// shifted down to their index, byte and address fields are taken as is.
func (d Definition) Field(slot int, word uint16) uint16 {
	if slot < 1 || slot >= len(d.Masks) {
		return 0
	}
	mask := d.Masks[slot]
	if mask == 0 {
		return 0
	}
	return (word & mask) >> bits.TrailingZeros16(mask)
}
