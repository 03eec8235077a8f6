package instruction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Vertridge/Chip8Emulator/internal/cpu"
)

// ErrUnimplementedOpcode is returned by instructions whose behavior is not
// part of the core: the call stack instructions and peripheral access.
var ErrUnimplementedOpcode = errors.New("unimplemented opcode")

// Instruction is a decoded CHIP-8 instruction. The set of implementations
// is closed, every opcode of the definition table has exactly one type.
type Instruction interface {
	// Address returns the memory address the instruction resides at.
	Address() uint16
	// Opcode returns the opcode identity.
	Opcode() Opcode
	// Execute applies the instruction to the machine state.
	Execute(state *cpu.State) error
	// Dump renders the instruction as address prefixed mnemonic text.
	Dump() string

	isInstruction()
}

type base struct {
	address uint16
	opcode  Opcode
}

func (b base) Address() uint16 { return b.address }
func (b base) Opcode() Opcode   { return b.opcode }
func (b base) isInstruction()   {}

// dump joins the address, the mnemonic and the operands.
func (b base) dump(operands ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%x %s", b.address, b.opcode.Mnemonic())
	for _, op := range operands {
		sb.WriteByte(' ')
		sb.WriteString(op)
	}
	return sb.String()
}

func (b base) unimplemented() error {
	return fmt.Errorf("%w: %s at 0x%x", ErrUnimplementedOpcode, b.opcode, b.address)
}

func hex[T uint8 | uint16](value T) string {
	return fmt.Sprintf("0x%x", value)
}

// Operand layouts shared by the instruction types.
type (
	target struct {
		NNN uint16
	}
	register struct {
		X cpu.Register
	}
	registerByte struct {
		X  cpu.Register
		KK uint8
	}
	registerPair struct {
		X, Y cpu.Register
	}
)

// New creates the instruction described by the definition, extracting its
// operands from the word.
func New(def Definition, address, word uint16) (Instruction, error) {
	b := base{address: address, opcode: def.Opcode}
	f1, f2, f3 := def.Field(1, word), def.Field(2, word), def.Field(3, word)

	nnn := target{NNN: f1 & cpu.AddressMask}
	x := register{X: cpu.Register(f1)}
	xkk := registerByte{X: cpu.Register(f1), KK: uint8(f2)}
	xy := registerPair{X: cpu.Register(f1), Y: cpu.Register(f2)}

	switch def.Opcode {
	case OpCls:
		return Cls{base: b}, nil
	case OpRet:
		return Ret{base: b}, nil
	case OpSys:
		return Sys{base: b, target: nnn}, nil
	case OpJp:
		return Jp{base: b, target: nnn}, nil
	case OpCall:
		return Call{base: b, target: nnn}, nil
	case OpSeByte:
		return SeByte{base: b, registerByte: xkk}, nil
	case OpSneByte:
		return SneByte{base: b, registerByte: xkk}, nil
	case OpSeReg:
		return SeReg{base: b, registerPair: xy}, nil
	case OpLdByte:
		return LdByte{base: b, registerByte: xkk}, nil
	case OpAddByte:
		return AddByte{base: b, registerByte: xkk}, nil
	case OpLdReg:
		return LdReg{base: b, registerPair: xy}, nil
	case OpOr:
		return Or{base: b, registerPair: xy}, nil
	case OpAnd:
		return And{base: b, registerPair: xy}, nil
	case OpXor:
		return Xor{base: b, registerPair: xy}, nil
	case OpAddReg:
		return AddReg{base: b, registerPair: xy}, nil
	case OpSub:
		return Sub{base: b, registerPair: xy}, nil
	case OpShr:
		return Shr{base: b, registerPair: xy}, nil
	case OpSubn:
		return Subn{base: b, registerPair: xy}, nil
	case OpShl:
		return Shl{base: b, registerPair: xy}, nil
	case OpSneReg:
		return SneReg{base: b, registerPair: xy}, nil
	case OpLdI:
		return LdI{base: b, target: nnn}, nil
	case OpJpV0:
		return JpV0{base: b, target: nnn}, nil
	case OpRnd:
		return Rnd{base: b, registerByte: xkk}, nil
	case OpDrw:
		return Drw{base: b, registerPair: xy, N: uint8(f3)}, nil
	case OpSkp:
		return Skp{base: b, register: x}, nil
	case OpSknp:
		return Sknp{base: b, register: x}, nil
	case OpLdDelay:
		return LdDelay{base: b, register: x}, nil
	case OpLdKey:
		return LdKey{base: b, register: x}, nil
	case OpSetDelay:
		return SetDelay{base: b, register: x}, nil
	case OpSetSound:
		return SetSound{base: b, register: x}, nil
	case OpAddI:
		return AddI{base: b, register: x}, nil
	case OpLdFont:
		return LdFont{base: b, register: x}, nil
	case OpLdBCD:
		return LdBCD{base: b, register: x}, nil
	case OpStore:
		return Store{base: b, register: x}, nil
	case OpLoad:
		return Load{base: b, register: x}, nil
	default:
		return nil, fmt.Errorf("creating instruction for %s: %w", def.Opcode, &DecodeError{Word: word})
	}
}

var _ Instruction = Data{}

// Data is a placeholder for a word that does not decode to an opcode.
type Data struct {
	base
	Word uint16
}

// NewData returns a placeholder for an undecodable word at the given address.
func NewData(address, word uint16) Data {
	return Data{base: base{address: address, opcode: OpUnknown}, Word: word}
}

// Execute always fails as the word does not encode an instruction.
func (i Data) Execute(*cpu.State) error {
	return fmt.Errorf("executing word at 0x%x: %w", i.address, &DecodeError{Word: i.Word})
}

func (i Data) Dump() string { return i.dump(hex(i.Word)) }
