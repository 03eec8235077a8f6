package instruction

import "github.com/Vertridge/Chip8Emulator/internal/cpu"

// Skips advance the program counter by one word slot. The fetch loop that
// drives the core is responsible for advancing past the fetched instruction.
const skipSlots = 1

// Compile-time checks to ensure all control flow types implement Instruction.
var (
	_ Instruction = Cls{}
	_ Instruction = Ret{}
	_ Instruction = Sys{}
	_ Instruction = Jp{}
	_ Instruction = JpV0{}
	_ Instruction = Call{}
	_ Instruction = SeByte{}
	_ Instruction = SneByte{}
	_ Instruction = SeReg{}
	_ Instruction = SneReg{}
)

// Cls clears the display. The display is not part of the core.
type Cls struct{ base }

func (i Cls) Execute(*cpu.State) error { return nil }
func (i Cls) Dump() string             { return i.dump() }

// Ret returns from a subroutine.
type Ret struct{ base }

// Execute fails, the call stack is not implemented.
func (i Ret) Execute(*cpu.State) error { return i.unimplemented() }
func (i Ret) Dump() string             { return i.dump() }

// Sys calls a machine code routine of the host.
type Sys struct {
	base
	target
}

// Execute fails, host routines do not exist in the emulated machine.
func (i Sys) Execute(*cpu.State) error { return i.unimplemented() }
func (i Sys) Dump() string             { return i.dump(hex(i.NNN)) }

// Jp jumps to the target address.
type Jp struct {
	base
	target
}

func (i Jp) Execute(state *cpu.State) error {
	state.PC = i.NNN
	return nil
}

func (i Jp) Dump() string { return i.dump(hex(i.NNN)) }

// JpV0 jumps to the target address plus V0.
type JpV0 struct {
	base
	target
}

func (i JpV0) Execute(state *cpu.State) error {
	state.PC = i.NNN + uint16(state.V[cpu.V0])
	return nil
}

func (i JpV0) Dump() string { return i.dump(cpu.V0.String(), hex(i.NNN)) }

// Call calls the subroutine at the target address.
type Call struct {
	base
	target
}

// Execute fails, the call stack is not implemented.
func (i Call) Execute(*cpu.State) error { return i.unimplemented() }
func (i Call) Dump() string             { return i.dump(hex(i.NNN)) }

// SeByte skips the next instruction if Vx equals the constant.
type SeByte struct {
	base
	registerByte
}

func (i SeByte) Execute(state *cpu.State) error {
	if state.V[i.X] == i.KK {
		state.PC += skipSlots
	}
	return nil
}

func (i SeByte) Dump() string { return i.dump(i.X.String(), hex(i.KK)) }

// SneByte skips the next instruction if Vx does not equal the constant.
type SneByte struct {
	base
	registerByte
}

func (i SneByte) Execute(state *cpu.State) error {
	if state.V[i.X] != i.KK {
		state.PC += skipSlots
	}
	return nil
}

func (i SneByte) Dump() string { return i.dump(i.X.String(), hex(i.KK)) }

// SeReg skips the next instruction if Vx equals Vy.
type SeReg struct {
	base
	registerPair
}

func (i SeReg) Execute(state *cpu.State) error {
	if state.V[i.X] == state.V[i.Y] {
		state.PC += skipSlots
	}
	return nil
}

func (i SeReg) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// SneReg skips the next instruction if Vx does not equal Vy.
type SneReg struct {
	base
	registerPair
}

func (i SneReg) Execute(state *cpu.State) error {
	if state.V[i.X] != state.V[i.Y] {
		state.PC += skipSlots
	}
	return nil
}

func (i SneReg) Dump() string { return i.dump(i.X.String(), i.Y.String()) }
