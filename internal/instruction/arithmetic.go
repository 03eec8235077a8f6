package instruction

import "github.com/Vertridge/Chip8Emulator/internal/cpu"

// Compile-time checks to ensure all arithmetic types implement Instruction.
var (
	_ Instruction = AddByte{}
	_ Instruction = AddReg{}
	_ Instruction = AddI{}
	_ Instruction = Or{}
	_ Instruction = And{}
	_ Instruction = Xor{}
	_ Instruction = Sub{}
	_ Instruction = Subn{}
	_ Instruction = Shr{}
	_ Instruction = Shl{}
	_ Instruction = Rnd{}
)

// Flag results written to VF. Operands are read before VF is written and
// the result is written last, so Vx wins when x is VF.

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}

// AddByte adds the constant to Vx without touching VF.
type AddByte struct {
	base
	registerByte
}

func (i AddByte) Execute(state *cpu.State) error {
	state.V[i.X] += i.KK
	return nil
}

func (i AddByte) Dump() string { return i.dump(i.X.String(), hex(i.KK)) }

// AddReg adds Vy to Vx, VF is set on carry.
type AddReg struct {
	base
	registerPair
}

func (i AddReg) Execute(state *cpu.State) error {
	sum := uint16(state.V[i.X]) + uint16(state.V[i.Y])
	state.V[cpu.VF] = flag(sum > 0xFF)
	state.V[i.X] = uint8(sum)
	return nil
}

func (i AddReg) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// AddI adds Vx to the address register. The result is not masked.
type AddI struct {
	base
	register
}

func (i AddI) Execute(state *cpu.State) error {
	state.I += uint16(state.V[i.X])
	return nil
}

func (i AddI) Dump() string { return i.dump(cpu.I.String(), i.X.String()) }

// Or sets Vx to Vx OR Vy.
type Or struct {
	base
	registerPair
}

func (i Or) Execute(state *cpu.State) error {
	state.V[i.X] |= state.V[i.Y]
	return nil
}

func (i Or) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// And sets Vx to Vx AND Vy.
type And struct {
	base
	registerPair
}

func (i And) Execute(state *cpu.State) error {
	state.V[i.X] &= state.V[i.Y]
	return nil
}

func (i And) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// Xor sets Vx to Vx XOR Vy.
type Xor struct {
	base
	registerPair
}

func (i Xor) Execute(state *cpu.State) error {
	state.V[i.X] ^= state.V[i.Y]
	return nil
}

func (i Xor) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// Sub subtracts Vy from Vx, VF is set if Vx is greater than Vy.
type Sub struct {
	base
	registerPair
}

func (i Sub) Execute(state *cpu.State) error {
	x, y := state.V[i.X], state.V[i.Y]
	state.V[cpu.VF] = flag(x > y)
	state.V[i.X] = x - y
	return nil
}

func (i Sub) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// Subn subtracts Vy from Vx, VF is set if Vx is less than Vy.
type Subn struct {
	base
	registerPair
}

func (i Subn) Execute(state *cpu.State) error {
	x, y := state.V[i.X], state.V[i.Y]
	state.V[cpu.VF] = flag(x < y)
	state.V[i.X] = x - y
	return nil
}

func (i Subn) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// Shr shifts Vx right by one, VF receives the bit shifted out. Vy is not used.
type Shr struct {
	base
	registerPair
}

func (i Shr) Execute(state *cpu.State) error {
	x := state.V[i.X]
	state.V[cpu.VF] = x & 1
	state.V[i.X] = x >> 1
	return nil
}

func (i Shr) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// Shl shifts Vx left by one, VF receives the bit shifted out. Vy is not used.
type Shl struct {
	base
	registerPair
}

func (i Shl) Execute(state *cpu.State) error {
	x := state.V[i.X]
	state.V[cpu.VF] = x >> 7 & 1
	state.V[i.X] = x << 1
	return nil
}

func (i Shl) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// Rnd sets Vx to a random byte masked with the constant.
type Rnd struct {
	base
	registerByte
}

func (i Rnd) Execute(state *cpu.State) error {
	state.V[i.X] = state.Random() & i.KK
	return nil
}

func (i Rnd) Dump() string { return i.dump(i.X.String(), hex(i.KK)) }
