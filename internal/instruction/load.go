package instruction

import "github.com/Vertridge/Chip8Emulator/internal/cpu"

// fontGlyphSize is the size in bytes of a hexadecimal digit sprite of the
// built-in interpreter font.
const fontGlyphSize = 5

// Compile-time checks to ensure all load types implement Instruction.
var (
	_ Instruction = LdByte{}
	_ Instruction = LdReg{}
	_ Instruction = LdI{}
	_ Instruction = LdDelay{}
	_ Instruction = SetDelay{}
	_ Instruction = SetSound{}
	_ Instruction = LdFont{}
	_ Instruction = LdBCD{}
	_ Instruction = Store{}
	_ Instruction = Load{}
)

// LdByte loads the constant into Vx.
type LdByte struct {
	base
	registerByte
}

func (i LdByte) Execute(state *cpu.State) error {
	state.V[i.X] = i.KK
	return nil
}

func (i LdByte) Dump() string { return i.dump(i.X.String(), hex(i.KK)) }

// LdReg copies Vy into Vx.
type LdReg struct {
	base
	registerPair
}

func (i LdReg) Execute(state *cpu.State) error {
	state.V[i.X] = state.V[i.Y]
	return nil
}

func (i LdReg) Dump() string { return i.dump(i.X.String(), i.Y.String()) }

// LdI loads the address into the address register.
type LdI struct {
	base
	target
}

func (i LdI) Execute(state *cpu.State) error {
	state.I = i.NNN & cpu.AddressMask
	return nil
}

func (i LdI) Dump() string { return i.dump(cpu.I.String(), hex(i.NNN)) }

// LdDelay copies the delay timer into Vx.
type LdDelay struct {
	base
	register
}

func (i LdDelay) Execute(state *cpu.State) error {
	state.V[i.X] = state.DT
	return nil
}

func (i LdDelay) Dump() string { return i.dump(i.X.String(), cpu.DT.String()) }

// SetDelay copies Vx into the delay timer.
type SetDelay struct {
	base
	register
}

func (i SetDelay) Execute(state *cpu.State) error {
	state.DT = state.V[i.X]
	return nil
}

func (i SetDelay) Dump() string { return i.dump(cpu.DT.String(), i.X.String()) }

// SetSound copies Vx into the sound timer.
type SetSound struct {
	base
	register
}

func (i SetSound) Execute(state *cpu.State) error {
	state.ST = state.V[i.X]
	return nil
}

func (i SetSound) Dump() string { return i.dump(cpu.ST.String(), i.X.String()) }

// LdFont points the address register to the font sprite of the digit in Vx.
// The font lives in the interpreter area, the sprite itself is read by the
// display layer.
type LdFont struct {
	base
	register
}

func (i LdFont) Execute(state *cpu.State) error {
	state.I = uint16(state.V[i.X]&0x0F) * fontGlyphSize
	return nil
}

func (i LdFont) Dump() string { return i.dump("F", i.X.String()) }

// LdBCD stores the decimal digits of Vx at I, I+1 and I+2.
type LdBCD struct {
	base
	register
}

func (i LdBCD) Execute(state *cpu.State) error {
	if err := state.Memory.CheckRange(state.I, 3); err != nil {
		return err
	}
	value := state.V[i.X]
	digits := [3]byte{value / 100, value / 10 % 10, value % 10}
	for offset, digit := range digits {
		if err := state.Memory.Write(state.I+uint16(offset), digit); err != nil {
			return err
		}
	}
	return nil
}

func (i LdBCD) Dump() string { return i.dump("B", i.X.String()) }

// Store writes the registers V0 to Vx inclusive to memory starting at I.
type Store struct {
	base
	register
}

func (i Store) Execute(state *cpu.State) error {
	count := int(i.X) + 1
	if err := state.Memory.CheckRange(state.I, count); err != nil {
		return err
	}
	for reg := range count {
		if err := state.Memory.Write(state.I+uint16(reg), state.V[reg]); err != nil {
			return err
		}
	}
	return nil
}

func (i Store) Dump() string { return i.dump("[I]", i.X.String()) }

// Load reads the registers V0 to Vx inclusive from memory starting at I.
type Load struct {
	base
	register
}

func (i Load) Execute(state *cpu.State) error {
	count := int(i.X) + 1
	if err := state.Memory.CheckRange(state.I, count); err != nil {
		return err
	}
	for reg := range count {
		value, err := state.Memory.Read(state.I + uint16(reg))
		if err != nil {
			return err
		}
		state.V[reg] = value
	}
	return nil
}

func (i Load) Dump() string { return i.dump(i.X.String(), "[I]") }
