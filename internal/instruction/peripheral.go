package instruction

import "github.com/Vertridge/Chip8Emulator/internal/cpu"

// Instructions that drive the display or read the keyboard. They decode and
// dump like all other instructions but their execution belongs to a
// peripheral layer outside of the core.

var (
	_ Instruction = Drw{}
	_ Instruction = Skp{}
	_ Instruction = Sknp{}
	_ Instruction = LdKey{}
)

// Drw draws an N byte sprite from memory at I to the coordinates Vx, Vy.
type Drw struct {
	base
	registerPair
	N uint8
}

func (i Drw) Execute(*cpu.State) error { return i.unimplemented() }
func (i Drw) Dump() string             { return i.dump(i.X.String(), i.Y.String(), hex(i.N)) }

// Skp skips the next instruction if the key in Vx is pressed.
type Skp struct {
	base
	register
}

func (i Skp) Execute(*cpu.State) error { return i.unimplemented() }
func (i Skp) Dump() string             { return i.dump(i.X.String()) }

// Sknp skips the next instruction if the key in Vx is not pressed.
type Sknp struct {
	base
	register
}

func (i Sknp) Execute(*cpu.State) error { return i.unimplemented() }
func (i Sknp) Dump() string             { return i.dump(i.X.String()) }

// LdKey waits for a key press and stores the key in Vx.
type LdKey struct {
	base
	register
}

func (i LdKey) Execute(*cpu.State) error { return i.unimplemented() }
func (i LdKey) Dump() string             { return i.dump(i.X.String(), "K") }
