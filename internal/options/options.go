// Package options contains the program options.
package options

import "github.com/Vertridge/Chip8Emulator/internal/cpu"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
	Base   string `flag:"base" usage:"load address of the program" default:"0x200"`
}

// Flags contains behavior options.
type Flags struct {
	Swap    bool `flag:"swap" usage:"read words in little-endian byte order"`
	Lenient bool `flag:"lenient" usage:"emit data words for unknown opcodes instead of failing"`
	Verify  bool `flag:"verify" usage:"cross-check decoding against the reference opcode table"`
	Debug   bool `flag:"debug" usage:"enable debug logging"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Labels        bool `flag:"labels" usage:"emit label lines for branch targets"`
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode words in comments"`
	NoHeader      bool `flag:"noheader" usage:"omit the listing header"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags

	BaseAddress uint16 // parsed value of Base
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	BaseAddress uint16 // address of the first word
	Lenient     bool   // unknown words become data placeholders

	Header      bool
	HexComments bool
	Labels      bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		BaseAddress: cpu.ProgramStart,

		Header:      true,
		HexComments: true,
	}
}
