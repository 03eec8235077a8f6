// Package loader handles ROM file loading operations.
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/Vertridge/Chip8Emulator/internal/cpu"
	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/Vertridge/Chip8Emulator/internal/program"
)

// maxProgramSize is the size of the memory area available to programs.
const maxProgramSize = cpu.MemorySize - cpu.ProgramStart

var (
	// ErrEmptyFile is returned for files without any content.
	ErrEmptyFile = errors.New("empty file")
	// ErrProgramTooLarge is returned for images that do not fit the program memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options and splits it into instruction words.
func (l *Loader) Load(opts options.Program) (*program.Program, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	prog, err := l.LoadFromBytes(opts.Input, data, opts.Swap, opts.BaseAddress)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", opts.Input, err)
	}
	return prog, nil
}

// LoadFromBytes creates a program from a raw image. The image has to fit into
// memory when loaded at the base address. Words are big-endian
// unless swap is set. An odd trailing byte is padded with a zero byte.
func (l *Loader) LoadFromBytes(name string, data []byte, swap bool, baseAddress uint16) (*program.Program, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > maxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(data), maxProgramSize)
	}
	if end := int(baseAddress) + len(data); end > cpu.MemorySize {
		return nil, fmt.Errorf("%w: %d bytes at 0x%x end at 0x%x beyond memory size 0x%x",
			ErrProgramTooLarge, len(data), baseAddress, end, cpu.MemorySize)
	}

	var order binary.ByteOrder = binary.BigEndian
	if swap {
		order = binary.LittleEndian
	}

	buf := data
	if len(buf)%2 != 0 {
		buf = make([]byte, len(data)+1)
		copy(buf, data)
	}

	words := make([]uint16, len(buf)/2)
	for i := range words {
		words[i] = order.Uint16(buf[2*i:])
	}

	return program.New(name, data, words, baseAddress), nil
}
