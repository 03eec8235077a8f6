// Package app provides the main application helper for the disassembler.
package app

import (
	"github.com/Vertridge/Chip8Emulator/internal/cpu"
	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/Vertridge/Chip8Emulator/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// PrintInfo prints the information about the input file and the loaded program.
func PrintInfo(logger *log.Logger, opts options.Program, prog *program.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing Chip-8 ROM",
		log.String("file", prog.Name),
		log.Int("size", len(prog.Data)),
		log.Hex("base", prog.BaseAddress),
	)

	if len(prog.Data)%2 != 0 {
		logger.Warn("ROM size is not a multiple of the instruction size, last word is padded")
	}
	if prog.BaseAddress != cpu.ProgramStart {
		logger.Warn("Base address differs from the Chip-8 program start",
			log.Hex("expected", uint16(cpu.ProgramStart)))
	}
	if opts.Swap {
		logger.Debug("Reading instruction words in little-endian byte order")
	}
}
