// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/Vertridge/Chip8Emulator/internal/app"
	"github.com/Vertridge/Chip8Emulator/internal/detector"
	"github.com/Vertridge/Chip8Emulator/internal/disasm"
	"github.com/Vertridge/Chip8Emulator/internal/loader"
	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/Vertridge/Chip8Emulator/internal/program"
	"github.com/Vertridge/Chip8Emulator/internal/verification"
	"github.com/Vertridge/Chip8Emulator/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	output io.Writer) (*program.Program, error) {

	prog, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	if swap := p.detector.Detect(prog.Data); swap != opts.Swap {
		p.logger.Warn("Byte order of the ROM looks different from the selected one",
			log.String("detected", byteOrderName(swap)),
			log.String("selected", byteOrderName(opts.Swap)))
	}

	return p.ExecuteWithProgram(ctx, prog, opts, disasmOpts, output)
}

// ExecuteWithProgram runs the disassembly pipeline with a pre-loaded program.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, prog *program.Program, opts options.Program,
	disasmOpts options.Disassembler, output io.Writer) (*program.Program, error) {

	disasmOpts.BaseAddress = prog.BaseAddress
	app.PrintInfo(p.logger, opts, prog)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}
	dis := disasm.New(p.logger, disasmOpts)
	instructions, err := dis.Disassemble(prog.Words)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	var labels map[uint16]string
	if dis.Options().Labels {
		labels = disasm.Labels(instructions)
	}
	prog.SetInstructions(instructions, labels)

	if opts.Verify {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("verifying: %w", err)
		}
		result, err := verification.VerifyInstructions(p.logger, prog.Words, instructions)
		if err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful",
			log.Int("verified", result.Verified),
			log.Int("unverified", result.Unverified))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	if err := p.writeListing(prog, dis.Options(), output); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Pipeline) writeListing(prog *program.Program, disasmOpts options.Disassembler, output io.Writer) error {
	w := writer.New(prog, output, writer.Options{
		Header:      disasmOpts.Header,
		HexComments: disasmOpts.HexComments,
		Labels:      disasmOpts.Labels,
	})
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

func byteOrderName(swap bool) string {
	if swap {
		return "little-endian"
	}
	return "big-endian"
}
