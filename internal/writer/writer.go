// Package writer implements listing file writing functionality.
package writer

import (
	"fmt"
	"io"

	"github.com/Vertridge/Chip8Emulator/internal/program"
)

// Writer writes the disassembly of a program as listing.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Header      bool // checksum and base address comments
	HexComments bool // instruction word as hex comment
	Labels      bool // label lines for jump destinations
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write outputs the listing. Without any options enabled every line equals
// the dump of the instruction.
func (w Writer) Write() error {
	if w.options.Header {
		if err := w.WriteCommentHeader(); err != nil {
			return err
		}
	}

	for i, offset := range w.app.Offsets {
		if w.options.Labels {
			if err := w.writeLabel(i, offset); err != nil {
				return err
			}
		}
		if err := w.writeCodeLine(offset); err != nil {
			return err
		}
	}
	return nil
}

// WriteCommentHeader writes the CRC32 checksum and base address as comments to the output.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; File: %s\n", w.app.Name); err != nil {
		return fmt.Errorf("writing file name: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Base address: 0x%03x\n", w.app.BaseAddress); err != nil {
		return fmt.Errorf("writing base address: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Instructions: %d\n\n", len(w.app.Offsets)); err != nil {
		return fmt.Errorf("writing instruction count: %w", err)
	}
	return nil
}

func (w Writer) writeLabel(index int, offset *program.Offset) error {
	if !offset.IsType(program.JumpDestination) {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w.writer, "%s:\n", offset.Label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(offset *program.Offset) error {
	var err error
	switch {
	case w.options.HexComments && offset.IsType(program.DataOffset):
		_, err = fmt.Fprintf(w.writer, "%-24s ; %04x data\n", offset.Code, offset.Word)
	case w.options.HexComments:
		_, err = fmt.Fprintf(w.writer, "%-24s ; %04x\n", offset.Code, offset.Word)
	default:
		_, err = fmt.Fprintf(w.writer, "%s\n", offset.Code)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
