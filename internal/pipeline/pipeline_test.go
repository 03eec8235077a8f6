package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Vertridge/Chip8Emulator/internal/instruction"
	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/Vertridge/Chip8Emulator/internal/program"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func plainOptions() options.Disassembler {
	opts := options.NewDisassembler()
	opts.Header = false
	opts.HexComments = false
	return opts
}

//nolint:funlen // test functions can be long
func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x61, 0x0F, 0x62, 0x0A, 0x81, 0x24})

	t.Run("execute pipeline successfully", func(t *testing.T) {
		opts := options.Program{
			Parameters:  options.Parameters{Input: tmpFile},
			Flags:       options.Flags{Quiet: true},
			BaseAddress: 0x200,
		}

		var buf bytes.Buffer
		result, err := p.Execute(context.Background(), opts, plainOptions(), &buf)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result.Instructions, 4)
		assert.Equal(t, "0x200 CLS\n0x202 LD V1 0xf\n0x204 LD V2 0xa\n0x206 ADD V1 V2\n", buf.String())
	})

	t.Run("execute with verification", func(t *testing.T) {
		opts := options.Program{
			Parameters:  options.Parameters{Input: tmpFile},
			Flags:       options.Flags{Quiet: true, Verify: true},
			BaseAddress: 0x200,
		}

		var buf bytes.Buffer
		_, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &buf)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "; CRC32 checksum: ")
	})

	t.Run("execute with non-existent file", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
			Flags:      options.Flags{Quiet: true},
		}

		var buf bytes.Buffer
		_, err := p.Execute(context.Background(), opts, plainOptions(), &buf)
		assert.ErrorContains(t, err, "loading program")
	})
}

func TestExecuteWithProgram(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{Flags: options.Flags{Quiet: true}}

	t.Run("unknown opcode", func(t *testing.T) {
		prog := program.New("test", []byte{0xFF, 0xFF}, []uint16{0xFFFF}, 0x200)

		var buf bytes.Buffer
		_, err := p.ExecuteWithProgram(context.Background(), prog, opts, plainOptions(), &buf)
		assert.True(t, errors.Is(err, instruction.ErrUnknownOpcode))
		assert.Equal(t, "", buf.String())
	})

	t.Run("lenient with labels", func(t *testing.T) {
		prog := program.New("test", nil, []uint16{0x1204, 0xFFFF, 0x00E0}, 0x200)
		disasmOpts := plainOptions()
		disasmOpts.Lenient = true
		disasmOpts.Labels = true

		var buf bytes.Buffer
		_, err := p.ExecuteWithProgram(context.Background(), prog, opts, disasmOpts, &buf)
		assert.NoError(t, err)
		assert.Equal(t, "0x200 JP 0x204\n0x202 .word 0xffff\n\n_label_0204:\n0x204 CLS\n", buf.String())
	})

	t.Run("program base address", func(t *testing.T) {
		prog := program.New("test", nil, []uint16{0x00E0}, 0x300)
		disasmOpts := plainOptions()
		disasmOpts.Header = true

		var buf bytes.Buffer
		_, err := p.ExecuteWithProgram(context.Background(), prog, opts, disasmOpts, &buf)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "; Base address: 0x300\n")
		assert.Contains(t, buf.String(), "\n0x300 CLS\n")
	})

	t.Run("canceled context", func(t *testing.T) {
		prog := program.New("test", nil, []uint16{0x00E0}, 0x200)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		_, err := p.ExecuteWithProgram(ctx, prog, opts, plainOptions(), &buf)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
