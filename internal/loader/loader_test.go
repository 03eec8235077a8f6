package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x61, 0x0F})

		loader := New()
		opts := options.Program{
			Parameters:  options.Parameters{Input: tmpFile},
			BaseAddress: 0x200,
		}

		prog, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, []uint16{0x00E0, 0x610F}, prog.Words)
		assert.Equal(t, uint16(0x200), prog.BaseAddress)
		assert.Equal(t, tmpFile, prog.Name)
	})

	t.Run("load swapped ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0xE0, 0x00, 0x0F, 0x61})

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
			Flags:      options.Flags{Swap: true},
		}

		prog, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, []uint16{0x00E0, 0x610F}, prog.Words)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
		}

		_, err := loader.Load(opts)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(options.Program{Parameters: options.Parameters{Input: tmpFile}})
		assert.True(t, errors.Is(err, ErrEmptyFile))
	})
}

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		swap     bool
		expected []uint16
	}{
		{"big endian", []byte{0x12, 0x34, 0x56, 0x78}, false, []uint16{0x1234, 0x5678}},
		{"little endian", []byte{0x12, 0x34, 0x56, 0x78}, true, []uint16{0x3412, 0x7856}},
		{"odd length", []byte{0x12, 0x34, 0x56}, false, []uint16{0x1234, 0x5600}},
		{"odd length swapped", []byte{0x12, 0x34, 0x56}, true, []uint16{0x3412, 0x0056}},
		{"single byte", []byte{0xAB}, false, []uint16{0xAB00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := New().LoadFromBytes("test", tt.data, tt.swap, 0x200)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, prog.Words)
			assert.Equal(t, tt.data, prog.Data)
		})
	}
}

func TestLoadFromBytes_Size(t *testing.T) {
	_, err := New().LoadFromBytes("test", make([]byte, maxProgramSize), false, 0x200)
	assert.NoError(t, err)

	_, err = New().LoadFromBytes("test", make([]byte, maxProgramSize+1), false, 0x200)
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}

func TestLoadFromBytes_BaseAddress(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		base  uint16
		valid bool
	}{
		{"full program area at higher base", maxProgramSize, 0x300, false},
		{"ends at memory end", 0x1000 - 0x300, 0x300, true},
		{"one byte beyond memory end", 0x1000 - 0x300 + 1, 0x300, false},
		{"base at memory end", 2, 0x1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().LoadFromBytes("test", make([]byte, tt.size), false, tt.base)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrProgramTooLarge))
			}
		})
	}
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
