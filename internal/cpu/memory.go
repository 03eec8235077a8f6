// Package cpu contains the CHIP-8 machine state: memory and register file.
package cpu

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter and font data, never touched by the core
//	0x200-0xFFF: Program and data area
const (
	// MemorySize is the size of the CHIP-8 address space in bytes.
	MemorySize = 0x1000

	// ProgramStart is the first address that programs may read or write.
	// Programs are also loaded at this address.
	ProgramStart = 0x200
)

// ErrAddressRange is returned for memory accesses outside of the program area.
var ErrAddressRange = errors.New("address out of range")

// Memory is the byte addressable CHIP-8 memory.
type Memory struct {
	buf [MemorySize]byte
}

// NewMemory returns a zero initialized memory.
func NewMemory() *Memory {
	return &Memory{}
}

// IsValidAddress returns whether the address is inside the usable program area.
func (m *Memory) IsValidAddress(address uint16) bool {
	return address >= ProgramStart && int(address) < len(m.buf)
}

// Read returns the byte stored at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if !m.IsValidAddress(address) {
		return 0, fmt.Errorf("%w: reading 0x%03x", ErrAddressRange, address)
	}
	return m.buf[address], nil
}

// Write stores the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if !m.IsValidAddress(address) {
		return fmt.Errorf("%w: writing 0x%03x", ErrAddressRange, address)
	}
	m.buf[address] = value
	return nil
}

// Load copies data into memory starting at address. The whole destination
// range is checked before any byte is written.
func (m *Memory) Load(address uint16, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := m.CheckRange(address, len(data)); err != nil {
		return err
	}
	copy(m.buf[address:], data)
	return nil
}

// CheckRange returns an error if any address of the block of length bytes
// starting at address is outside the program area.
func (m *Memory) CheckRange(address uint16, length int) error {
	last := int(address) + length - 1
	if !m.IsValidAddress(address) || last >= len(m.buf) {
		return fmt.Errorf("%w: block 0x%03x-0x%03x", ErrAddressRange, address, last)
	}
	return nil
}
