// Package detector handles instruction byte order detection.
package detector

import (
	"encoding/binary"

	"github.com/Vertridge/Chip8Emulator/internal/instruction"
	"github.com/retroenv/retrogolib/log"
)

// Detector guesses the byte order of ROM images by counting the words that
// decode to known opcodes.
type Detector struct {
	logger *log.Logger
}

// New creates a new byte order detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns whether the image decodes better with swapped, little-endian
// words. Big-endian wins ties.
func (d *Detector) Detect(data []byte) bool {
	bigEndian := decodableWords(data, binary.BigEndian)
	littleEndian := decodableWords(data, binary.LittleEndian)

	d.logger.Debug("Detected decodable words",
		log.Int("big_endian", bigEndian),
		log.Int("little_endian", littleEndian),
		log.Int("words", len(data)/2))
	return littleEndian > bigEndian
}

// decodableWords counts the complete words of data that decode to an opcode.
func decodableWords(data []byte, order binary.ByteOrder) int {
	var count int
	for i := 0; i+1 < len(data); i += 2 {
		if _, err := instruction.Decode(order.Uint16(data[i:])); err == nil {
			count++
		}
	}
	return count
}
