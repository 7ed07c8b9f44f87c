package memory

import (
	"errors"
	"fmt"
)

// Size is the size of the 16 bit address space.
const Size = 0x10000

// ErrImageTooLarge is returned when loaded data does not fit into the
// address space behind the load address.
var ErrImageTooLarge = errors.New("image exceeds address space")

// RAM is a flat read/write memory covering the full address space.
// Unwritten bytes read as 0.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a new zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Load copies data into the RAM starting at the given address.
func (r *RAM) Load(address uint16, data []byte) error {
	if int(address)+len(data) > Size {
		return fmt.Errorf("loading %d bytes at address %04x: %w", len(data), address, ErrImageTooLarge)
	}
	copy(r.data[address:], data)
	return nil
}

// Read returns the byte at the given address.
func (r *RAM) Read(address uint16) (uint8, error) {
	return r.data[address], nil
}

// Write sets the byte at the given address.
func (r *RAM) Write(address uint16, data uint8) error {
	r.data[address] = data
	return nil
}
