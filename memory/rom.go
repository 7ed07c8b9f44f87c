package memory

import (
	"errors"
	"fmt"

	"github.com/retroenv/retro65c02/mpu"
)

// ErrReadOnly is returned for writes into a read-only window.
var ErrReadOnly = errors.New("memory is read-only")

// ROM makes an address window of a backing memory read-only.
// Accesses outside of the window are passed through.
type ROM struct {
	backing mpu.Memory
	start   uint16
	end     uint16
}

// NewROM returns a read-only window from start to end, both inclusive.
func NewROM(backing mpu.Memory, start, end uint16) *ROM {
	return &ROM{
		backing: backing,
		start:   start,
		end:     end,
	}
}

// Contains returns whether the address is part of the read-only window.
func (r *ROM) Contains(address uint16) bool {
	return address >= r.start && address <= r.end
}

// Read returns the byte at the given address of the backing memory.
func (r *ROM) Read(address uint16) (uint8, error) {
	return r.backing.Read(address)
}

// Write writes to the backing memory unless the address is inside the window.
func (r *ROM) Write(address uint16, data uint8) error {
	if r.Contains(address) {
		return fmt.Errorf("writing %02x to %04x: %w", data, address, ErrReadOnly)
	}
	return r.backing.Write(address, data)
}
