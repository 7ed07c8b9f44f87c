package mpu

import "fmt"

// Memory is the byte addressable address space that the processor fetches
// instructions and data from.
type Memory interface {
	// Read returns the byte at the given address.
	Read(address uint16) (uint8, error)
	// Write stores a byte at the given address.
	Write(address uint16, data uint8) error
}

// ReadWord reads a little-endian word with the low byte at address and the
// high byte at address+1. The high byte address wraps at 0xFFFF but no page
// wraparound is applied.
func ReadWord(mem Memory, address uint16) (uint16, error) {
	low, err := mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("reading memory at address %04x: %w", address, err)
	}
	high, err := mem.Read(address + 1)
	if err != nil {
		return 0, fmt.Errorf("reading memory at address %04x: %w", address+1, err)
	}
	return uint16(high)<<8 | uint16(low), nil
}

// readZeroPageWord reads a pointer stored in the zero page. The high byte is
// fetched from the next zero page location, a pointer at 0xFF takes its high
// byte from 0x00.
func readZeroPageWord(mem Memory, address uint8) (uint16, error) {
	low, err := mem.Read(uint16(address))
	if err != nil {
		return 0, fmt.Errorf("reading memory at address %04x: %w", address, err)
	}
	high, err := mem.Read(uint16(address + 1))
	if err != nil {
		return 0, fmt.Errorf("reading memory at address %04x: %w", address+1, err)
	}
	return uint16(high)<<8 | uint16(low), nil
}

// readByte reads a byte and wraps a memory error with the address context.
func readByte(mem Memory, address uint16) (uint8, error) {
	b, err := mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("reading memory at address %04x: %w", address, err)
	}
	return b, nil
}

func writeByte(mem Memory, address uint16, data uint8) error {
	if err := mem.Write(address, data); err != nil {
		return fmt.Errorf("writing memory at address %04x: %w", address, err)
	}
	return nil
}
