package memory

import (
	"github.com/retroenv/retro65c02/mpu"
)

// Interrupt port register bits.
const (
	PortIRQ = 1 << 0
	PortNMI = 1 << 1

	portFilter = 0x7F
)

// InterruptPort is a memory mapped register that lets a program raise
// interrupts on its own processor by writing to it. Bit 0 asserts IRQ and
// bit 1 asserts NMI for as long as they are set. Bit 7 is not stored.
//
// The port is an mpu.Interrupting source and has to be passed to mpu.New
// as memory and as interrupt source.
type InterruptPort struct {
	backing mpu.Memory
	address uint16
	value   uint8
}

// NewInterruptPort returns a port mapped at the given address of the
// backing memory.
func NewInterruptPort(backing mpu.Memory, address uint16) *InterruptPort {
	return &InterruptPort{
		backing: backing,
		address: address,
	}
}

// Read returns the port register for the port address and the backing
// memory content otherwise.
func (p *InterruptPort) Read(address uint16) (uint8, error) {
	if address == p.address {
		return p.value, nil
	}
	return p.backing.Read(address)
}

// Write sets the port register for the port address and writes to the
// backing memory otherwise.
func (p *InterruptPort) Write(address uint16, data uint8) error {
	if address == p.address {
		p.Set(data)
		return nil
	}
	return p.backing.Write(address, data)
}

// Set sets the port register from the host side.
func (p *InterruptPort) Set(value uint8) {
	p.value = value & portFilter
}

// Value returns the port register.
func (p *InterruptPort) Value() uint8 {
	return p.value
}

// InterruptStatus returns the strongest interrupt asserted by the port.
func (p *InterruptPort) InterruptStatus() mpu.InterruptStatus {
	switch {
	case p.value&PortNMI != 0:
		return mpu.InterruptNonMaskable
	case p.value&PortIRQ != 0:
		return mpu.InterruptMaskable
	default:
		return mpu.InterruptNone
	}
}
