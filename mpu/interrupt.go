package mpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/cpu6502"
	"github.com/retroenv/retrogolib/log"
)

// Interrupt vectors.
const (
	NMIVector   = uint16(cpu6502.NMIAddress)
	ResetVector = uint16(cpu6502.ResetAddress)
	IRQVector   = uint16(cpu6502.IrqAddress)
)

// InterruptStatus is the state of the interrupt lines of a device.
type InterruptStatus uint8

// Interrupt line states.
const (
	InterruptNone InterruptStatus = iota
	InterruptMaskable
	InterruptNonMaskable
)

func (s InterruptStatus) String() string {
	switch s {
	case InterruptNone:
		return "none"
	case InterruptMaskable:
		return "irq"
	case InterruptNonMaskable:
		return "nmi"
	default:
		return fmt.Sprintf("InterruptStatus(%d)", uint8(s))
	}
}

// Interrupting is implemented by devices that can request an interrupt.
// The status is polled once per Tick for as long as the device asserts it.
type Interrupting interface {
	InterruptStatus() InterruptStatus
}

// RunMode is the execution state of the processor.
type RunMode uint8

// Run modes.
const (
	RunModeNormal RunMode = iota
	RunModeWaitingForInterrupt
	RunModeStopped
)

func (r RunMode) String() string {
	switch r {
	case RunModeNormal:
		return "normal"
	case RunModeWaitingForInterrupt:
		return "waiting"
	case RunModeStopped:
		return "stopped"
	default:
		return fmt.Sprintf("RunMode(%d)", uint8(r))
	}
}

// InterruptMask is the set of interrupt classes whose handlers are running.
type InterruptMask uint8

// Interrupt classes.
const (
	MaskIRQ InterruptMask = 1 << iota
	MaskNMI
)

// Has returns whether all classes of mask are in service.
func (i InterruptMask) Has(mask InterruptMask) bool {
	return i&mask == mask
}

func (i InterruptMask) String() string {
	switch i {
	case 0:
		return "[]"
	case MaskIRQ:
		return "[irq]"
	case MaskNMI:
		return "[nmi]"
	default:
		return "[irq nmi]"
	}
}

// downgrade leaves the most recently entered handler level.
// BRK does not enter a handler level, so the RTI that returns from a BRK
// issued inside an IRQ handler already clears MaskIRQ while that IRQ
// handler is still running.
func (i InterruptMask) downgrade() InterruptMask {
	if i.Has(MaskNMI) {
		return i &^ MaskNMI
	}
	return i &^ MaskIRQ
}

// pollInterrupts returns whether any source requests an NMI and whether
// any source requests an IRQ. All sources are polled.
func (m *MPU) pollInterrupts() (nmi, irq bool) {
	for _, source := range m.sources {
		switch source.InterruptStatus() {
		case InterruptNonMaskable:
			nmi = true
		case InterruptMaskable:
			irq = true
		}
	}
	return nmi, irq
}

// enterInterrupt pushes the return address and the status register and
// jumps to the handler. Hardware interrupts push the status with the break
// bit cleared, BRK pushes it set.
func (m *MPU) enterInterrupt(returnAddress, vector uint16, brk bool) error {
	if err := m.pushWord(returnAddress); err != nil {
		return err
	}

	sr := m.regs.SR()
	if !brk {
		sr &^= FlagBreak
	}
	if err := m.push(uint8(sr)); err != nil {
		return err
	}

	m.regs.setFlag(FlagInterruptDisable, true)
	m.regs.setFlag(FlagDecimal, false)

	handler, err := ReadWord(m.memory, vector)
	if err != nil {
		return fmt.Errorf("reading interrupt vector: %w", err)
	}
	m.regs.PC = handler
	return nil
}

func (m *MPU) serviceInterrupt(status InterruptStatus) error {
	vector, class := IRQVector, MaskIRQ
	if status == InterruptNonMaskable {
		vector, class = NMIVector, MaskNMI
	}

	if m.logger != nil {
		m.logger.Debug("Entering interrupt handler",
			log.Stringer("type", status),
			log.Hex("return_address", m.regs.PC))
	}

	if err := m.enterInterrupt(m.regs.PC, vector, false); err != nil {
		return fmt.Errorf("entering %s handler: %w", status, err)
	}
	m.mask |= class
	return nil
}
