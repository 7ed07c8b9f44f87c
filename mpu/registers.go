package mpu

import "fmt"

// Registers is the register file of the processor.
type Registers struct {
	A  uint8  // accumulator
	X  uint8  // X index
	Y  uint8  // Y index
	SP uint8  // stack pointer, offset into page 1
	PC uint16 // program counter

	sr StatusFlags
}

// SR returns the live status register. The always set and break bits
// are always reported as 1.
func (r *Registers) SR() StatusFlags {
	return r.sr | invariantFlags
}

// SetSR sets the status register, masking in the invariant bits.
func (r *Registers) SetSR(flags StatusFlags) {
	r.sr = flags | invariantFlags
}

// Flag returns whether the given status flag is set.
func (r *Registers) Flag(flag StatusFlags) bool {
	return r.SR().Has(flag)
}

func (r *Registers) setFlag(flag StatusFlags, set bool) {
	if set {
		r.sr |= flag
	} else {
		r.sr &^= flag
	}
	r.sr |= invariantFlags
}

// updateZeroNegative sets Z and N based on an 8 bit result.
func (r *Registers) updateZeroNegative(value uint8) {
	r.setFlag(FlagZero, value == 0)
	r.setFlag(FlagNegative, value&0x80 != 0)
}

// carry returns the carry flag as a number usable in arithmetic.
func (r *Registers) carry() uint16 {
	if r.sr&FlagCarry != 0 {
		return 1
	}
	return 0
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X SP:%02X PC:%04X SR:%s",
		r.A, r.X, r.Y, r.SP, r.PC, r.SR())
}
