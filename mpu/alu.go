package mpu

// addBinary adds operand and the carry flag to A and sets N, V, Z and C.
// Subtraction is performed by passing the one's complement of the operand.
func (m *MPU) addBinary(operand uint8) {
	a := m.regs.A
	sum := uint16(a) + uint16(operand) + m.regs.carry()
	result := uint8(sum)

	m.regs.setFlag(FlagCarry, sum > 0xFF)
	m.regs.setFlag(FlagOverflow, (result^a)&(result^operand)&0x80 != 0)
	m.regs.A = result
	m.regs.updateZeroNegative(result)
}

// addDecimal adds two BCD numbers and the carry flag to A. Invalid BCD
// digits produce the same results as the 65C02. The overflow flag is taken
// from the signed sum of the high nibbles and the adjusted low nibble,
// before the high nibble is adjusted.
func (m *MPU) addDecimal(operand uint8) {
	a := m.regs.A

	low := int(a&0x0F) + int(operand&0x0F) + int(m.regs.carry())
	if low >= 0x0A {
		low = ((low + 0x06) & 0x0F) + 0x10
	}

	signed := int(int8(a&0xF0)) + int(int8(operand&0xF0)) + low
	m.regs.setFlag(FlagOverflow, signed < -128 || signed > 127)

	sum := int(a&0xF0) + int(operand&0xF0) + low
	if sum >= 0xA0 {
		sum += 0x60
	}
	m.regs.setFlag(FlagCarry, sum >= 0x100)

	m.regs.A = uint8(sum)
	m.regs.updateZeroNegative(m.regs.A)
}

// subtractDecimal subtracts a BCD number and the inverted carry flag from A.
// Carry and overflow are the same as for binary subtraction.
func (m *MPU) subtractDecimal(operand uint8) {
	a := m.regs.A
	borrow := 1 - int(m.regs.carry())

	binary := int(a) - int(operand) - borrow
	m.regs.setFlag(FlagCarry, binary >= 0)
	m.regs.setFlag(FlagOverflow, (a^operand)&(a^uint8(binary))&0x80 != 0)

	diff := binary
	if diff < 0 {
		diff -= 0x60
	}
	if low := int(a&0x0F) - int(operand&0x0F) - borrow; low < 0 {
		diff -= 0x06
	}

	result := uint8(diff)
	m.regs.A = result
	m.regs.updateZeroNegative(result)
}

func (m *MPU) adcValue(operand uint8) {
	if m.regs.Flag(FlagDecimal) {
		m.addDecimal(operand)
		return
	}
	m.addBinary(operand)
}

func (m *MPU) sbcValue(operand uint8) {
	if m.regs.Flag(FlagDecimal) {
		m.subtractDecimal(operand)
		return
	}
	m.addBinary(^operand)
}

// compare sets the flags of an unsigned register minus operand subtraction.
// The overflow flag is not affected.
func (m *MPU) compare(register, operand uint8) {
	m.regs.setFlag(FlagCarry, register >= operand)
	m.regs.updateZeroNegative(register - operand)
}

func (m *MPU) shiftLeft(value uint8, carryIn bool) uint8 {
	m.regs.setFlag(FlagCarry, value&0x80 != 0)
	result := value << 1
	if carryIn {
		result |= 0x01
	}
	m.regs.updateZeroNegative(result)
	return result
}

func (m *MPU) shiftRight(value uint8, carryIn bool) uint8 {
	m.regs.setFlag(FlagCarry, value&0x01 != 0)
	result := value >> 1
	if carryIn {
		result |= 0x80
	}
	m.regs.updateZeroNegative(result)
	return result
}
