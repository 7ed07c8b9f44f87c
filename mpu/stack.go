package mpu

// StackBase is the address of the stack page.
const StackBase = 0x0100

// StackAddress returns the memory address that the stack pointer points to.
func (r *Registers) StackAddress() uint16 {
	return StackBase + uint16(r.SP)
}

func (m *MPU) push(value uint8) error {
	if err := writeByte(m.memory, m.regs.StackAddress(), value); err != nil {
		return err
	}
	m.regs.SP--
	return nil
}

func (m *MPU) pop() (uint8, error) {
	m.regs.SP++
	return readByte(m.memory, m.regs.StackAddress())
}

// pushWord pushes the high byte first so that the word is stored little-endian.
func (m *MPU) pushWord(word uint16) error {
	if err := m.push(uint8(word >> 8)); err != nil {
		return err
	}
	return m.push(uint8(word))
}

func (m *MPU) popWord() (uint16, error) {
	low, err := m.pop()
	if err != nil {
		return 0, err
	}
	high, err := m.pop()
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}
