package mpu

import "fmt"

// AddressingMode is a decoded operand. Operand bytes and index register
// offsets are captured when the instruction is decoded, memory referenced by
// the operand is only read when Value or Address is called.
type AddressingMode struct {
	Category AddressingCategory

	Base     uint16 // absolute or zero page base address
	Offset   uint8  // index register value captured at decode time
	Operand  uint8  // immediate value
	Relative int8   // signed branch offset
}

type modeResolverFunc func(mem Memory, regs *Registers) (AddressingMode, error)

var modeResolver = [categoryCount]modeResolverFunc{
	CategoryImplied:                 resolveNoOperand(CategoryImplied),
	CategoryAccumulator:             resolveNoOperand(CategoryAccumulator),
	CategoryStack:                   resolveNoOperand(CategoryStack),
	CategoryImmediate:               resolveImmediate,
	CategoryAbsolute:                resolveAbsolute(CategoryAbsolute, nil),
	CategoryAbsoluteX:               resolveAbsolute(CategoryAbsoluteX, indexX),
	CategoryAbsoluteY:               resolveAbsolute(CategoryAbsoluteY, indexY),
	CategoryAbsoluteIndirect:        resolveAbsolute(CategoryAbsoluteIndirect, nil),
	CategoryAbsoluteIndexedIndirect: resolveAbsolute(CategoryAbsoluteIndexedIndirect, indexX),
	CategoryZeroPage:                resolveZeroPage(CategoryZeroPage, nil),
	CategoryZeroPageX:               resolveZeroPage(CategoryZeroPageX, indexX),
	CategoryZeroPageY:               resolveZeroPage(CategoryZeroPageY, indexY),
	CategoryZeroPageIndirect:        resolveZeroPage(CategoryZeroPageIndirect, nil),
	CategoryZeroPageIndexedIndirect: resolveZeroPage(CategoryZeroPageIndexedIndirect, indexX),
	CategoryZeroPageIndirectIndexed: resolveZeroPage(CategoryZeroPageIndirectIndexed, indexY),
	CategoryRelative:                resolveRelative,
	CategoryZeroPageRelative:        resolveZeroPageRelative,
	CategoryUnused1:                 resolveNoOperand(CategoryUnused1),
	CategoryUnused2:                 resolveNoOperand(CategoryUnused2),
	CategoryUnused3:                 resolveNoOperand(CategoryUnused3),
}

func indexX(regs *Registers) uint8 { return regs.X }
func indexY(regs *Registers) uint8 { return regs.Y }

// resolveAddressingMode decodes the operand of the opcode located at the
// program counter. The program counter is not modified.
func resolveAddressingMode(opcode uint8, mem Memory, regs *Registers) (AddressingMode, error) {
	category := opcodeCategories[opcode]
	mode, err := modeResolver[category](mem, regs)
	if err != nil {
		return AddressingMode{}, fmt.Errorf("resolving %s operand: %w", category, err)
	}
	return mode, nil
}

func resolveNoOperand(category AddressingCategory) modeResolverFunc {
	return func(Memory, *Registers) (AddressingMode, error) {
		return AddressingMode{Category: category}, nil
	}
}

func resolveImmediate(mem Memory, regs *Registers) (AddressingMode, error) {
	b, err := readByte(mem, regs.PC+1)
	if err != nil {
		return AddressingMode{}, err
	}
	return AddressingMode{Category: CategoryImmediate, Operand: b}, nil
}

func resolveAbsolute(category AddressingCategory, index func(*Registers) uint8) modeResolverFunc {
	return func(mem Memory, regs *Registers) (AddressingMode, error) {
		w, err := ReadWord(mem, regs.PC+1)
		if err != nil {
			return AddressingMode{}, err
		}
		mode := AddressingMode{Category: category, Base: w}
		if index != nil {
			mode.Offset = index(regs)
		}
		return mode, nil
	}
}

func resolveZeroPage(category AddressingCategory, index func(*Registers) uint8) modeResolverFunc {
	return func(mem Memory, regs *Registers) (AddressingMode, error) {
		b, err := readByte(mem, regs.PC+1)
		if err != nil {
			return AddressingMode{}, err
		}
		mode := AddressingMode{Category: category, Base: uint16(b)}
		if index != nil {
			mode.Offset = index(regs)
		}
		return mode, nil
	}
}

func resolveRelative(mem Memory, regs *Registers) (AddressingMode, error) {
	b, err := readByte(mem, regs.PC+1)
	if err != nil {
		return AddressingMode{}, err
	}
	return AddressingMode{Category: CategoryRelative, Relative: int8(b)}, nil
}

func resolveZeroPageRelative(mem Memory, regs *Registers) (AddressingMode, error) {
	zp, err := readByte(mem, regs.PC+1)
	if err != nil {
		return AddressingMode{}, err
	}
	offset, err := readByte(mem, regs.PC+2)
	if err != nil {
		return AddressingMode{}, err
	}
	return AddressingMode{
		Category: CategoryZeroPageRelative,
		Base:     uint16(zp),
		Relative: int8(offset),
	}, nil
}

// Size returns the instruction length in bytes including the opcode.
func (m AddressingMode) Size() uint16 {
	return m.Category.Size()
}

// Value returns the operand value of the addressing mode. Memory based modes
// read the byte at the resolved address, the accumulator mode returns A.
func (m AddressingMode) Value(mem Memory, regs *Registers) (uint8, error) {
	switch m.Category {
	case CategoryAccumulator:
		return regs.A, nil

	case CategoryImmediate:
		return m.Operand, nil

	case CategoryZeroPage, CategoryZeroPageX, CategoryZeroPageY, CategoryZeroPageIndirect,
		CategoryZeroPageIndexedIndirect, CategoryZeroPageIndirectIndexed,
		CategoryAbsolute, CategoryAbsoluteX, CategoryAbsoluteY:
		address, err := m.Address(mem, regs)
		if err != nil {
			return 0, err
		}
		return readByte(mem, address)

	case CategoryZeroPageRelative:
		return readByte(mem, m.Base)

	default:
		return 0, fmt.Errorf("%s addressing: %w", m.Category, ErrNoAssociatedValue)
	}
}

// Address returns the effective address that the addressing mode references.
// Relative targets are computed from the current program counter, which has
// already been advanced past the instruction when it executes.
func (m AddressingMode) Address(mem Memory, regs *Registers) (uint16, error) {
	switch m.Category {
	case CategoryZeroPage:
		return m.Base, nil

	case CategoryZeroPageX, CategoryZeroPageY:
		return uint16(uint8(m.Base) + m.Offset), nil

	case CategoryZeroPageIndirect:
		return readZeroPageWord(mem, uint8(m.Base))

	case CategoryZeroPageIndexedIndirect:
		return readZeroPageWord(mem, uint8(m.Base)+m.Offset)

	case CategoryZeroPageIndirectIndexed:
		base, err := readZeroPageWord(mem, uint8(m.Base))
		if err != nil {
			return 0, err
		}
		return base + uint16(m.Offset), nil

	case CategoryRelative, CategoryZeroPageRelative:
		return regs.PC + uint16(int16(m.Relative)), nil

	case CategoryAbsolute:
		return m.Base, nil

	case CategoryAbsoluteX, CategoryAbsoluteY:
		return m.Base + uint16(m.Offset), nil

	case CategoryAbsoluteIndirect:
		return ReadWord(mem, m.Base)

	case CategoryAbsoluteIndexedIndirect:
		return ReadWord(mem, m.Base+uint16(m.Offset))

	default:
		return 0, fmt.Errorf("%s addressing: %w", m.Category, ErrNoResolvedAddress)
	}
}

// String returns the operand in assembler syntax.
func (m AddressingMode) String() string {
	switch m.Category {
	case CategoryAccumulator:
		return "a"
	case CategoryImmediate:
		return fmt.Sprintf("#$%02x", m.Operand)
	case CategoryZeroPage:
		return fmt.Sprintf("$%02x", m.Base)
	case CategoryZeroPageX:
		return fmt.Sprintf("$%02x,x", m.Base)
	case CategoryZeroPageY:
		return fmt.Sprintf("$%02x,y", m.Base)
	case CategoryZeroPageIndirect:
		return fmt.Sprintf("($%02x)", m.Base)
	case CategoryZeroPageIndexedIndirect:
		return fmt.Sprintf("($%02x,x)", m.Base)
	case CategoryZeroPageIndirectIndexed:
		return fmt.Sprintf("($%02x),y", m.Base)
	case CategoryAbsolute:
		return fmt.Sprintf("$%04x", m.Base)
	case CategoryAbsoluteX:
		return fmt.Sprintf("$%04x,x", m.Base)
	case CategoryAbsoluteY:
		return fmt.Sprintf("$%04x,y", m.Base)
	case CategoryAbsoluteIndirect:
		return fmt.Sprintf("($%04x)", m.Base)
	case CategoryAbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,x)", m.Base)
	case CategoryRelative:
		return fmt.Sprintf("$%02x", uint8(m.Relative))
	case CategoryZeroPageRelative:
		return fmt.Sprintf("$%02x,$%02x", m.Base, uint8(m.Relative))
	default:
		return ""
	}
}
