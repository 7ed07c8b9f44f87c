package mpu

import "fmt"

// Instruction is a decoded instruction.
type Instruction struct {
	Opcode   uint8
	Mnemonic Mnemonic
	Mode     AddressingMode
}

// decode reads the instruction at the program counter without advancing it.
func decode(mem Memory, regs *Registers) (Instruction, error) {
	opcode, err := readByte(mem, regs.PC)
	if err != nil {
		return Instruction{}, err
	}

	mode, err := resolveAddressingMode(opcode, mem, regs)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Opcode:   opcode,
		Mnemonic: opcodeMnemonics[opcode],
		Mode:     mode,
	}, nil
}

// Size returns the length of the instruction in bytes.
func (ins Instruction) Size() uint16 {
	return ins.Mode.Size()
}

// String returns the instruction in assembler syntax. The bit number of the
// RMB, SMB, BBR and BBS instructions is appended to the mnemonic.
func (ins Instruction) String() string {
	name := ins.Mnemonic.String()
	switch ins.Mnemonic {
	case Rmb, Smb, Bbr, Bbs:
		name = fmt.Sprintf("%s%d", name, bitIndex(ins.Opcode))
	case Undefined:
		return fmt.Sprintf(".byte $%02x", ins.Opcode)
	default:
	}

	operand := ins.Mode.String()
	if operand == "" {
		return name
	}
	return name + " " + operand
}
