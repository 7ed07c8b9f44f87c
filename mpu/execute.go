package mpu

type handlerFunc func(m *MPU, ins Instruction) error

var mnemonicHandlers = [...]handlerFunc{
	Adc: (*MPU).adc,
	And: (*MPU).and,
	Asl: (*MPU).asl,
	Bbr: (*MPU).bbr,
	Bbs: (*MPU).bbs,
	Bcc: branchIf(FlagCarry, false),
	Bcs: branchIf(FlagCarry, true),
	Beq: branchIf(FlagZero, true),
	Bit: (*MPU).bit,
	Bmi: branchIf(FlagNegative, true),
	Bne: branchIf(FlagZero, false),
	Bpl: branchIf(FlagNegative, false),
	Bra: (*MPU).bra,
	Brk: (*MPU).brk,
	Bvc: branchIf(FlagOverflow, false),
	Bvs: branchIf(FlagOverflow, true),
	Clc: setFlag(FlagCarry, false),
	Cld: setFlag(FlagDecimal, false),
	Cli: setFlag(FlagInterruptDisable, false),
	Clv: setFlag(FlagOverflow, false),
	Cmp: compareWith(func(r *Registers) uint8 { return r.A }),
	Cpx: compareWith(func(r *Registers) uint8 { return r.X }),
	Cpy: compareWith(func(r *Registers) uint8 { return r.Y }),
	Dec: (*MPU).dec,
	Dex: (*MPU).dex,
	Dey: (*MPU).dey,
	Eor: (*MPU).eor,
	Inc: (*MPU).inc,
	Inx: (*MPU).inx,
	Iny: (*MPU).iny,
	Jmp: (*MPU).jmp,
	Jsr: (*MPU).jsr,
	Lda: (*MPU).lda,
	Ldx: (*MPU).ldx,
	Ldy: (*MPU).ldy,
	Lsr: (*MPU).lsr,
	Nop: (*MPU).nop,
	Ora: (*MPU).ora,
	Pha: (*MPU).pha,
	Php: (*MPU).php,
	Phx: (*MPU).phx,
	Phy: (*MPU).phy,
	Pla: (*MPU).pla,
	Plp: (*MPU).plp,
	Plx: (*MPU).plx,
	Ply: (*MPU).ply,
	Rmb: (*MPU).rmb,
	Rol: (*MPU).rol,
	Ror: (*MPU).ror,
	Rti: (*MPU).rti,
	Rts: (*MPU).rts,
	Sbc: (*MPU).sbc,
	Sec: setFlag(FlagCarry, true),
	Sed: setFlag(FlagDecimal, true),
	Sei: setFlag(FlagInterruptDisable, true),
	Smb: (*MPU).smb,
	Sta: (*MPU).sta,
	Stp: (*MPU).stp,
	Stx: (*MPU).stx,
	Sty: (*MPU).sty,
	Stz: (*MPU).stz,
	Tax: (*MPU).tax,
	Tay: (*MPU).tay,
	Trb: (*MPU).trb,
	Tsb: (*MPU).tsb,
	Tsx: (*MPU).tsx,
	Txa: (*MPU).txa,
	Txs: (*MPU).txs,
	Tya: (*MPU).tya,
	Wai: (*MPU).wai,
}

// opcodeHandlers maps every assigned opcode to the handler of its mnemonic,
// unused opcodes have no handler.
var opcodeHandlers = buildOpcodeHandlers()

func buildOpcodeHandlers() [256]handlerFunc {
	var handlers [256]handlerFunc
	for opcode, mnemonic := range opcodeMnemonics {
		if mnemonic != Undefined {
			handlers[opcode] = mnemonicHandlers[mnemonic]
		}
	}
	return handlers
}

func (m *MPU) operand(ins Instruction) (uint8, error) {
	return ins.Mode.Value(m.memory, &m.regs)
}

func (m *MPU) address(ins Instruction) (uint16, error) {
	return ins.Mode.Address(m.memory, &m.regs)
}

// store writes a read-modify-write result back to A for accumulator
// addressing, otherwise to the resolved address.
func (m *MPU) store(ins Instruction, value uint8) error {
	if ins.Mode.Category == CategoryAccumulator {
		m.regs.A = value
		return nil
	}
	address, err := m.address(ins)
	if err != nil {
		return err
	}
	return writeByte(m.memory, address, value)
}

// modify applies fn to the operand and stores the result.
func (m *MPU) modify(ins Instruction, fn func(uint8) uint8) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	return m.store(ins, fn(value))
}

// load reads the operand into a register and sets N and Z.
func (m *MPU) load(ins Instruction, register *uint8) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	*register = value
	m.regs.updateZeroNegative(value)
	return nil
}

func (m *MPU) storeRegister(ins Instruction, value uint8) error {
	address, err := m.address(ins)
	if err != nil {
		return err
	}
	return writeByte(m.memory, address, value)
}

// logical combines A with the operand and sets N and Z.
func (m *MPU) logical(ins Instruction, fn func(a, operand uint8) uint8) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	m.regs.A = fn(m.regs.A, value)
	m.regs.updateZeroNegative(m.regs.A)
	return nil
}

func (m *MPU) branch(ins Instruction) error {
	target, err := m.address(ins)
	if err != nil {
		return err
	}
	m.regs.PC = target
	return nil
}

func branchIf(flag StatusFlags, set bool) handlerFunc {
	return func(m *MPU, ins Instruction) error {
		if m.regs.Flag(flag) != set {
			return nil
		}
		return m.branch(ins)
	}
}

func setFlag(flag StatusFlags, set bool) handlerFunc {
	return func(m *MPU, _ Instruction) error {
		m.regs.setFlag(flag, set)
		return nil
	}
}

func compareWith(register func(*Registers) uint8) handlerFunc {
	return func(m *MPU, ins Instruction) error {
		value, err := m.operand(ins)
		if err != nil {
			return err
		}
		m.compare(register(&m.regs), value)
		return nil
	}
}

func (m *MPU) lda(ins Instruction) error { return m.load(ins, &m.regs.A) }
func (m *MPU) ldx(ins Instruction) error { return m.load(ins, &m.regs.X) }
func (m *MPU) ldy(ins Instruction) error { return m.load(ins, &m.regs.Y) }

func (m *MPU) sta(ins Instruction) error { return m.storeRegister(ins, m.regs.A) }
func (m *MPU) stx(ins Instruction) error { return m.storeRegister(ins, m.regs.X) }
func (m *MPU) sty(ins Instruction) error { return m.storeRegister(ins, m.regs.Y) }
func (m *MPU) stz(ins Instruction) error { return m.storeRegister(ins, 0) }

func (m *MPU) adc(ins Instruction) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	m.adcValue(value)
	return nil
}

func (m *MPU) sbc(ins Instruction) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	m.sbcValue(value)
	return nil
}

func (m *MPU) and(ins Instruction) error {
	return m.logical(ins, func(a, operand uint8) uint8 { return a & operand })
}

func (m *MPU) ora(ins Instruction) error {
	return m.logical(ins, func(a, operand uint8) uint8 { return a | operand })
}

func (m *MPU) eor(ins Instruction) error {
	return m.logical(ins, func(a, operand uint8) uint8 { return a ^ operand })
}

func (m *MPU) asl(ins Instruction) error {
	return m.modify(ins, func(v uint8) uint8 { return m.shiftLeft(v, false) })
}

func (m *MPU) lsr(ins Instruction) error {
	return m.modify(ins, func(v uint8) uint8 { return m.shiftRight(v, false) })
}

func (m *MPU) rol(ins Instruction) error {
	carry := m.regs.Flag(FlagCarry)
	return m.modify(ins, func(v uint8) uint8 { return m.shiftLeft(v, carry) })
}

func (m *MPU) ror(ins Instruction) error {
	carry := m.regs.Flag(FlagCarry)
	return m.modify(ins, func(v uint8) uint8 { return m.shiftRight(v, carry) })
}

func (m *MPU) inc(ins Instruction) error {
	return m.modify(ins, func(v uint8) uint8 {
		v++
		m.regs.updateZeroNegative(v)
		return v
	})
}

func (m *MPU) dec(ins Instruction) error {
	return m.modify(ins, func(v uint8) uint8 {
		v--
		m.regs.updateZeroNegative(v)
		return v
	})
}

func (m *MPU) inx(Instruction) error {
	m.regs.X++
	m.regs.updateZeroNegative(m.regs.X)
	return nil
}

func (m *MPU) iny(Instruction) error {
	m.regs.Y++
	m.regs.updateZeroNegative(m.regs.Y)
	return nil
}

func (m *MPU) dex(Instruction) error {
	m.regs.X--
	m.regs.updateZeroNegative(m.regs.X)
	return nil
}

func (m *MPU) dey(Instruction) error {
	m.regs.Y--
	m.regs.updateZeroNegative(m.regs.Y)
	return nil
}

// bit sets Z from A AND operand. Except for immediate addressing N and V are
// copied from bits 7 and 6 of the operand.
func (m *MPU) bit(ins Instruction) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	m.regs.setFlag(FlagZero, m.regs.A&value == 0)
	if ins.Mode.Category != CategoryImmediate {
		m.regs.setFlag(FlagNegative, value&0x80 != 0)
		m.regs.setFlag(FlagOverflow, value&0x40 != 0)
	}
	return nil
}

// trb clears the bits of A in memory, Z reflects A AND memory before the write.
func (m *MPU) trb(ins Instruction) error {
	return m.modify(ins, func(v uint8) uint8 {
		m.regs.setFlag(FlagZero, m.regs.A&v == 0)
		return v &^ m.regs.A
	})
}

// tsb sets the bits of A in memory, Z reflects A AND memory before the write.
func (m *MPU) tsb(ins Instruction) error {
	return m.modify(ins, func(v uint8) uint8 {
		m.regs.setFlag(FlagZero, m.regs.A&v == 0)
		return v | m.regs.A
	})
}

func (m *MPU) rmb(ins Instruction) error {
	mask := uint8(1) << bitIndex(ins.Opcode)
	return m.modify(ins, func(v uint8) uint8 { return v &^ mask })
}

func (m *MPU) smb(ins Instruction) error {
	mask := uint8(1) << bitIndex(ins.Opcode)
	return m.modify(ins, func(v uint8) uint8 { return v | mask })
}

func (m *MPU) bbr(ins Instruction) error {
	return m.branchOnBit(ins, false)
}

func (m *MPU) bbs(ins Instruction) error {
	return m.branchOnBit(ins, true)
}

// branchOnBit tests a bit of a zero page location and branches if the bit
// matches the expected state.
func (m *MPU) branchOnBit(ins Instruction, set bool) error {
	value, err := m.operand(ins)
	if err != nil {
		return err
	}
	mask := uint8(1) << bitIndex(ins.Opcode)
	if (value&mask != 0) != set {
		return nil
	}
	return m.branch(ins)
}

func (m *MPU) bra(ins Instruction) error {
	return m.branch(ins)
}

func (m *MPU) jmp(ins Instruction) error {
	return m.branch(ins)
}

// jsr pushes the address of the last byte of the JSR instruction.
func (m *MPU) jsr(ins Instruction) error {
	target, err := m.address(ins)
	if err != nil {
		return err
	}
	if err := m.pushWord(m.regs.PC - 1); err != nil {
		return err
	}
	m.regs.PC = target
	return nil
}

func (m *MPU) rts(Instruction) error {
	address, err := m.popWord()
	if err != nil {
		return err
	}
	m.regs.PC = address + 1
	return nil
}

// brk pushes the address of the opcode plus 2, skipping the signature byte.
func (m *MPU) brk(Instruction) error {
	return m.enterInterrupt(m.regs.PC+1, IRQVector, true)
}

// rti restores the status register and program counter and leaves the
// innermost running interrupt handler level.
func (m *MPU) rti(Instruction) error {
	sr, err := m.pop()
	if err != nil {
		return err
	}
	m.regs.SetSR(StatusFlags(sr))

	address, err := m.popWord()
	if err != nil {
		return err
	}
	m.regs.PC = address
	m.mask = m.mask.downgrade()
	return nil
}

func (m *MPU) wai(Instruction) error {
	m.mode = RunModeWaitingForInterrupt
	return nil
}

func (m *MPU) stp(Instruction) error {
	m.mode = RunModeStopped
	if m.logger != nil {
		m.logger.Debug("Processor stopped")
	}
	return nil
}

func (m *MPU) nop(Instruction) error {
	return nil
}

func (m *MPU) pha(Instruction) error { return m.push(m.regs.A) }
func (m *MPU) phx(Instruction) error { return m.push(m.regs.X) }
func (m *MPU) phy(Instruction) error { return m.push(m.regs.Y) }

// php pushes the status register with the break bit set.
func (m *MPU) php(Instruction) error {
	return m.push(uint8(m.regs.SR() | FlagBreak))
}

func (m *MPU) pull(register *uint8) error {
	value, err := m.pop()
	if err != nil {
		return err
	}
	*register = value
	m.regs.updateZeroNegative(value)
	return nil
}

func (m *MPU) pla(Instruction) error { return m.pull(&m.regs.A) }
func (m *MPU) plx(Instruction) error { return m.pull(&m.regs.X) }
func (m *MPU) ply(Instruction) error { return m.pull(&m.regs.Y) }

func (m *MPU) plp(Instruction) error {
	sr, err := m.pop()
	if err != nil {
		return err
	}
	m.regs.SetSR(StatusFlags(sr))
	return nil
}

func (m *MPU) transfer(value uint8, register *uint8) {
	*register = value
	m.regs.updateZeroNegative(value)
}

func (m *MPU) tax(Instruction) error { m.transfer(m.regs.A, &m.regs.X); return nil }
func (m *MPU) tay(Instruction) error { m.transfer(m.regs.A, &m.regs.Y); return nil }
func (m *MPU) txa(Instruction) error { m.transfer(m.regs.X, &m.regs.A); return nil }
func (m *MPU) tya(Instruction) error { m.transfer(m.regs.Y, &m.regs.A); return nil }
func (m *MPU) tsx(Instruction) error { m.transfer(m.regs.SP, &m.regs.X); return nil }

// txs is the only transfer that does not affect the flags.
func (m *MPU) txs(Instruction) error {
	m.regs.SP = m.regs.X
	return nil
}
