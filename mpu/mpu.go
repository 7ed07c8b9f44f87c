package mpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// MPU is an instruction stepped 65C02 processor.
// It is not safe for concurrent use.
type MPU struct {
	memory   Memory
	sources  []Interrupting
	logger   *log.Logger
	observer Observer

	allowUnused  bool
	warnedUnused [256]bool

	regs Registers
	mode RunMode
	mask InterruptMask
}

// New returns a new processor that uses the given memory and polls the
// given interrupt sources. Reset has to be called before the first Tick.
func New(memory Memory, cfg Config, sources ...Interrupting) *MPU {
	return &MPU{
		memory:      memory,
		sources:     sources,
		logger:      cfg.Logger,
		observer:    cfg.Observer,
		allowUnused: cfg.AllowUnusedOpcodes,
	}
}

// Reset loads the program counter from the reset vector and initializes
// the registers. The interrupt disable flag is left clear.
func (m *MPU) Reset() error {
	pc, err := ReadWord(m.memory, ResetVector)
	if err != nil {
		return fmt.Errorf("reading reset vector: %w", err)
	}

	m.regs = Registers{
		SP: 0xFF,
		PC: pc,
	}
	m.regs.SetSR(0)
	m.mode = RunModeNormal
	m.mask = 0

	if m.logger != nil {
		m.logger.Debug("Reset", log.Hex("pc", pc))
	}
	return nil
}

// Tick advances the processor by one step. Depending on the run mode and
// the pending interrupt requests this either enters an interrupt handler,
// executes one instruction or does nothing.
func (m *MPU) Tick() error {
	if m.mode == RunModeStopped {
		return nil
	}

	nmi, irq := m.pollInterrupts()
	if m.mode == RunModeWaitingForInterrupt && (nmi || irq) {
		m.mode = RunModeNormal
	}

	switch {
	case nmi && !m.mask.Has(MaskNMI):
		return m.serviceInterrupt(InterruptNonMaskable)

	case irq && !m.regs.Flag(FlagInterruptDisable) && !m.mask.Has(MaskIRQ):
		return m.serviceInterrupt(InterruptMaskable)
	}

	if m.mode != RunModeNormal {
		return nil
	}

	pc := m.regs.PC
	ins, err := m.Fetch()
	if err != nil {
		return err
	}
	if err := m.Execute(ins); err != nil {
		return err
	}

	if m.observer != nil {
		m.observer.InstructionExecuted(pc, ins)
	}
	return nil
}

// Fetch decodes the instruction at the program counter and advances the
// program counter past it.
func (m *MPU) Fetch() (Instruction, error) {
	ins, err := decode(m.memory, &m.regs)
	if err != nil {
		return Instruction{}, fmt.Errorf("fetching instruction at %04x: %w", m.regs.PC, err)
	}
	m.regs.PC += ins.Size()
	return ins, nil
}

// Execute executes a decoded instruction. The program counter is expected to
// point behind the instruction already, as Fetch leaves it.
func (m *MPU) Execute(ins Instruction) error {
	if ins.Mnemonic == Undefined {
		return m.executeUnused(ins)
	}

	handler := opcodeHandlers[ins.Opcode]
	if err := handler(m, ins); err != nil {
		return fmt.Errorf("executing %s: %w", ins, err)
	}
	return nil
}

func (m *MPU) executeUnused(ins Instruction) error {
	if !m.allowUnused {
		return fmt.Errorf("opcode %02x: %w", ins.Opcode, ErrUndefinedInstruction)
	}

	if m.logger != nil && !m.warnedUnused[ins.Opcode] {
		m.warnedUnused[ins.Opcode] = true
		m.logger.Warn("Executing unused opcode as no-op",
			log.Hex("opcode", ins.Opcode),
			log.Uint16("size", ins.Size()))
	}
	return nil
}

// Registers returns a copy of the register file.
func (m *MPU) Registers() Registers {
	return m.regs
}

// SetRegisters replaces the register file. The invariant status register
// bits are masked in.
func (m *MPU) SetRegisters(regs Registers) {
	regs.SetSR(regs.sr)
	m.regs = regs
}

// RunMode returns the current run mode.
func (m *MPU) RunMode() RunMode {
	return m.mode
}

// InterruptMask returns the interrupt classes whose handlers are running.
func (m *MPU) InterruptMask() InterruptMask {
	return m.mask
}
