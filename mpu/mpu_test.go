package mpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestReset(t *testing.T) {
	cpu, _ := newTestMPU(t)

	regs := cpu.Registers()
	assert.Equal(t, uint16(testResetAddress), regs.PC)
	assert.Equal(t, uint8(0xFF), regs.SP)
	assert.Equal(t, uint8(0), regs.A)
	assert.Equal(t, uint8(0), regs.X)
	assert.Equal(t, uint8(0), regs.Y)
	assert.Equal(t, invariantFlags, regs.SR())
	assert.Equal(t, RunModeNormal, cpu.RunMode())
	assert.Equal(t, uint16(0x01FF), regs.StackAddress())
}

func TestResetMemoryError(t *testing.T) {
	mem := newTestMemory()
	mem.failRead[ResetVector+1] = true
	cpu := New(mem, Config{})

	err := cpu.Reset()
	assert.ErrorContains(t, err, "reading reset vector")
	assert.True(t, errors.Is(err, errMockMemory))
}

func TestFetch(t *testing.T) {
	cpu, _ := newTestMPU(t)

	ins, err := cpu.Fetch()
	assert.NoError(t, err)
	assert.Equal(t, uint16(testResetAddress+1), cpu.regs.PC)
	assert.Equal(t, Nop, ins.Mnemonic)
	assert.Equal(t, uint16(1), ins.Size())
}

func TestSimpleProgram(t *testing.T) {
	cpu, mem := newTestMPU(t)
	mem.writeBytes(testResetAddress,
		0xA9, 0xFD, // lda #$fd
		0x69, 0x01, // loop: adc #$01
		0xD0, 0xFC, // bne loop
		0x00, // brk
	)
	mem.writeWord(IRQVector, 0x0000)

	steps := []struct {
		a        uint8
		pc       uint16
		negative bool
		zero     bool
	}{
		{0xFD, 0x8002, true, false},
		{0xFE, 0x8004, true, false},
		{0xFE, 0x8002, true, false},
		{0xFF, 0x8004, true, false},
		{0xFF, 0x8002, true, false},
		{0x00, 0x8004, false, true},
		{0x00, 0x8006, false, true},
	}
	for _, step := range steps {
		assert.NoError(t, cpu.Tick())
		assert.Equal(t, step.a, cpu.regs.A)
		assert.Equal(t, step.pc, cpu.regs.PC)
		assert.Equal(t, step.negative, cpu.regs.Flag(FlagNegative))
		assert.Equal(t, step.zero, cpu.regs.Flag(FlagZero))
	}
	assert.True(t, cpu.regs.Flag(FlagCarry))

	sr := cpu.regs.SR()
	assert.NoError(t, cpu.Tick())
	assert.Equal(t, uint16(0x0000), cpu.regs.PC)
	assert.True(t, cpu.regs.Flag(FlagInterruptDisable))

	pushed, err := cpu.pop()
	assert.NoError(t, err)
	assert.Equal(t, uint8(sr), pushed)
	ret, err := cpu.popWord()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8008), ret)
}

func TestUnusedOpcodes(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		cpu, mem := newTestMPU(t)
		mem.writeBytes(testResetAddress, 0x03)

		err := cpu.Tick()
		assert.True(t, errors.Is(err, ErrUndefinedInstruction))
		assert.ErrorContains(t, err, "opcode 03")
	})

	t.Run("executed as sized no-ops", func(t *testing.T) {
		mem := newTestMemory()
		mem.writeBytes(testResetAddress, 0x03, 0x02, 0xFF, 0x5C, 0x34, 0x12)
		cpu := New(mem, Config{AllowUnusedOpcodes: true, Logger: log.NewTestLogger(t)})
		assert.NoError(t, cpu.Reset())
		before := cpu.Registers()

		assert.NoError(t, cpu.Tick())
		assert.Equal(t, uint16(testResetAddress+1), cpu.regs.PC)
		assert.NoError(t, cpu.Tick())
		assert.Equal(t, uint16(testResetAddress+3), cpu.regs.PC)
		assert.NoError(t, cpu.Tick())
		assert.Equal(t, uint16(testResetAddress+6), cpu.regs.PC)

		after := cpu.Registers()
		after.PC = before.PC
		assert.Equal(t, before, after)
		assert.True(t, cpu.warnedUnused[0x5C])
	})
}

func TestMemoryErrorsPropagate(t *testing.T) {
	t.Run("fetch", func(t *testing.T) {
		cpu, mem := newTestMPU(t)
		mem.failRead[testResetAddress] = true

		err := cpu.Tick()
		assert.True(t, errors.Is(err, errMockMemory))
		assert.ErrorContains(t, err, "fetching instruction at 8000")
	})

	t.Run("store", func(t *testing.T) {
		cpu, mem := newTestMPU(t)
		mem.writeBytes(testResetAddress, 0x8D, 0x00, 0xC0) // sta $c000
		mem.failWrite[0xC000] = true

		err := cpu.Tick()
		assert.True(t, errors.Is(err, errMockMemory))
		assert.ErrorContains(t, err, "writing memory at address c000")
	})

	t.Run("stack", func(t *testing.T) {
		cpu, mem := newTestMPU(t)
		mem.writeBytes(testResetAddress, 0x48) // pha
		mem.failWrite[0x01FF] = true

		err := cpu.Tick()
		assert.True(t, errors.Is(err, errMockMemory))
		assert.Equal(t, uint8(0xFF), cpu.regs.SP)
	})
}

func TestObserver(t *testing.T) {
	mem := newTestMemory()
	mem.writeBytes(testResetAddress, 0xA9, 0x10, 0xEA)
	observer := &testObserver{}
	cpu := New(mem, Config{Observer: observer})
	assert.NoError(t, cpu.Reset())

	assert.NoError(t, cpu.Tick())
	assert.NoError(t, cpu.Tick())

	assert.Equal(t, []uint16{0x8000, 0x8002}, observer.executed)
	assert.Equal(t, []string{"lda #$10", "nop"}, observer.names)
}

func TestSetRegisters(t *testing.T) {
	cpu, _ := newTestMPU(t)

	regs := Registers{A: 1, X: 2, Y: 3, SP: 0x80, PC: 0x1234}
	regs.SetSR(FlagCarry)
	cpu.SetRegisters(regs)

	got := cpu.Registers()
	assert.Equal(t, uint16(0x1234), got.PC)
	assert.Equal(t, FlagCarry|invariantFlags, got.SR())

	// registers built without SetSR still report the invariant bits
	cpu.SetRegisters(Registers{PC: 0x4000})
	got = cpu.Registers()
	assert.Equal(t, invariantFlags, got.SR())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "NV-B...C", (FlagNegative | FlagOverflow | FlagAlwaysSet | FlagBreak | FlagCarry).String())
	assert.Equal(t, "........", StatusFlags(0).String())

	regs := Registers{A: 0x12, X: 0x34, Y: 0x56, SP: 0xFD, PC: 0xC000}
	assert.Equal(t, "A:12 X:34 Y:56 SP:FD PC:C000 SR:..-B....", regs.String())

	assert.Equal(t, "irq", InterruptMaskable.String())
	assert.Equal(t, "waiting", RunModeWaitingForInterrupt.String())
	assert.Equal(t, "[irq nmi]", (MaskIRQ | MaskNMI).String())
	assert.Equal(t, "(zeropage),y", CategoryZeroPageIndirectIndexed.String())
}
