package mpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const testResetAddress = 0x8000

var errMockMemory = errors.New("mock memory failure")

// testMemory returns NOP for every address that has not been written.
type testMemory struct {
	data      map[uint16]uint8
	failRead  map[uint16]bool
	failWrite map[uint16]bool
}

func newTestMemory() *testMemory {
	return &testMemory{
		data: map[uint16]uint8{
			ResetVector:     uint8(testResetAddress & 0xFF),
			ResetVector + 1: uint8(testResetAddress >> 8),
		},
		failRead:  map[uint16]bool{},
		failWrite: map[uint16]bool{},
	}
}

func (m *testMemory) Read(address uint16) (uint8, error) {
	if m.failRead[address] {
		return 0, errMockMemory
	}
	b, ok := m.data[address]
	if !ok {
		return 0xEA, nil
	}
	return b, nil
}

func (m *testMemory) Write(address uint16, data uint8) error {
	if m.failWrite[address] {
		return errMockMemory
	}
	m.data[address] = data
	return nil
}

func (m *testMemory) writeBytes(address uint16, data ...uint8) {
	for i, b := range data {
		m.data[address+uint16(i)] = b
	}
}

func (m *testMemory) writeWord(address, word uint16) {
	m.writeBytes(address, uint8(word), uint8(word>>8))
}

// testInterruptor asserts whatever status it is set to.
type testInterruptor struct {
	status InterruptStatus
}

func (i *testInterruptor) InterruptStatus() InterruptStatus {
	return i.status
}

type testObserver struct {
	executed []uint16
	names    []string
}

func (o *testObserver) InstructionExecuted(pc uint16, ins Instruction) {
	o.executed = append(o.executed, pc)
	o.names = append(o.names, ins.String())
}

func newTestMPU(t *testing.T, sources ...Interrupting) (*MPU, *testMemory) {
	t.Helper()
	mem := newTestMemory()
	cpu := New(mem, Config{}, sources...)
	assert.NoError(t, cpu.Reset())
	return cpu, mem
}

// execute writes an instruction at the program counter, fetches and
// executes it.
func execute(t *testing.T, cpu *MPU, mem *testMemory, code ...uint8) Instruction {
	t.Helper()
	mem.writeBytes(cpu.regs.PC, code...)
	ins, err := cpu.Fetch()
	assert.NoError(t, err)
	assert.NoError(t, cpu.Execute(ins))
	return ins
}

func setFlags(cpu *MPU, flags StatusFlags) {
	cpu.regs.SetSR(flags)
}
