// Package mpu provides an instruction-stepped emulation core for the WDC 65C02
// microprocessor.
//
// # Overview
//
// The core fetches, decodes and executes one instruction per Tick call against a
// host supplied Memory. Register and status flag state is kept bit compatible with
// real hardware, including decimal mode arithmetic and interrupt entry and exit.
//
// # Memory
//
// The host implements the Memory interface. Reads and writes may fail, errors are
// returned unchanged (wrapped with context) from Tick. Word helpers read and write
// little-endian values without any page wraparound; only the zero page addressing
// modes model wraparound explicitly.
//
// # Interrupts
//
// Interrupt raising peripherals implement Interrupting. All sources are polled once
// per Tick. A non-maskable request is always serviced unless an NMI handler is
// already running, a maskable request only when the I flag is clear and no IRQ
// handler is running. An NMI can preempt a running IRQ handler; RTI returns to the
// previous handler level.
//
// # Run modes
//
//   - RunModeNormal: every Tick executes one instruction or enters an interrupt
//   - RunModeWaitingForInterrupt: entered by WAI, left on any interrupt request
//   - RunModeStopped: entered by STP, left only by Reset
//
// # Usage Example
//
//	ram := memory.NewRAM()
//	cpu := mpu.New(ram, mpu.Config{})
//	if err := cpu.Reset(); err != nil {
//		return fmt.Errorf("resetting cpu: %w", err)
//	}
//	for cpu.RunMode() != mpu.RunModeStopped {
//		if err := cpu.Tick(); err != nil {
//			return fmt.Errorf("executing instruction: %w", err)
//		}
//	}
//
// # Limitations
//
//   - No cycle counting, the engine is instruction stepped
//   - No bus level signal emulation
//   - Unused opcodes either fail or execute as sized no-ops, see Config
package mpu
