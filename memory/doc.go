// Package memory provides memory implementations for the 65C02 core.
//
// RAM is a flat 64 KiB address space. ROM and InterruptPort wrap another
// memory and intercept accesses to a part of the address space, so they
// can be stacked on top of a RAM to build a small test system:
//
//	ram := memory.NewRAM()
//	port := memory.NewInterruptPort(ram, 0xBFFC)
//	cpu := mpu.New(port, mpu.Config{}, port)
package memory
