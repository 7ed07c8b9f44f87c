package mpu

import "github.com/retroenv/retrogolib/log"

// Observer is notified after every executed instruction.
type Observer interface {
	// InstructionExecuted is called with the address that the instruction
	// was fetched from.
	InstructionExecuted(pc uint16, ins Instruction)
}

// Config controls optional behavior of the processor.
type Config struct {
	// AllowUnusedOpcodes executes unused opcodes as no-ops of their
	// documented size instead of failing with ErrUndefinedInstruction.
	AllowUnusedOpcodes bool

	Logger   *log.Logger // optional
	Observer Observer    // optional
}
