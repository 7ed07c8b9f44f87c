package mpu

import "errors"

var (
	// ErrUndefinedInstruction is returned when an unused opcode is fetched and
	// the configuration does not allow executing unused opcodes.
	ErrUndefinedInstruction = errors.New("undefined instruction")

	// ErrNoAssociatedValue is returned when the value of an addressing mode is
	// requested that has no operand value, for example implied addressing.
	ErrNoAssociatedValue = errors.New("addressing mode has no associated value")

	// ErrNoResolvedAddress is returned when the address of an addressing mode is
	// requested that does not reference memory, for example immediate addressing.
	ErrNoResolvedAddress = errors.New("addressing mode has no resolved address")
)
