// Package verification verifies the result of a finished emulation run.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/retro65c02/internal/options"
	"github.com/retroenv/retro65c02/mpu"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrUnexpectedTrap is returned when the run did not end at the success trap.
	ErrUnexpectedTrap = errors.New("unexpected trap address")
	// ErrErrorByteSet is returned when the error byte is not 0 after the run.
	ErrErrorByteSet = errors.New("error byte is set")
)

// VerifyResult checks the final program counter against the success trap
// and the error byte in memory, depending on which checks are configured.
func VerifyResult(logger *log.Logger, opts options.Emulator, pc uint16, mem mpu.Memory) error {
	var errs []error

	if opts.Success != nil {
		if err := checkTrap(logger, *opts.Success, pc); err != nil {
			errs = append(errs, err)
		}
	}

	if opts.ErrorByte != nil {
		if err := checkErrorByte(logger, *opts.ErrorByte, mem); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func checkTrap(logger *log.Logger, expected, pc uint16) error {
	if pc == expected {
		return nil
	}

	logger.Error("Trap address mismatch",
		log.Hex("expected", expected),
		log.Hex("got", pc))
	return fmt.Errorf("%w: expected %04x but got %04x", ErrUnexpectedTrap, expected, pc)
}

func checkErrorByte(logger *log.Logger, address uint16, mem mpu.Memory) error {
	value, err := mem.Read(address)
	if err != nil {
		return fmt.Errorf("reading error byte at address %04x: %w", address, err)
	}
	if value == 0 {
		return nil
	}

	logger.Error("Error byte set",
		log.Hex("address", address),
		log.Hex("value", value))
	return fmt.Errorf("%w: %02x at address %04x", ErrErrorByteSet, value, address)
}
