// Package runner handles the emulation workflow of a binary image
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retro65c02/internal/config"
	"github.com/retroenv/retro65c02/internal/loader"
	"github.com/retroenv/retro65c02/internal/options"
	"github.com/retroenv/retro65c02/internal/verification"
	"github.com/retroenv/retro65c02/memory"
	"github.com/retroenv/retro65c02/mpu"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the image of the program options, runs it until it traps, stops
// or reaches the step limit and verifies the result.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, emulatorOptions options.Emulator, out io.Writer) error {
	ram := memory.NewRAM()
	size, err := loader.New().Load(opts.Input, ram, emulatorOptions.LoadAddress)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	logger.Info("Loaded image",
		log.String("file", opts.Input),
		log.Hex("address", emulatorOptions.LoadAddress),
		log.Int("size", size))

	sys, err := newSystem(logger, ram, emulatorOptions)
	if err != nil {
		return fmt.Errorf("setting up system: %w", err)
	}

	result, err := Execute(ctx, sys.cpu, emulatorOptions.MaxSteps, sys.canWake())
	if err != nil {
		return fmt.Errorf("running image: %w", err)
	}
	logger.Info("Run finished",
		log.Stringer("reason", result.Reason),
		log.Hex("pc", result.PC),
		log.Int("steps", int(result.Steps)))

	if emulatorOptions.Dump {
		if err := dumpState(out, sys.cpu, sys.memory, dumpBytesPerLine()); err != nil {
			return fmt.Errorf("dumping memory: %w", err)
		}
	}

	if !emulatorOptions.HasChecks() {
		return nil
	}
	if err := verification.VerifyResult(logger, emulatorOptions, result.PC, sys.memory); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	logger.Info("Verification successful")
	return nil
}

// system is a processor with its memory, an optional read-only window and
// an optional interrupt port.
type system struct {
	cpu    *mpu.MPU
	memory mpu.Memory
	port   *memory.InterruptPort
}

func newSystem(logger *log.Logger, ram *memory.RAM, opts options.Emulator) (*system, error) {
	sys := &system{memory: ram}

	if opts.ROM != nil {
		sys.memory = memory.NewROM(sys.memory, opts.ROM.Start, opts.ROM.End)
	}

	var sources []mpu.Interrupting
	if opts.InterruptPort != nil {
		sys.port = memory.NewInterruptPort(sys.memory, *opts.InterruptPort)
		sys.memory = sys.port
		sources = append(sources, sys.port)
	}

	// the tracer reads the registers of the processor it observes
	var observer mpu.Observer
	tracer := &traceObserver{logger: logger}
	if opts.Trace {
		observer = tracer
	}

	sys.cpu = mpu.New(sys.memory, config.CreateProcessorConfig(logger, opts, observer), sources...)
	tracer.cpu = sys.cpu

	if err := sys.cpu.Reset(); err != nil {
		return nil, fmt.Errorf("resetting processor: %w", err)
	}

	if opts.StartAddress != nil {
		regs := sys.cpu.Registers()
		regs.PC = *opts.StartAddress
		sys.cpu.SetRegisters(regs)
	}
	return sys, nil
}

// canWake returns whether anything can end a wait for interrupt.
func (s *system) canWake() bool {
	return s.port != nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retro65c02", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
