package runner

import (
	"context"
	"fmt"

	"github.com/retroenv/retro65c02/mpu"
)

// cancelCheckInterval is the number of steps between context checks.
const cancelCheckInterval = 1024

// StopReason describes why a run ended.
type StopReason uint8

// Reasons for the end of a run.
const (
	StopTrap     StopReason = iota // an instruction jumped to itself
	StopStopped                    // STP was executed
	StopMaxSteps                   // the step limit was reached
	StopWaiting                    // WAI was executed with no interrupt source attached
)

func (s StopReason) String() string {
	switch s {
	case StopTrap:
		return "trap"
	case StopStopped:
		return "stopped"
	case StopMaxSteps:
		return "step limit"
	case StopWaiting:
		return "waiting"
	default:
		return fmt.Sprintf("StopReason(%d)", uint8(s))
	}
}

// Result of a run.
type Result struct {
	Reason StopReason
	PC     uint16
	Steps  uint64
}

// Execute ticks the processor until an instruction traps, the processor
// stops or maxSteps ticks were done. A maxSteps of 0 runs without limit.
// canWake reports whether an interrupt source can end a wait for interrupt.
func Execute(ctx context.Context, cpu *mpu.MPU, maxSteps uint64, canWake bool) (Result, error) {
	var steps uint64

	for {
		regs := cpu.Registers()
		pc := regs.PC

		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{PC: pc, Steps: steps}, fmt.Errorf("after %d steps: %w", steps, err)
			}
		}
		if maxSteps > 0 && steps >= maxSteps {
			return Result{Reason: StopMaxSteps, PC: pc, Steps: steps}, nil
		}

		if err := cpu.Tick(); err != nil {
			return Result{PC: pc, Steps: steps}, fmt.Errorf("step %d: %w", steps, err)
		}
		steps++

		regs = cpu.Registers()
		switch cpu.RunMode() {
		case mpu.RunModeStopped:
			return Result{Reason: StopStopped, PC: regs.PC, Steps: steps}, nil

		case mpu.RunModeWaitingForInterrupt:
			if !canWake {
				return Result{Reason: StopWaiting, PC: regs.PC, Steps: steps}, nil
			}

		case mpu.RunModeNormal:
			if regs.PC == pc {
				return Result{Reason: StopTrap, PC: pc, Steps: steps}, nil
			}
		}
	}
}
