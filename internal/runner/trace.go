package runner

import (
	"github.com/retroenv/retro65c02/mpu"
	"github.com/retroenv/retrogolib/log"
)

// traceObserver logs every executed instruction at debug level together
// with the registers after its execution.
type traceObserver struct {
	logger *log.Logger
	cpu    *mpu.MPU
}

func (o *traceObserver) InstructionExecuted(pc uint16, ins mpu.Instruction) {
	regs := o.cpu.Registers()
	o.logger.Debug("Executed",
		log.Hex("pc", pc),
		log.String("instruction", ins.String()),
		log.String("registers", regs.String()))
}
