package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		maxSteps uint64
		want     Result
	}{
		{
			name: "jump to itself",
			code: []byte{0x4C, 0x00, 0x04}, // jmp $0400
			want: Result{Reason: StopTrap, PC: 0x0400, Steps: 1},
		},
		{
			name: "branch to itself",
			code: []byte{
				0xA9, 0x00, // lda #$00
				0xF0, 0xFE, // beq *
			},
			want: Result{Reason: StopTrap, PC: 0x0402, Steps: 2},
		},
		{
			name: "stop instruction",
			code: []byte{0xEA, 0xDB}, // nop, stp
			want: Result{Reason: StopStopped, PC: 0x0402, Steps: 2},
		},
		{
			name:     "step limit",
			code:     []byte{0xEA, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA},
			maxSteps: 4,
			want:     Result{Reason: StopMaxSteps, PC: 0x0404, Steps: 4},
		},
		{
			name: "wait without interrupt source",
			code: []byte{0xCB}, // wai
			want: Result{Reason: StopWaiting, PC: 0x0401, Steps: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := newTestProcessor(t, tt.code...)

			result, err := Execute(context.Background(), cpu, tt.maxSteps, false)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestExecuteCancelled(t *testing.T) {
	cpu := newTestProcessor(t, 0x4C, 0x00, 0x04)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Execute(ctx, cpu, 0, false)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), result.Steps)
}

func TestExecuteProcessorError(t *testing.T) {
	cpu := newTestProcessor(t, 0xEA, 0x03) // nop, unused opcode

	result, err := Execute(context.Background(), cpu, 0, false)
	assert.ErrorContains(t, err, "step 1")
	assert.Equal(t, uint16(0x0401), result.PC)
}

func TestStopReasonString(t *testing.T) {
	assert.Equal(t, "trap", StopTrap.String())
	assert.Equal(t, "step limit", StopMaxSteps.String())
	assert.Equal(t, "StopReason(9)", StopReason(9).String())
}
