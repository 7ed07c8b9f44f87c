package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retro65c02/memory"
	"github.com/retroenv/retro65c02/mpu"
	"github.com/retroenv/retrogolib/assert"
)

const testStart = 0x0400

// newTestProcessor returns a processor running the code at testStart.
func newTestProcessor(t *testing.T, code ...byte) *mpu.MPU {
	t.Helper()
	ram := memory.NewRAM()
	assert.NoError(t, ram.Load(mpu.ResetVector, []byte{testStart & 0xFF, testStart >> 8}))
	assert.NoError(t, ram.Load(testStart, code))

	cpu := mpu.New(ram, mpu.Config{})
	assert.NoError(t, cpu.Reset())
	return cpu
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
