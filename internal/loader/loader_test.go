package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retro65c02/memory"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load binary file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0xA9, 0x01, 0xEA})

		ram := memory.NewRAM()
		n, err := New().Load(tmpFile, ram, 0x0400)
		assert.NoError(t, err)
		assert.Equal(t, 3, n)

		b, err := ram.Read(0x0402)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0xEA), b)
	})

	t.Run("load full address space", func(t *testing.T) {
		data := make([]byte, memory.Size)
		data[0xFFFC] = 0x00
		data[0xFFFD] = 0x04
		tmpFile := createTempFile(t, data)

		ram := memory.NewRAM()
		n, err := New().Load(tmpFile, ram, 0x0000)
		assert.NoError(t, err)
		assert.Equal(t, memory.Size, n)

		b, err := ram.Read(0xFFFD)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x04), b)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.bin", memory.NewRAM(), 0)
		assert.Error(t, err)
	})

	t.Run("error on image that does not fit", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, 0x200))

		_, err := New().Load(tmpFile, memory.NewRAM(), 0xFF00)
		assert.True(t, errors.Is(err, memory.ErrImageTooLarge))
	})

	t.Run("error on image larger than the address space", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, memory.Size+10))

		_, err := New().Load(tmpFile, memory.NewRAM(), 0)
		assert.True(t, errors.Is(err, memory.ErrImageTooLarge))
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("load data", func(t *testing.T) {
		ram := memory.NewRAM()
		n, err := New().LoadFromBytes([]byte{0x12, 0x34}, ram, 0x0200)
		assert.NoError(t, err)
		assert.Equal(t, 2, n)

		b, err := ram.Read(0x0201)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x34), b)
	})

	t.Run("error on empty image", func(t *testing.T) {
		_, err := New().LoadFromBytes(nil, memory.NewRAM(), 0)
		assert.True(t, errors.Is(err, ErrEmptyImage))
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
