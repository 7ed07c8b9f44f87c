package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retro65c02/memory"
	"github.com/retroenv/retro65c02/mpu"
	"golang.org/x/term"
)

const defaultBytesPerLine = 16

// dumpBytesPerLine returns the widest dump line layout that fits into the
// terminal width of stdout.
func dumpBytesPerLine() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultBytesPerLine
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return defaultBytesPerLine
	}
	return bytesPerLineForWidth(width)
}

// bytesPerLineForWidth returns 8, 16 or 32 depending on how many bytes fit
// behind the "xxxx:" address prefix, each byte taking 3 columns.
func bytesPerLineForWidth(width int) int {
	fit := (width - 5) / 3
	switch {
	case fit >= 32:
		return 32
	case fit >= 16:
		return 16
	default:
		return 8
	}
}

// dumpState writes the registers, the zero page and the stack page.
func dumpState(w io.Writer, cpu *mpu.MPU, mem mpu.Memory, perLine int) error {
	regs := cpu.Registers()
	if _, err := fmt.Fprintf(w, "%s\n\nzero page:\n", regs); err != nil {
		return fmt.Errorf("writing registers: %w", err)
	}
	if err := memory.Dump(w, mem, 0x0000, 0x00FF, perLine); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nstack page:\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return memory.Dump(w, mem, mpu.StackBase, mpu.StackBase+0xFF, perLine)
}
