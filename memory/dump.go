package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retro65c02/mpu"
)

// Dump writes a hex dump of the memory range from start to end, both
// inclusive, using perLine bytes per output line.
func Dump(w io.Writer, mem mpu.Memory, start, end uint16, perLine int) error {
	if perLine <= 0 {
		perLine = 16
	}

	var sb strings.Builder
	for address := int(start); address <= int(end); address += perLine {
		sb.Reset()
		fmt.Fprintf(&sb, "%04x:", address)

		for i := 0; i < perLine && address+i <= int(end); i++ {
			b, err := mem.Read(uint16(address + i))
			if err != nil {
				return fmt.Errorf("reading memory at address %04x: %w", address+i, err)
			}
			fmt.Fprintf(&sb, " %02x", b)
		}

		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
	}
	return nil
}
