// Package loader handles binary image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retro65c02/memory"
)

// ErrEmptyImage is returned for images without any data.
var ErrEmptyImage = errors.New("image is empty")

// Loader handles loading binary images from disk into memory.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw binary image file and copies it into the RAM at the
// given address. It returns the number of loaded bytes.
func (l *Loader) Load(fileName string, ram *memory.RAM, address uint16) (int, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file, ram, address)
}

// LoadFromReader reads a raw binary image and copies it into the RAM at
// the given address.
func (l *Loader) LoadFromReader(reader io.Reader, ram *memory.RAM, address uint16) (int, error) {
	// one byte more than fits lets Load report an oversized image
	data, err := io.ReadAll(io.LimitReader(reader, memory.Size+1))
	if err != nil {
		return 0, fmt.Errorf("reading image: %w", err)
	}

	return l.LoadFromBytes(data, ram, address)
}

// LoadFromBytes copies an image that is already in memory into the RAM.
func (l *Loader) LoadFromBytes(data []byte, ram *memory.RAM, address uint16) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyImage
	}
	if err := ram.Load(address, data); err != nil {
		return 0, fmt.Errorf("loading image: %w", err)
	}
	return len(data), nil
}
