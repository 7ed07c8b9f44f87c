package memory

import "errors"

var errMockMemory = errors.New("mock memory failure")

// failingMemory fails every access.
type failingMemory struct{}

func (failingMemory) Read(uint16) (uint8, error) {
	return 0, errMockMemory
}

func (failingMemory) Write(uint16, uint8) error {
	return errMockMemory
}
