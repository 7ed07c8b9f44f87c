// Package options contains the program options.
package options

// Parameters contains file and address options. Addresses accept hex
// (0x0400 or $0400) or decimal values.
type Parameters struct {
	Input         string `arg:"positional" usage:"binary image to run"`
	LoadAddress   string `flag:"l" usage:"address to load the image at" default:"0x0000"`
	StartAddress  string `flag:"pc" usage:"start address, overrides the reset vector"`
	InterruptPort string `flag:"irqport" usage:"address of the interrupt feedback port"`
	Success       string `flag:"success" usage:"address of the success trap"`
	ErrorByte     string `flag:"errbyte" usage:"address of a byte that has to be 0 after the run"`
	ROM           string `flag:"rom" usage:"read-only address range, for example 0xE000-0xFFFF"`
}

// Flags contains behavior options.
type Flags struct {
	MaxSteps uint64 `flag:"max" usage:"maximum number of steps, 0 for no limit"`
	Dump     bool   `flag:"dump" usage:"dump zero page and stack page after the run"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction"`
	Unused   bool   `flag:"unused" usage:"execute unused opcodes as no-ops"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator command.
type Program struct {
	Parameters
	Flags
}

// Emulator defines options to control an emulation run. Optional
// addresses are nil when not set.
type Emulator struct {
	LoadAddress   uint16
	StartAddress  *uint16
	InterruptPort *uint16
	Success       *uint16
	ErrorByte     *uint16
	ROM           *AddressRange

	MaxSteps    uint64
	AllowUnused bool
	Dump        bool
	Trace       bool
}

// AddressRange is an address range with both ends inclusive.
type AddressRange struct {
	Start uint16
	End   uint16
}

// NewEmulator returns a new options instance with default options.
func NewEmulator(opts Program) Emulator {
	return Emulator{
		MaxSteps:    opts.MaxSteps,
		AllowUnused: opts.Unused,
		Dump:        opts.Dump,
		Trace:       opts.Trace,
	}
}

// HasChecks returns whether any result verification is configured.
func (e Emulator) HasChecks() bool {
	return e.Success != nil || e.ErrorByte != nil
}
