// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retro65c02/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulator{}, err
	}
	opts.Input = args[0]

	emulatorOptions, err := createEmulatorOptions(opts)
	if err != nil {
		return opts, options.Emulator{}, err
	}
	return opts, emulatorOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retro65c02 [options] <binary image>\n\n")
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the binary image, please pass the image as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one binary image can be run, got %d", len(args)),
		}
	}
	return nil
}

// createEmulatorOptions converts the address parameters of the program options
func createEmulatorOptions(opts options.Program) (options.Emulator, error) {
	emulatorOptions := options.NewEmulator(opts)

	load, err := ParseAddress(opts.LoadAddress)
	if err != nil {
		return options.Emulator{}, fmt.Errorf("parsing load address: %w", err)
	}
	emulatorOptions.LoadAddress = load

	optional := []struct {
		name   string
		value  string
		target **uint16
	}{
		{"start address", opts.StartAddress, &emulatorOptions.StartAddress},
		{"interrupt port address", opts.InterruptPort, &emulatorOptions.InterruptPort},
		{"success trap address", opts.Success, &emulatorOptions.Success},
		{"error byte address", opts.ErrorByte, &emulatorOptions.ErrorByte},
	}
	for _, param := range optional {
		if param.value == "" {
			continue
		}
		address, err := ParseAddress(param.value)
		if err != nil {
			return options.Emulator{}, fmt.Errorf("parsing %s: %w", param.name, err)
		}
		*param.target = &address
	}

	if opts.ROM != "" {
		rom, err := ParseAddressRange(opts.ROM)
		if err != nil {
			return options.Emulator{}, fmt.Errorf("parsing read-only range: %w", err)
		}
		emulatorOptions.ROM = &rom
	}

	return emulatorOptions, nil
}

// ParseAddressRange parses an inclusive address range in the form start-end.
func ParseAddressRange(s string) (options.AddressRange, error) {
	startValue, endValue, ok := strings.Cut(s, "-")
	if !ok {
		return options.AddressRange{}, fmt.Errorf("invalid address range '%s': missing '-'", s)
	}

	start, err := ParseAddress(startValue)
	if err != nil {
		return options.AddressRange{}, err
	}
	end, err := ParseAddress(endValue)
	if err != nil {
		return options.AddressRange{}, err
	}
	if end < start {
		return options.AddressRange{}, fmt.Errorf("invalid address range '%s': end before start", s)
	}
	return options.AddressRange{Start: start, End: end}, nil
}

// ParseAddress parses a 16 bit address given as hex with a 0x or $ prefix,
// or as decimal number.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	}

	value, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(value), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.LoadAddress, "l", "0x0000", "address to load the binary image at")
	flags.StringVar(&opts.StartAddress, "pc", "", "start address, the reset vector is used if not set")
	flags.StringVar(&opts.InterruptPort, "irqport", "", "address of the interrupt feedback port, bit 0 raises IRQ and bit 1 raises NMI")
	flags.StringVar(&opts.Success, "success", "", "address of the success trap, the run fails if it traps anywhere else")
	flags.StringVar(&opts.ErrorByte, "errbyte", "", "address of a byte that has to be 0 after the run")
	flags.StringVar(&opts.ROM, "rom", "", "read-only address range start-end, writes into it fail the run")
	flags.Uint64Var(&opts.MaxSteps, "max", 0, "maximum number of steps to run, 0 for no limit")
	flags.BoolVar(&opts.Dump, "dump", false, "dump zero page and stack page after the run")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Unused, "unused", false, "execute unused opcodes as no-ops instead of failing")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
