package mpu

// StatusFlags is the packed processor status register.
type StatusFlags uint8

// Status register bits.
const (
	FlagCarry            StatusFlags = 1 << iota // C
	FlagZero                                     // Z
	FlagInterruptDisable                         // I
	FlagDecimal                                  // D
	FlagBreak                                    // B, only ever 0 in a pushed copy
	FlagAlwaysSet                                // unused bit, reads as 1
	FlagOverflow                                 // V
	FlagNegative                                 // N
)

// invariantFlags are the bits that read as 1 whenever SR is observed live.
const invariantFlags = FlagAlwaysSet | FlagBreak

const flagLetters = "NV-BDIZC"

// Has returns whether all bits of flag are set.
func (f StatusFlags) Has(flag StatusFlags) bool {
	return f&flag == flag
}

// String returns the flags in NV-BDIZC order, clear bits are shown as a dot.
func (f StatusFlags) String() string {
	buf := []byte(flagLetters)
	for i := range buf {
		if f&(0x80>>i) == 0 {
			buf[i] = '.'
		}
	}
	return string(buf)
}
