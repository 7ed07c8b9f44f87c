package mpu

// AddressingCategory classifies an opcode by the way its operand is encoded,
// before any operand bytes are read.
type AddressingCategory uint8

// Addressing categories of the WDC 65C02 datasheet.
const (
	CategoryImplied                 AddressingCategory = iota // i
	CategoryAccumulator                                       // A
	CategoryStack                                             // s
	CategoryImmediate                                         // #
	CategoryAbsolute                                          // a
	CategoryAbsoluteX                                         // a,x
	CategoryAbsoluteY                                         // a,y
	CategoryAbsoluteIndirect                                  // (a)
	CategoryAbsoluteIndexedIndirect                           // (a,x)
	CategoryZeroPage                                          // zp
	CategoryZeroPageX                                         // zp,x
	CategoryZeroPageY                                         // zp,y
	CategoryZeroPageIndirect                                  // (zp)
	CategoryZeroPageIndexedIndirect                           // (zp,x)
	CategoryZeroPageIndirectIndexed                           // (zp),y
	CategoryRelative                                          // r
	CategoryZeroPageRelative                                  // zp,r
	CategoryUnused1                                           // unused, 1 byte
	CategoryUnused2                                           // unused, 2 bytes
	CategoryUnused3                                           // unused, 3 bytes

	categoryCount = iota
)

// short aliases to keep the opcode grids aligned
const (
	imp = CategoryImplied
	acc = CategoryAccumulator
	stk = CategoryStack
	imm = CategoryImmediate
	abs = CategoryAbsolute
	abx = CategoryAbsoluteX
	aby = CategoryAbsoluteY
	ind = CategoryAbsoluteIndirect
	aix = CategoryAbsoluteIndexedIndirect
	zpg = CategoryZeroPage
	zpx = CategoryZeroPageX
	zpy = CategoryZeroPageY
	zpi = CategoryZeroPageIndirect
	izx = CategoryZeroPageIndexedIndirect
	izy = CategoryZeroPageIndirectIndexed
	rel = CategoryRelative
	zpr = CategoryZeroPageRelative
	un1 = CategoryUnused1
	un2 = CategoryUnused2
	un3 = CategoryUnused3
)

var categoryNames = [categoryCount]string{
	CategoryImplied:                 "implied",
	CategoryAccumulator:             "accumulator",
	CategoryStack:                   "stack",
	CategoryImmediate:               "immediate",
	CategoryAbsolute:                "absolute",
	CategoryAbsoluteX:               "absolute,x",
	CategoryAbsoluteY:               "absolute,y",
	CategoryAbsoluteIndirect:        "(absolute)",
	CategoryAbsoluteIndexedIndirect: "(absolute,x)",
	CategoryZeroPage:                "zeropage",
	CategoryZeroPageX:               "zeropage,x",
	CategoryZeroPageY:               "zeropage,y",
	CategoryZeroPageIndirect:        "(zeropage)",
	CategoryZeroPageIndexedIndirect: "(zeropage,x)",
	CategoryZeroPageIndirectIndexed: "(zeropage),y",
	CategoryRelative:                "relative",
	CategoryZeroPageRelative:        "zeropage,relative",
	CategoryUnused1:                 "unused1",
	CategoryUnused2:                 "unused2",
	CategoryUnused3:                 "unused3",
}

// String returns the datasheet style name of the category.
func (c AddressingCategory) String() string {
	if int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Size returns the number of bytes of an instruction using this category,
// including the opcode byte.
func (c AddressingCategory) Size() uint16 {
	switch c {
	case CategoryImplied, CategoryAccumulator, CategoryStack, CategoryUnused1:
		return 1
	case CategoryAbsolute, CategoryAbsoluteX, CategoryAbsoluteY, CategoryAbsoluteIndirect,
		CategoryAbsoluteIndexedIndirect, CategoryZeroPageRelative, CategoryUnused3:
		return 3
	default:
		return 2
	}
}

// opcodeCategories maps every opcode to its addressing category.
var opcodeCategories = [256]AddressingCategory{
	/*       x0   x1   x2   x3   x4   x5   x6   x7   x8   x9   xA   xB   xC   xD   xE   xF */
	/* 0x */ stk, izx, un2, un1, zpg, zpg, zpg, zpg, stk, imm, acc, un1, abs, abs, abs, zpr,
	/* 1x */ rel, izy, zpi, un1, zpg, zpx, zpx, zpg, imp, aby, acc, un1, abs, abx, abx, zpr,
	/* 2x */ abs, izx, un2, un1, zpg, zpg, zpg, zpg, stk, imm, acc, un1, abs, abs, abs, zpr,
	/* 3x */ rel, izy, zpi, un1, zpx, zpx, zpx, zpg, imp, aby, acc, un1, abx, abx, abx, zpr,
	/* 4x */ stk, izx, un2, un1, un2, zpg, zpg, zpg, stk, imm, acc, un1, abs, abs, abs, zpr,
	/* 5x */ rel, izy, zpi, un1, un2, zpx, zpx, zpg, imp, aby, stk, un1, un3, abx, abx, zpr,
	/* 6x */ stk, izx, un2, un1, zpg, zpg, zpg, zpg, stk, imm, acc, un1, ind, abs, abs, zpr,
	/* 7x */ rel, izy, zpi, un1, zpx, zpx, zpx, zpg, imp, aby, stk, un1, aix, abx, abx, zpr,
	/* 8x */ rel, izx, un2, un1, zpg, zpg, zpg, zpg, imp, imm, imp, un1, abs, abs, abs, zpr,
	/* 9x */ rel, izy, zpi, un1, zpx, zpx, zpy, zpg, imp, aby, imp, un1, abs, abx, abx, zpr,
	/* Ax */ imm, izx, imm, un1, zpg, zpg, zpg, zpg, imp, imm, imp, un1, abs, abs, abs, zpr,
	/* Bx */ rel, izy, zpi, un1, zpx, zpx, zpy, zpg, imp, aby, imp, un1, abx, abx, aby, zpr,
	/* Cx */ imm, izx, un2, un1, zpg, zpg, zpg, zpg, imp, imm, imp, imp, abs, abs, abs, zpr,
	/* Dx */ rel, izy, zpi, un1, un2, zpx, zpx, zpg, imp, aby, stk, imp, un3, abx, abx, zpr,
	/* Ex */ imm, izx, un2, un1, zpg, zpg, zpg, zpg, imp, imm, imp, un1, abs, abs, abs, zpr,
	/* Fx */ rel, izy, zpi, un1, un2, zpx, zpx, zpg, imp, aby, stk, un1, un3, abx, abx, zpr,
}

// short aliases for the mnemonic grid
const (
	___ = Undefined
)

// opcodeMnemonics maps every opcode to its mnemonic.
var opcodeMnemonics = [256]Mnemonic{
	/*       x0   x1   x2   x3   x4   x5   x6   x7   x8   x9   xA   xB   xC   xD   xE   xF */
	/* 0x */ Brk, Ora, ___, ___, Tsb, Ora, Asl, Rmb, Php, Ora, Asl, ___, Tsb, Ora, Asl, Bbr,
	/* 1x */ Bpl, Ora, Ora, ___, Trb, Ora, Asl, Rmb, Clc, Ora, Inc, ___, Trb, Ora, Asl, Bbr,
	/* 2x */ Jsr, And, ___, ___, Bit, And, Rol, Rmb, Plp, And, Rol, ___, Bit, And, Rol, Bbr,
	/* 3x */ Bmi, And, And, ___, Bit, And, Rol, Rmb, Sec, And, Dec, ___, Bit, And, Rol, Bbr,
	/* 4x */ Rti, Eor, ___, ___, ___, Eor, Lsr, Rmb, Pha, Eor, Lsr, ___, Jmp, Eor, Lsr, Bbr,
	/* 5x */ Bvc, Eor, Eor, ___, ___, Eor, Lsr, Rmb, Cli, Eor, Phy, ___, ___, Eor, Lsr, Bbr,
	/* 6x */ Rts, Adc, ___, ___, Stz, Adc, Ror, Rmb, Pla, Adc, Ror, ___, Jmp, Adc, Ror, Bbr,
	/* 7x */ Bvs, Adc, Adc, ___, Stz, Adc, Ror, Rmb, Sei, Adc, Ply, ___, Jmp, Adc, Ror, Bbr,
	/* 8x */ Bra, Sta, ___, ___, Sty, Sta, Stx, Smb, Dey, Bit, Txa, ___, Sty, Sta, Stx, Bbs,
	/* 9x */ Bcc, Sta, Sta, ___, Sty, Sta, Stx, Smb, Tya, Sta, Txs, ___, Stz, Sta, Stz, Bbs,
	/* Ax */ Ldy, Lda, Ldx, ___, Ldy, Lda, Ldx, Smb, Tay, Lda, Tax, ___, Ldy, Lda, Ldx, Bbs,
	/* Bx */ Bcs, Lda, Lda, ___, Ldy, Lda, Ldx, Smb, Clv, Lda, Tsx, ___, Ldy, Lda, Ldx, Bbs,
	/* Cx */ Cpy, Cmp, ___, ___, Cpy, Cmp, Dec, Smb, Iny, Cmp, Dex, Wai, Cpy, Cmp, Dec, Bbs,
	/* Dx */ Bne, Cmp, Cmp, ___, ___, Cmp, Dec, Smb, Cld, Cmp, Phx, Stp, ___, Cmp, Dec, Bbs,
	/* Ex */ Cpx, Sbc, ___, ___, Cpx, Sbc, Inc, Smb, Inx, Sbc, Nop, ___, Cpx, Sbc, Inc, Bbs,
	/* Fx */ Beq, Sbc, Sbc, ___, ___, Sbc, Inc, Smb, Sed, Sbc, Plx, ___, ___, Sbc, Inc, Bbs,
}

// MnemonicOf returns the mnemonic of an opcode.
func MnemonicOf(opcode uint8) Mnemonic {
	return opcodeMnemonics[opcode]
}

// CategoryOf returns the addressing category of an opcode.
func CategoryOf(opcode uint8) AddressingCategory {
	return opcodeCategories[opcode]
}

// OpcodesByCategory groups all opcodes by their addressing category.
func OpcodesByCategory() map[AddressingCategory][]uint8 {
	groups := make(map[AddressingCategory][]uint8, categoryCount)
	for i, category := range opcodeCategories {
		groups[category] = append(groups[category], uint8(i))
	}
	return groups
}

// IsUnused returns whether the opcode is not assigned to an instruction.
func IsUnused(opcode uint8) bool {
	switch opcodeCategories[opcode] {
	case CategoryUnused1, CategoryUnused2, CategoryUnused3:
		return true
	default:
		return false
	}
}
