package mpu

// Mnemonic is the semantic operation that an opcode performs.
type Mnemonic uint8

// 65C02 mnemonics. Undefined marks opcodes that are unused on the 65C02.
const (
	Undefined Mnemonic = iota
	Adc
	And
	Asl
	Bbr
	Bbs
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Bra
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Phx
	Phy
	Pla
	Plp
	Plx
	Ply
	Rmb
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Smb
	Sta
	Stp
	Stx
	Sty
	Stz
	Tax
	Tay
	Trb
	Tsb
	Tsx
	Txa
	Txs
	Tya
	Wai
)

var mnemonicNames = [...]string{
	Undefined: "???",
	Adc:       "adc",
	And:       "and",
	Asl:       "asl",
	Bbr:       "bbr",
	Bbs:       "bbs",
	Bcc:       "bcc",
	Bcs:       "bcs",
	Beq:       "beq",
	Bit:       "bit",
	Bmi:       "bmi",
	Bne:       "bne",
	Bpl:       "bpl",
	Bra:       "bra",
	Brk:       "brk",
	Bvc:       "bvc",
	Bvs:       "bvs",
	Clc:       "clc",
	Cld:       "cld",
	Cli:       "cli",
	Clv:       "clv",
	Cmp:       "cmp",
	Cpx:       "cpx",
	Cpy:       "cpy",
	Dec:       "dec",
	Dex:       "dex",
	Dey:       "dey",
	Eor:       "eor",
	Inc:       "inc",
	Inx:       "inx",
	Iny:       "iny",
	Jmp:       "jmp",
	Jsr:       "jsr",
	Lda:       "lda",
	Ldx:       "ldx",
	Ldy:       "ldy",
	Lsr:       "lsr",
	Nop:       "nop",
	Ora:       "ora",
	Pha:       "pha",
	Php:       "php",
	Phx:       "phx",
	Phy:       "phy",
	Pla:       "pla",
	Plp:       "plp",
	Plx:       "plx",
	Ply:       "ply",
	Rmb:       "rmb",
	Rol:       "rol",
	Ror:       "ror",
	Rti:       "rti",
	Rts:       "rts",
	Sbc:       "sbc",
	Sec:       "sec",
	Sed:       "sed",
	Sei:       "sei",
	Smb:       "smb",
	Sta:       "sta",
	Stp:       "stp",
	Stx:       "stx",
	Sty:       "sty",
	Stz:       "stz",
	Tax:       "tax",
	Tay:       "tay",
	Trb:       "trb",
	Tsb:       "tsb",
	Tsx:       "tsx",
	Txa:       "txa",
	Txs:       "txs",
	Tya:       "tya",
	Wai:       "wai",
}

// String returns the lower case assembler name of the mnemonic.
func (m Mnemonic) String() string {
	if int(m) >= len(mnemonicNames) {
		return mnemonicNames[Undefined]
	}
	return mnemonicNames[m]
}

// bitIndex returns the bit number that the RMB, SMB, BBR and BBS opcodes
// encode in bits 4-6 of the opcode.
func bitIndex(opcode uint8) uint8 {
	return (opcode >> 4) & 0x07
}
