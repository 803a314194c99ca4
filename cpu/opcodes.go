package cpu

import "reflect"

// addrModeFunc is an addressing-mode handler: it consumes 0-2 operand
// bytes from the bus (advancing PC as it goes) and returns the tagged
// addrResult an opFunc then acts on.
type addrModeFunc func(c *Chip) (addrResult, error)

// opcodeEntry is one slot of the flat 256-entry dispatch table, keyed by
// raw opcode byte: mnemonic for disassembly/diagnostics, the addressing
// mode handler, the operation handler, the total instruction length in
// bytes (derived from the mode), and the base cycle count charged before
// any addressing- or operation-supplied extra cycles.
type opcodeEntry struct {
	mnemonic string
	mode     addrModeFunc
	op       opFunc
	length   int
	cycles   int
}

func op(mnemonic string, mode addrModeFunc, fn opFunc, cycles int) opcodeEntry {
	return opcodeEntry{mnemonic: mnemonic, mode: mode, op: fn, length: modeLength(mode), cycles: cycles}
}

func funcPtr(f addrModeFunc) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// modeLength returns how many bytes (including the opcode byte itself)
// an instruction using mode occupies, used by disassembly and debugging
// tools that need to step over an instruction without executing it.
func modeLength(mode addrModeFunc) int {
	switch funcPtr(mode) {
	case funcPtr(addrIMP):
		return 1
	case funcPtr(addrIMM), funcPtr(addrZP0), funcPtr(addrZPX), funcPtr(addrZPY),
		funcPtr(addrIZX), funcPtr(addrIZY), funcPtr(addrREL):
		return 2
	default: // ABS, ABX, ABY, IND
		return 3
	}
}

// modeName returns the short mode mnemonic for mode, used by disassembly
// tools to pick an operand syntax.
func modeName(mode addrModeFunc) string {
	switch funcPtr(mode) {
	case funcPtr(addrIMP):
		return "IMP"
	case funcPtr(addrIMM):
		return "IMM"
	case funcPtr(addrZP0):
		return "ZP0"
	case funcPtr(addrZPX):
		return "ZPX"
	case funcPtr(addrZPY):
		return "ZPY"
	case funcPtr(addrABS):
		return "ABS"
	case funcPtr(addrABX):
		return "ABX"
	case funcPtr(addrABY):
		return "ABY"
	case funcPtr(addrIND):
		return "IND"
	case funcPtr(addrIZX):
		return "IZX"
	case funcPtr(addrIZY):
		return "IZY"
	case funcPtr(addrREL):
		return "REL"
	default:
		return "???"
	}
}

// Info is opcode metadata exposed for disassembly and debugging tools
// that live outside this package.
type Info struct {
	Mnemonic string
	Mode     string
	Length   int
	Cycles   int
}

// Lookup returns metadata for a raw opcode byte.
func Lookup(opcode uint8) Info {
	e := opcodeTable[opcode]
	return Info{Mnemonic: e.mnemonic, Mode: modeName(e.mode), Length: e.length, Cycles: e.cycles}
}

// opcodeTable is indexed by opcode byte 0x00-0xFF. Every slot is
// populated: the 151 documented opcodes get their real semantics, and
// every undefined byte maps to opNOP at the addressing mode and cycle
// count real 6502 silicon happens to decode it as, so an unexpected byte
// in the instruction stream advances cleanly instead of halting
// execution. The undocumented opcodes' read-modify-write side effects
// (SLO/RLA/LAX/etc.) are not reproduced, only their addressing-mode and
// cycle footprint.
var opcodeTable = [256]opcodeEntry{
	0x00: op("BRK", addrIMP, opBRK, 7),
	0x01: op("ORA", addrIZX, opORA, 6),
	0x02: op("NOP", addrIMP, opNOP, 2),
	0x03: op("NOP", addrIZX, opNOP, 8),
	0x04: op("NOP", addrZP0, opNOP, 3),
	0x05: op("ORA", addrZP0, opORA, 3),
	0x06: op("ASL", addrZP0, opASL, 5),
	0x07: op("NOP", addrZP0, opNOP, 5),
	0x08: op("PHP", addrIMP, opPHP, 3),
	0x09: op("ORA", addrIMM, opORA, 2),
	0x0A: op("ASL", addrIMP, opASL, 2),
	0x0B: op("NOP", addrIMM, opNOP, 2),
	0x0C: op("NOP", addrABS, opNOP, 4),
	0x0D: op("ORA", addrABS, opORA, 4),
	0x0E: op("ASL", addrABS, opASL, 6),
	0x0F: op("NOP", addrABS, opNOP, 6),

	0x10: op("BPL", addrREL, opBPL, 2),
	0x11: op("ORA", addrIZY, opORA, 5),
	0x12: op("NOP", addrIMP, opNOP, 2),
	0x13: op("NOP", addrIZY, opNOP, 8),
	0x14: op("NOP", addrZPX, opNOP, 4),
	0x15: op("ORA", addrZPX, opORA, 4),
	0x16: op("ASL", addrZPX, opASL, 6),
	0x17: op("NOP", addrZPX, opNOP, 6),
	0x18: op("CLC", addrIMP, opCLC, 2),
	0x19: op("ORA", addrABY, opORA, 4),
	0x1A: op("NOP", addrIMP, opNOP, 2),
	0x1B: op("NOP", addrABY, opNOP, 7),
	0x1C: op("NOP", addrABX, opNOP, 4),
	0x1D: op("ORA", addrABX, opORA, 4),
	0x1E: op("ASL", addrABX, opASL, 7),
	0x1F: op("NOP", addrABX, opNOP, 7),

	0x20: op("JSR", addrABS, opJSR, 6),
	0x21: op("AND", addrIZX, opAND, 6),
	0x22: op("NOP", addrIMP, opNOP, 2),
	0x23: op("NOP", addrIZX, opNOP, 8),
	0x24: op("BIT", addrZP0, opBIT, 3),
	0x25: op("AND", addrZP0, opAND, 3),
	0x26: op("ROL", addrZP0, opROL, 5),
	0x27: op("NOP", addrZP0, opNOP, 5),
	0x28: op("PLP", addrIMP, opPLP, 4),
	0x29: op("AND", addrIMM, opAND, 2),
	0x2A: op("ROL", addrIMP, opROL, 2),
	0x2B: op("NOP", addrIMM, opNOP, 2),
	0x2C: op("BIT", addrABS, opBIT, 4),
	0x2D: op("AND", addrABS, opAND, 4),
	0x2E: op("ROL", addrABS, opROL, 6),
	0x2F: op("NOP", addrABS, opNOP, 6),

	0x30: op("BMI", addrREL, opBMI, 2),
	0x31: op("AND", addrIZY, opAND, 5),
	0x32: op("NOP", addrIMP, opNOP, 2),
	0x33: op("NOP", addrIZY, opNOP, 8),
	0x34: op("NOP", addrZPX, opNOP, 4),
	0x35: op("AND", addrZPX, opAND, 4),
	0x36: op("ROL", addrZPX, opROL, 6),
	0x37: op("NOP", addrZPX, opNOP, 6),
	0x38: op("SEC", addrIMP, opSEC, 2),
	0x39: op("AND", addrABY, opAND, 4),
	0x3A: op("NOP", addrIMP, opNOP, 2),
	0x3B: op("NOP", addrABY, opNOP, 7),
	0x3C: op("NOP", addrABX, opNOP, 4),
	0x3D: op("AND", addrABX, opAND, 4),
	0x3E: op("ROL", addrABX, opROL, 7),
	0x3F: op("NOP", addrABX, opNOP, 7),

	0x40: op("RTI", addrIMP, opRTI, 6),
	0x41: op("EOR", addrIZX, opEOR, 6),
	0x42: op("NOP", addrIMP, opNOP, 2),
	0x43: op("NOP", addrIZX, opNOP, 8),
	0x44: op("NOP", addrZP0, opNOP, 3),
	0x45: op("EOR", addrZP0, opEOR, 3),
	0x46: op("LSR", addrZP0, opLSR, 5),
	0x47: op("NOP", addrZP0, opNOP, 5),
	0x48: op("PHA", addrIMP, opPHA, 3),
	0x49: op("EOR", addrIMM, opEOR, 2),
	0x4A: op("LSR", addrIMP, opLSR, 2),
	0x4B: op("NOP", addrIMM, opNOP, 2),
	0x4C: op("JMP", addrABS, opJMP, 3),
	0x4D: op("EOR", addrABS, opEOR, 4),
	0x4E: op("LSR", addrABS, opLSR, 6),
	0x4F: op("NOP", addrABS, opNOP, 6),

	0x50: op("BVC", addrREL, opBVC, 2),
	0x51: op("EOR", addrIZY, opEOR, 5),
	0x52: op("NOP", addrIMP, opNOP, 2),
	0x53: op("NOP", addrIZY, opNOP, 8),
	0x54: op("NOP", addrZPX, opNOP, 4),
	0x55: op("EOR", addrZPX, opEOR, 4),
	0x56: op("LSR", addrZPX, opLSR, 6),
	0x57: op("NOP", addrZPX, opNOP, 6),
	0x58: op("CLI", addrIMP, opCLI, 2),
	0x59: op("EOR", addrABY, opEOR, 4),
	0x5A: op("NOP", addrIMP, opNOP, 2),
	0x5B: op("NOP", addrABY, opNOP, 7),
	0x5C: op("NOP", addrABX, opNOP, 4),
	0x5D: op("EOR", addrABX, opEOR, 4),
	0x5E: op("LSR", addrABX, opLSR, 7),
	0x5F: op("NOP", addrABX, opNOP, 7),

	0x60: op("RTS", addrIMP, opRTS, 6),
	0x61: op("ADC", addrIZX, opADC, 6),
	0x62: op("NOP", addrIMP, opNOP, 2),
	0x63: op("NOP", addrIZX, opNOP, 8),
	0x64: op("NOP", addrZP0, opNOP, 3),
	0x65: op("ADC", addrZP0, opADC, 3),
	0x66: op("ROR", addrZP0, opROR, 5),
	0x67: op("NOP", addrZP0, opNOP, 5),
	0x68: op("PLA", addrIMP, opPLA, 4),
	0x69: op("ADC", addrIMM, opADC, 2),
	0x6A: op("ROR", addrIMP, opROR, 2),
	0x6B: op("NOP", addrIMM, opNOP, 2),
	0x6C: op("JMP", addrIND, opJMP, 5),
	0x6D: op("ADC", addrABS, opADC, 4),
	0x6E: op("ROR", addrABS, opROR, 6),
	0x6F: op("NOP", addrABS, opNOP, 6),

	0x70: op("BVS", addrREL, opBVS, 2),
	0x71: op("ADC", addrIZY, opADC, 5),
	0x72: op("NOP", addrIMP, opNOP, 2),
	0x73: op("NOP", addrIZY, opNOP, 8),
	0x74: op("NOP", addrZPX, opNOP, 4),
	0x75: op("ADC", addrZPX, opADC, 4),
	0x76: op("ROR", addrZPX, opROR, 6),
	0x77: op("NOP", addrZPX, opNOP, 6),
	0x78: op("SEI", addrIMP, opSEI, 2),
	0x79: op("ADC", addrABY, opADC, 4),
	0x7A: op("NOP", addrIMP, opNOP, 2),
	0x7B: op("NOP", addrABY, opNOP, 7),
	0x7C: op("NOP", addrABX, opNOP, 4),
	0x7D: op("ADC", addrABX, opADC, 4),
	0x7E: op("ROR", addrABX, opROR, 7),
	0x7F: op("NOP", addrABX, opNOP, 7),

	0x80: op("NOP", addrIMM, opNOP, 2),
	0x81: op("STA", addrIZX, opSTA, 6),
	0x82: op("NOP", addrIMM, opNOP, 2),
	0x83: op("NOP", addrIZX, opNOP, 6),
	0x84: op("STY", addrZP0, opSTY, 3),
	0x85: op("STA", addrZP0, opSTA, 3),
	0x86: op("STX", addrZP0, opSTX, 3),
	0x87: op("NOP", addrZP0, opNOP, 3),
	0x88: op("DEY", addrIMP, opDEY, 2),
	0x89: op("NOP", addrIMM, opNOP, 2),
	0x8A: op("TXA", addrIMP, opTXA, 2),
	0x8B: op("NOP", addrIMM, opNOP, 2),
	0x8C: op("STY", addrABS, opSTY, 4),
	0x8D: op("STA", addrABS, opSTA, 4),
	0x8E: op("STX", addrABS, opSTX, 4),
	0x8F: op("NOP", addrABS, opNOP, 4),

	0x90: op("BCC", addrREL, opBCC, 2),
	0x91: op("STA", addrIZY, opSTA, 6),
	0x92: op("NOP", addrIMP, opNOP, 2),
	0x93: op("NOP", addrIZY, opNOP, 6),
	0x94: op("STY", addrZPX, opSTY, 4),
	0x95: op("STA", addrZPX, opSTA, 4),
	0x96: op("STX", addrZPY, opSTX, 4),
	0x97: op("NOP", addrZPY, opNOP, 4),
	0x98: op("TYA", addrIMP, opTYA, 2),
	0x99: op("STA", addrABY, opSTA, 5),
	0x9A: op("TXS", addrIMP, opTXS, 2),
	0x9B: op("NOP", addrABY, opNOP, 5),
	0x9C: op("NOP", addrABX, opNOP, 5),
	0x9D: op("STA", addrABX, opSTA, 5),
	0x9E: op("NOP", addrABY, opNOP, 5),
	0x9F: op("NOP", addrABY, opNOP, 5),

	0xA0: op("LDY", addrIMM, opLDY, 2),
	0xA1: op("LDA", addrIZX, opLDA, 6),
	0xA2: op("LDX", addrIMM, opLDX, 2),
	0xA3: op("NOP", addrIZX, opNOP, 6),
	0xA4: op("LDY", addrZP0, opLDY, 3),
	0xA5: op("LDA", addrZP0, opLDA, 3),
	0xA6: op("LDX", addrZP0, opLDX, 3),
	0xA7: op("NOP", addrZP0, opNOP, 3),
	0xA8: op("TAY", addrIMP, opTAY, 2),
	0xA9: op("LDA", addrIMM, opLDA, 2),
	0xAA: op("TAX", addrIMP, opTAX, 2),
	0xAB: op("NOP", addrIMM, opNOP, 2),
	0xAC: op("LDY", addrABS, opLDY, 4),
	0xAD: op("LDA", addrABS, opLDA, 4),
	0xAE: op("LDX", addrABS, opLDX, 4),
	0xAF: op("NOP", addrABS, opNOP, 4),

	0xB0: op("BCS", addrREL, opBCS, 2),
	0xB1: op("LDA", addrIZY, opLDA, 5),
	0xB2: op("NOP", addrIMP, opNOP, 2),
	0xB3: op("NOP", addrIZY, opNOP, 5),
	0xB4: op("LDY", addrZPX, opLDY, 4),
	0xB5: op("LDA", addrZPX, opLDA, 4),
	0xB6: op("LDX", addrZPY, opLDX, 4),
	0xB7: op("NOP", addrZPY, opNOP, 4),
	0xB8: op("CLV", addrIMP, opCLV, 2),
	0xB9: op("LDA", addrABY, opLDA, 4),
	0xBA: op("TSX", addrIMP, opTSX, 2),
	0xBB: op("NOP", addrABY, opNOP, 4),
	0xBC: op("LDY", addrABX, opLDY, 4),
	0xBD: op("LDA", addrABX, opLDA, 4),
	0xBE: op("LDX", addrABY, opLDX, 4),
	0xBF: op("NOP", addrABY, opNOP, 4),

	0xC0: op("CPY", addrIMM, opCPY, 2),
	0xC1: op("CMP", addrIZX, opCMP, 6),
	0xC2: op("NOP", addrIMM, opNOP, 2),
	0xC3: op("NOP", addrIZX, opNOP, 8),
	0xC4: op("CPY", addrZP0, opCPY, 3),
	0xC5: op("CMP", addrZP0, opCMP, 3),
	0xC6: op("DEC", addrZP0, opDEC, 5),
	0xC7: op("NOP", addrZP0, opNOP, 5),
	0xC8: op("INY", addrIMP, opINY, 2),
	0xC9: op("CMP", addrIMM, opCMP, 2),
	0xCA: op("DEX", addrIMP, opDEX, 2),
	0xCB: op("NOP", addrIMM, opNOP, 2),
	0xCC: op("CPY", addrABS, opCPY, 4),
	0xCD: op("CMP", addrABS, opCMP, 4),
	0xCE: op("DEC", addrABS, opDEC, 6),
	0xCF: op("NOP", addrABS, opNOP, 6),

	0xD0: op("BNE", addrREL, opBNE, 2),
	0xD1: op("CMP", addrIZY, opCMP, 5),
	0xD2: op("NOP", addrIMP, opNOP, 2),
	0xD3: op("NOP", addrIZY, opNOP, 8),
	0xD4: op("NOP", addrZPX, opNOP, 4),
	0xD5: op("CMP", addrZPX, opCMP, 4),
	0xD6: op("DEC", addrZPX, opDEC, 6),
	0xD7: op("NOP", addrZPX, opNOP, 6),
	0xD8: op("CLD", addrIMP, opCLD, 2),
	0xD9: op("CMP", addrABY, opCMP, 4),
	0xDA: op("NOP", addrIMP, opNOP, 2),
	0xDB: op("NOP", addrABY, opNOP, 7),
	0xDC: op("NOP", addrABX, opNOP, 4),
	0xDD: op("CMP", addrABX, opCMP, 4),
	0xDE: op("DEC", addrABX, opDEC, 7),
	0xDF: op("NOP", addrABX, opNOP, 7),

	0xE0: op("CPX", addrIMM, opCPX, 2),
	0xE1: op("SBC", addrIZX, opSBC, 6),
	0xE2: op("NOP", addrIMM, opNOP, 2),
	0xE3: op("NOP", addrIZX, opNOP, 8),
	0xE4: op("CPX", addrZP0, opCPX, 3),
	0xE5: op("SBC", addrZP0, opSBC, 3),
	0xE6: op("INC", addrZP0, opINC, 5),
	0xE7: op("NOP", addrZP0, opNOP, 5),
	0xE8: op("INX", addrIMP, opINX, 2),
	0xE9: op("SBC", addrIMM, opSBC, 2),
	0xEA: op("NOP", addrIMP, opNOP, 2),
	0xEB: op("SBC", addrIMM, opSBC, 2),
	0xEC: op("CPX", addrABS, opCPX, 4),
	0xED: op("SBC", addrABS, opSBC, 4),
	0xEE: op("INC", addrABS, opINC, 6),
	0xEF: op("NOP", addrABS, opNOP, 6),

	0xF0: op("BEQ", addrREL, opBEQ, 2),
	0xF1: op("SBC", addrIZY, opSBC, 5),
	0xF2: op("NOP", addrIMP, opNOP, 2),
	0xF3: op("NOP", addrIZY, opNOP, 8),
	0xF4: op("NOP", addrZPX, opNOP, 4),
	0xF5: op("SBC", addrZPX, opSBC, 4),
	0xF6: op("INC", addrZPX, opINC, 6),
	0xF7: op("NOP", addrZPX, opNOP, 6),
	0xF8: op("SED", addrIMP, opSED, 2),
	0xF9: op("SBC", addrABY, opSBC, 4),
	0xFA: op("NOP", addrIMP, opNOP, 2),
	0xFB: op("NOP", addrABY, opNOP, 7),
	0xFC: op("NOP", addrABX, opNOP, 4),
	0xFD: op("SBC", addrABX, opSBC, 4),
	0xFE: op("INC", addrABX, opINC, 7),
	0xFF: op("NOP", addrABX, opNOP, 7),
}
