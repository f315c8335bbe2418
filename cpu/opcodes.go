package cpu

// instructionTable is the static 256-entry dispatch table, indexed by
// opcode byte. It is the literal nestest-compatible mapping: the 56
// official instructions, the illegal combos SLO/RLA/SRE/RRA/SAX/LAX/DCP/ISB,
// the doubled NOP variants, and the *SBC alias at 0xEB. Every other byte
// (JAM and the more exotic illegals: ANC, ALR, ARR, XAA, SHA/SHX/SHY/TAS,
// LXA, LAS, AXS/SBX) maps to opXXX, per spec §4.5/§7.
//
// Layout: http://www.oxyron.de/html/opcodes02.html /
// https://www.nesdev.org/wiki/CPU_unofficial_opcodes.
func i(mnemonic string, illegal bool, bytes, cycles int, class instructionClass, am, op func(*Cpu)) Instruction {
	return Instruction{Mnemonic: mnemonic, Illegal: illegal, Bytes: bytes, Cycles: cycles, class: class, addrmode: am, operate: op}
}

func xxx() Instruction { return i("???", true, 1, 2, classOther, amIMP, opXXX) }

var instructionTable = [256]Instruction{
	// 0x00
	0x00: i("BRK", false, 1, 7, classOther, amIMP, opBRK),
	0x01: i("ORA", false, 2, 6, classRead, amIIX, opORA),
	0x02: xxx(),
	0x03: i("SLO", true, 2, 8, classRMW, amIIX, opSLO),
	0x04: i("NOP", true, 2, 3, classRead, amZPI, opNOP),
	0x05: i("ORA", false, 2, 3, classRead, amZPI, opORA),
	0x06: i("ASL", false, 2, 5, classRMW, amZPI, opASL),
	0x07: i("SLO", true, 2, 5, classRMW, amZPI, opSLO),
	0x08: i("PHP", false, 1, 3, classOther, amIMP, opPHP),
	0x09: i("ORA", false, 2, 2, classOther, amIMM, opORA),
	0x0A: i("ASL", false, 1, 2, classRMW, amACC, opASL),
	0x0B: xxx(),
	0x0C: i("NOP", true, 3, 4, classRead, amABS, opNOP),
	0x0D: i("ORA", false, 3, 4, classRead, amABS, opORA),
	0x0E: i("ASL", false, 3, 6, classRMW, amABS, opASL),
	0x0F: i("SLO", true, 3, 6, classRMW, amABS, opSLO),

	// 0x10
	0x10: i("BPL", false, 2, 2, classOther, amREL, opBPL),
	0x11: i("ORA", false, 2, 5, classRead, amIIY, opORA),
	0x12: xxx(),
	0x13: i("SLO", true, 2, 8, classRMW, amIIY, opSLO),
	0x14: i("NOP", true, 2, 4, classRead, amZPX, opNOP),
	0x15: i("ORA", false, 2, 4, classRead, amZPX, opORA),
	0x16: i("ASL", false, 2, 6, classRMW, amZPX, opASL),
	0x17: i("SLO", true, 2, 6, classRMW, amZPX, opSLO),
	0x18: i("CLC", false, 1, 2, classOther, amIMP, opCLC),
	0x19: i("ORA", false, 3, 4, classRead, amABY, opORA),
	0x1A: i("NOP", true, 1, 2, classOther, amIMP, opNOP),
	0x1B: i("SLO", true, 3, 7, classRMW, amABY, opSLO),
	0x1C: i("NOP", true, 3, 4, classRead, amABX, opNOP),
	0x1D: i("ORA", false, 3, 4, classRead, amABX, opORA),
	0x1E: i("ASL", false, 3, 7, classRMW, amABX, opASL),
	0x1F: i("SLO", true, 3, 7, classRMW, amABX, opSLO),

	// 0x20
	0x20: i("JSR", false, 3, 6, classOther, amIMP, opJSR),
	0x21: i("AND", false, 2, 6, classRead, amIIX, opAND),
	0x22: xxx(),
	0x23: i("RLA", true, 2, 8, classRMW, amIIX, opRLA),
	0x24: i("BIT", false, 2, 3, classRead, amZPI, opBIT),
	0x25: i("AND", false, 2, 3, classRead, amZPI, opAND),
	0x26: i("ROL", false, 2, 5, classRMW, amZPI, opROL),
	0x27: i("RLA", true, 2, 5, classRMW, amZPI, opRLA),
	0x28: i("PLP", false, 1, 4, classOther, amIMP, opPLP),
	0x29: i("AND", false, 2, 2, classOther, amIMM, opAND),
	0x2A: i("ROL", false, 1, 2, classRMW, amACC, opROL),
	0x2B: xxx(),
	0x2C: i("BIT", false, 3, 4, classRead, amABS, opBIT),
	0x2D: i("AND", false, 3, 4, classRead, amABS, opAND),
	0x2E: i("ROL", false, 3, 6, classRMW, amABS, opROL),
	0x2F: i("RLA", true, 3, 6, classRMW, amABS, opRLA),

	// 0x30
	0x30: i("BMI", false, 2, 2, classOther, amREL, opBMI),
	0x31: i("AND", false, 2, 5, classRead, amIIY, opAND),
	0x32: xxx(),
	0x33: i("RLA", true, 2, 8, classRMW, amIIY, opRLA),
	0x34: i("NOP", true, 2, 4, classRead, amZPX, opNOP),
	0x35: i("AND", false, 2, 4, classRead, amZPX, opAND),
	0x36: i("ROL", false, 2, 6, classRMW, amZPX, opROL),
	0x37: i("RLA", true, 2, 6, classRMW, amZPX, opRLA),
	0x38: i("SEC", false, 1, 2, classOther, amIMP, opSEC),
	0x39: i("AND", false, 3, 4, classRead, amABY, opAND),
	0x3A: i("NOP", true, 1, 2, classOther, amIMP, opNOP),
	0x3B: i("RLA", true, 3, 7, classRMW, amABY, opRLA),
	0x3C: i("NOP", true, 3, 4, classRead, amABX, opNOP),
	0x3D: i("AND", false, 3, 4, classRead, amABX, opAND),
	0x3E: i("ROL", false, 3, 7, classRMW, amABX, opROL),
	0x3F: i("RLA", true, 3, 7, classRMW, amABX, opRLA),

	// 0x40
	0x40: i("RTI", false, 1, 6, classOther, amIMP, opRTI),
	0x41: i("EOR", false, 2, 6, classRead, amIIX, opEOR),
	0x42: xxx(),
	0x43: i("SRE", true, 2, 8, classRMW, amIIX, opSRE),
	0x44: i("NOP", true, 2, 3, classRead, amZPI, opNOP),
	0x45: i("EOR", false, 2, 3, classRead, amZPI, opEOR),
	0x46: i("LSR", false, 2, 5, classRMW, amZPI, opLSR),
	0x47: i("SRE", true, 2, 5, classRMW, amZPI, opSRE),
	0x48: i("PHA", false, 1, 3, classOther, amIMP, opPHA),
	0x49: i("EOR", false, 2, 2, classOther, amIMM, opEOR),
	0x4A: i("LSR", false, 1, 2, classRMW, amACC, opLSR),
	0x4B: xxx(),
	0x4C: i("JMP", false, 3, 3, classOther, amABSJmpTarget, opJMP),
	0x4D: i("EOR", false, 3, 4, classRead, amABS, opEOR),
	0x4E: i("LSR", false, 3, 6, classRMW, amABS, opLSR),
	0x4F: i("SRE", true, 3, 6, classRMW, amABS, opSRE),

	// 0x50
	0x50: i("BVC", false, 2, 2, classOther, amREL, opBVC),
	0x51: i("EOR", false, 2, 5, classRead, amIIY, opEOR),
	0x52: xxx(),
	0x53: i("SRE", true, 2, 8, classRMW, amIIY, opSRE),
	0x54: i("NOP", true, 2, 4, classRead, amZPX, opNOP),
	0x55: i("EOR", false, 2, 4, classRead, amZPX, opEOR),
	0x56: i("LSR", false, 2, 6, classRMW, amZPX, opLSR),
	0x57: i("SRE", true, 2, 6, classRMW, amZPX, opSRE),
	0x58: i("CLI", false, 1, 2, classOther, amIMP, opCLI),
	0x59: i("EOR", false, 3, 4, classRead, amABY, opEOR),
	0x5A: i("NOP", true, 1, 2, classOther, amIMP, opNOP),
	0x5B: i("SRE", true, 3, 7, classRMW, amABY, opSRE),
	0x5C: i("NOP", true, 3, 4, classRead, amABX, opNOP),
	0x5D: i("EOR", false, 3, 4, classRead, amABX, opEOR),
	0x5E: i("LSR", false, 3, 7, classRMW, amABX, opLSR),
	0x5F: i("SRE", true, 3, 7, classRMW, amABX, opSRE),

	// 0x60
	0x60: i("RTS", false, 1, 6, classOther, amIMP, opRTS),
	0x61: i("ADC", false, 2, 6, classRead, amIIX, opADC),
	0x62: xxx(),
	0x63: i("RRA", true, 2, 8, classRMW, amIIX, opRRA),
	0x64: i("NOP", true, 2, 3, classRead, amZPI, opNOP),
	0x65: i("ADC", false, 2, 3, classRead, amZPI, opADC),
	0x66: i("ROR", false, 2, 5, classRMW, amZPI, opROR),
	0x67: i("RRA", true, 2, 5, classRMW, amZPI, opRRA),
	0x68: i("PLA", false, 1, 4, classOther, amIMP, opPLA),
	0x69: i("ADC", false, 2, 2, classOther, amIMM, opADC),
	0x6A: i("ROR", false, 1, 2, classRMW, amACC, opROR),
	0x6B: xxx(),
	0x6C: i("JMP", false, 3, 5, classOther, amIND, opJMP),
	0x6D: i("ADC", false, 3, 4, classRead, amABS, opADC),
	0x6E: i("ROR", false, 3, 6, classRMW, amABS, opROR),
	0x6F: i("RRA", true, 3, 6, classRMW, amABS, opRRA),

	// 0x70
	0x70: i("BVS", false, 2, 2, classOther, amREL, opBVS),
	0x71: i("ADC", false, 2, 5, classRead, amIIY, opADC),
	0x72: xxx(),
	0x73: i("RRA", true, 2, 8, classRMW, amIIY, opRRA),
	0x74: i("NOP", true, 2, 4, classRead, amZPX, opNOP),
	0x75: i("ADC", false, 2, 4, classRead, amZPX, opADC),
	0x76: i("ROR", false, 2, 6, classRMW, amZPX, opROR),
	0x77: i("RRA", true, 2, 6, classRMW, amZPX, opRRA),
	0x78: i("SEI", false, 1, 2, classOther, amIMP, opSEI),
	0x79: i("ADC", false, 3, 4, classRead, amABY, opADC),
	0x7A: i("NOP", true, 1, 2, classOther, amIMP, opNOP),
	0x7B: i("RRA", true, 3, 7, classRMW, amABY, opRRA),
	0x7C: i("NOP", true, 3, 4, classRead, amABX, opNOP),
	0x7D: i("ADC", false, 3, 4, classRead, amABX, opADC),
	0x7E: i("ROR", false, 3, 7, classRMW, amABX, opROR),
	0x7F: i("RRA", true, 3, 7, classRMW, amABX, opRRA),

	// 0x80
	0x80: i("NOP", true, 2, 2, classOther, amIMM, opNOP),
	0x81: i("STA", false, 2, 6, classWrite, amIIX, opSTA),
	0x82: i("NOP", true, 2, 2, classOther, amIMM, opNOP),
	0x83: i("SAX", true, 2, 6, classWrite, amIIX, opSAX),
	0x84: i("STY", false, 2, 3, classWrite, amZPI, opSTY),
	0x85: i("STA", false, 2, 3, classWrite, amZPI, opSTA),
	0x86: i("STX", false, 2, 3, classWrite, amZPI, opSTX),
	0x87: i("SAX", true, 2, 3, classWrite, amZPI, opSAX),
	0x88: i("DEY", false, 1, 2, classOther, amIMP, opDEY),
	0x89: i("NOP", true, 2, 2, classOther, amIMM, opNOP),
	0x8A: i("TXA", false, 1, 2, classOther, amIMP, opTXA),
	0x8B: xxx(),
	0x8C: i("STY", false, 3, 4, classWrite, amABS, opSTY),
	0x8D: i("STA", false, 3, 4, classWrite, amABS, opSTA),
	0x8E: i("STX", false, 3, 4, classWrite, amABS, opSTX),
	0x8F: i("SAX", true, 3, 4, classWrite, amABS, opSAX),

	// 0x90
	0x90: i("BCC", false, 2, 2, classOther, amREL, opBCC),
	0x91: i("STA", false, 2, 6, classWrite, amIIY, opSTA),
	0x92: xxx(),
	0x93: xxx(),
	0x94: i("STY", false, 2, 4, classWrite, amZPX, opSTY),
	0x95: i("STA", false, 2, 4, classWrite, amZPX, opSTA),
	0x96: i("STX", false, 2, 4, classWrite, amZPY, opSTX),
	0x97: i("SAX", true, 2, 4, classWrite, amZPY, opSAX),
	0x98: i("TYA", false, 1, 2, classOther, amIMP, opTYA),
	0x99: i("STA", false, 3, 5, classWrite, amABY, opSTA),
	0x9A: i("TXS", false, 1, 2, classOther, amIMP, opTXS),
	0x9B: xxx(),
	0x9C: xxx(),
	0x9D: i("STA", false, 3, 5, classWrite, amABX, opSTA),
	0x9E: xxx(),
	0x9F: xxx(),

	// 0xA0
	0xA0: i("LDY", false, 2, 2, classOther, amIMM, opLDY),
	0xA1: i("LDA", false, 2, 6, classRead, amIIX, opLDA),
	0xA2: i("LDX", false, 2, 2, classOther, amIMM, opLDX),
	0xA3: i("LAX", true, 2, 6, classRead, amIIX, opLAX),
	0xA4: i("LDY", false, 2, 3, classRead, amZPI, opLDY),
	0xA5: i("LDA", false, 2, 3, classRead, amZPI, opLDA),
	0xA6: i("LDX", false, 2, 3, classRead, amZPI, opLDX),
	0xA7: i("LAX", true, 2, 3, classRead, amZPI, opLAX),
	0xA8: i("TAY", false, 1, 2, classOther, amIMP, opTAY),
	0xA9: i("LDA", false, 2, 2, classOther, amIMM, opLDA),
	0xAA: i("TAX", false, 1, 2, classOther, amIMP, opTAX),
	0xAB: xxx(),
	0xAC: i("LDY", false, 3, 4, classRead, amABS, opLDY),
	0xAD: i("LDA", false, 3, 4, classRead, amABS, opLDA),
	0xAE: i("LDX", false, 3, 4, classRead, amABS, opLDX),
	0xAF: i("LAX", true, 3, 4, classRead, amABS, opLAX),

	// 0xB0
	0xB0: i("BCS", false, 2, 2, classOther, amREL, opBCS),
	0xB1: i("LDA", false, 2, 5, classRead, amIIY, opLDA),
	0xB2: xxx(),
	0xB3: i("LAX", true, 2, 5, classRead, amIIY, opLAX),
	0xB4: i("LDY", false, 2, 4, classRead, amZPX, opLDY),
	0xB5: i("LDA", false, 2, 4, classRead, amZPX, opLDA),
	0xB6: i("LDX", false, 2, 4, classRead, amZPY, opLDX),
	0xB7: i("LAX", true, 2, 4, classRead, amZPY, opLAX),
	0xB8: i("CLV", false, 1, 2, classOther, amIMP, opCLV),
	0xB9: i("LDA", false, 3, 4, classRead, amABY, opLDA),
	0xBA: i("TSX", false, 1, 2, classOther, amIMP, opTSX),
	0xBB: xxx(),
	0xBC: i("LDY", false, 3, 4, classRead, amABX, opLDY),
	0xBD: i("LDA", false, 3, 4, classRead, amABX, opLDA),
	0xBE: i("LDX", false, 3, 4, classRead, amABY, opLDX),
	0xBF: i("LAX", true, 3, 4, classRead, amABY, opLAX),

	// 0xC0
	0xC0: i("CPY", false, 2, 2, classOther, amIMM, opCPY),
	0xC1: i("CMP", false, 2, 6, classRead, amIIX, opCMP),
	0xC2: i("NOP", true, 2, 2, classOther, amIMM, opNOP),
	0xC3: i("DCP", true, 2, 8, classRMW, amIIX, opDCP),
	0xC4: i("CPY", false, 2, 3, classRead, amZPI, opCPY),
	0xC5: i("CMP", false, 2, 3, classRead, amZPI, opCMP),
	0xC6: i("DEC", false, 2, 5, classRMW, amZPI, opDEC),
	0xC7: i("DCP", true, 2, 5, classRMW, amZPI, opDCP),
	0xC8: i("INY", false, 1, 2, classOther, amIMP, opINY),
	0xC9: i("CMP", false, 2, 2, classOther, amIMM, opCMP),
	0xCA: i("DEX", false, 1, 2, classOther, amIMP, opDEX),
	0xCB: xxx(),
	0xCC: i("CPY", false, 3, 4, classRead, amABS, opCPY),
	0xCD: i("CMP", false, 3, 4, classRead, amABS, opCMP),
	0xCE: i("DEC", false, 3, 6, classRMW, amABS, opDEC),
	0xCF: i("DCP", true, 3, 6, classRMW, amABS, opDCP),

	// 0xD0
	0xD0: i("BNE", false, 2, 2, classOther, amREL, opBNE),
	0xD1: i("CMP", false, 2, 5, classRead, amIIY, opCMP),
	0xD2: xxx(),
	0xD3: i("DCP", true, 2, 8, classRMW, amIIY, opDCP),
	0xD4: i("NOP", true, 2, 4, classRead, amZPX, opNOP),
	0xD5: i("CMP", false, 2, 4, classRead, amZPX, opCMP),
	0xD6: i("DEC", false, 2, 6, classRMW, amZPX, opDEC),
	0xD7: i("DCP", true, 2, 6, classRMW, amZPX, opDCP),
	0xD8: i("CLD", false, 1, 2, classOther, amIMP, opCLD),
	0xD9: i("CMP", false, 3, 4, classRead, amABY, opCMP),
	0xDA: i("NOP", true, 1, 2, classOther, amIMP, opNOP),
	0xDB: i("DCP", true, 3, 7, classRMW, amABY, opDCP),
	0xDC: i("NOP", true, 3, 4, classRead, amABX, opNOP),
	0xDD: i("CMP", false, 3, 4, classRead, amABX, opCMP),
	0xDE: i("DEC", false, 3, 7, classRMW, amABX, opDEC),
	0xDF: i("DCP", true, 3, 7, classRMW, amABX, opDCP),

	// 0xE0
	0xE0: i("CPX", false, 2, 2, classOther, amIMM, opCPX),
	0xE1: i("SBC", false, 2, 6, classRead, amIIX, opSBC),
	0xE2: i("NOP", true, 2, 2, classOther, amIMM, opNOP),
	0xE3: i("ISB", true, 2, 8, classRMW, amIIX, opISB),
	0xE4: i("CPX", false, 2, 3, classRead, amZPI, opCPX),
	0xE5: i("SBC", false, 2, 3, classRead, amZPI, opSBC),
	0xE6: i("INC", false, 2, 5, classRMW, amZPI, opINC),
	0xE7: i("ISB", true, 2, 5, classRMW, amZPI, opISB),
	0xE8: i("INX", false, 1, 2, classOther, amIMP, opINX),
	0xE9: i("SBC", false, 2, 2, classOther, amIMM, opSBC),
	0xEA: i("NOP", false, 1, 2, classOther, amIMP, opNOP),
	0xEB: i("SBC", true, 2, 2, classOther, amIMM, opSBC),
	0xEC: i("CPX", false, 3, 4, classRead, amABS, opCPX),
	0xED: i("SBC", false, 3, 4, classRead, amABS, opSBC),
	0xEE: i("INC", false, 3, 6, classRMW, amABS, opINC),
	0xEF: i("ISB", true, 3, 6, classRMW, amABS, opISB),

	// 0xF0
	0xF0: i("BEQ", false, 2, 2, classOther, amREL, opBEQ),
	0xF1: i("SBC", false, 2, 5, classRead, amIIY, opSBC),
	0xF2: xxx(),
	0xF3: i("ISB", true, 2, 8, classRMW, amIIY, opISB),
	0xF4: i("NOP", true, 2, 4, classRead, amZPX, opNOP),
	0xF5: i("SBC", false, 2, 4, classRead, amZPX, opSBC),
	0xF6: i("INC", false, 2, 6, classRMW, amZPX, opINC),
	0xF7: i("ISB", true, 2, 6, classRMW, amZPX, opISB),
	0xF8: i("SED", false, 1, 2, classOther, amIMP, opSED),
	0xF9: i("SBC", false, 3, 4, classRead, amABY, opSBC),
	0xFA: i("NOP", true, 1, 2, classOther, amIMP, opNOP),
	0xFB: i("ISB", true, 3, 7, classRMW, amABY, opISB),
	0xFC: i("NOP", true, 3, 4, classRead, amABX, opNOP),
	0xFD: i("SBC", false, 3, 4, classRead, amABX, opSBC),
	0xFE: i("INC", false, 3, 7, classRMW, amABX, opINC),
	0xFF: i("ISB", true, 3, 7, classRMW, amABX, opISB),
}
