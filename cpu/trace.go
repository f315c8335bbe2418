package cpu

import "fmt"

// TraceFormatter renders one line of nestest-format trace per completed
// instruction: PC, raw opcode bytes, mnemonic, a register and cycle-count
// snapshot taken just before the instruction was fetched, and a fixed PPU
// placeholder. Callers build one per run (or reuse a zero value, since it
// carries no state of its own) and call Line once the CPU has just reached
// an instruction boundary.
type TraceFormatter struct{}

// Line formats the instruction that c most recently decoded. It must be
// called at an instruction boundary, before the next fetch overwrites
// PCExecuted/Operands/CurrentInstruction.
func (TraceFormatter) Line(c *Cpu) string {
	inst := c.CurrentInstruction()
	arg1, arg2, n := c.Operands()
	a, x, y, p, s := c.RegistersExecuted()

	b1, b2 := "  ", "  "
	if n >= 1 {
		b1 = fmt.Sprintf("%02X", arg1)
	}
	if n >= 2 {
		b2 = fmt.Sprintf("%02X", arg2)
	}

	mnemonic := inst.Mnemonic
	if inst.Illegal {
		mnemonic = "*" + mnemonic
	}

	return fmt.Sprintf(
		"%04X  %02X %s %s  %-28s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:XXX,XXX CYC:%d",
		c.PCExecuted(), c.Opcode(), b1, b2, mnemonic,
		a, x, y, p, s, c.CyclesExecuted(),
	)
}
