package cpu

import "nes6502/mask"

// Addressing-mode functions resolve address_bus (or set accumulator_mode)
// by enqueueing the micro-ops that perform the necessary bus transactions.
// They are called once, during the fetch phase of Clock, and must not
// themselves touch the bus directly.
//
// Reference: https://www.nesdev.org/6502_cpu.txt, "CPU addressing modes".

// amIMP: implied. No operand; the one dummy-read cycle this mode spends on
// real hardware is folded into each implied operation's own micro-op
// instead, so this enqueues nothing.
func amIMP(c *Cpu) {}

// amACC: operand is the accumulator. The RMW operation functions (ASL, LSR,
// ROL, ROR) enqueue the same micro-ops they would for a memory operand;
// accumulatorMode makes those micro-ops target A, and Clock's drain-through
// loop then runs them all within a single tick.
func amACC(c *Cpu) { c.accumulatorMode = true }

// amIMM: operand is the byte following the opcode.
func amIMM(c *Cpu) {
	c.addressBus = c.PC
	c.PC++
}

// amZPI: zero page, $ll.
func amZPI(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.addressBus = uint16(cpu.read(cpu.PC))
		cpu.PC++
	})
}

// amZPX: zero page indexed by X, $ll,X. The dummy read at the unindexed
// address is a documented quirk of real hardware (it's what makes the
// addition "free" of a page boundary: the index wraps within the page).
func amZPX(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.read(uint16(cpu.lo))
		cpu.addressBus = uint16(cpu.lo+cpu.X) & 0x00FF
	})
}

// amZPY: zero page indexed by Y, $ll,Y. Used only by LDX/STX-family ops.
func amZPY(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.read(uint16(cpu.lo))
		cpu.addressBus = uint16(cpu.lo+cpu.Y) & 0x00FF
	})
}

// amABS: absolute, $llhh.
func amABS(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read(cpu.PC)
		cpu.PC++
		cpu.addressBus = mask.Word(cpu.hi, cpu.lo)
	})
}

// amABSJmpTarget: absolute addressing used only by JMP abs. Unlike amABS,
// the second micro-op latches straight into PC rather than address_bus,
// since JMP needs no further bus access once the target is resolved.
func amABSJmpTarget(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read(cpu.PC)
		cpu.PC = mask.Word(cpu.hi, cpu.lo)
	})
}

// indexedAbsolute builds the shared ABX/ABY micro-op sequence. For
// class == classRead, the page-crossing correction micro-op short-circuits
// into running the instruction's own read immediately when no crossing
// occurred (saving the tick real hardware also saves). For classWrite and
// classRMW, the correction always costs its own tick, matching the
// documented "no conditional penalty" rule for non-read instructions.
func indexedAbsolute(c *Cpu, index func(*Cpu) byte) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read(cpu.PC)
		cpu.PC++
		cpu.tmp = uint16(cpu.hi)<<8 + uint16(cpu.lo) + uint16(index(cpu))
	})
	c.queue.enqueue(func(cpu *Cpu) {
		uncorrected := uint16(cpu.hi)<<8 | (cpu.tmp & 0x00FF)
		cpu.read(uncorrected)
		crossed := uncorrected != cpu.tmp
		cpu.addressBus = cpu.tmp
		if cpu.currentInstruction.class == classRead && !crossed {
			if next := cpu.queue.dequeue(); next != nil {
				next(cpu)
			}
		}
	})
}

func amABX(c *Cpu) { indexedAbsolute(c, func(cpu *Cpu) byte { return cpu.X }) }
func amABY(c *Cpu) { indexedAbsolute(c, func(cpu *Cpu) byte { return cpu.Y }) }

// amIIX: (indirect,X). The zero-page pointer byte is read, a dummy read at
// the unindexed pointer occurs (the index addition never crosses a page:
// it wraps within zero page), then the two effective-address bytes are
// read from zero page.
func amIIX(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.tmp = uint16(cpu.read(cpu.PC))
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.read(cpu.tmp)
		cpu.tmp = (cpu.tmp + uint16(cpu.X)) & 0x00FF
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.tmp)
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read((cpu.tmp + 1) & 0x00FF)
		cpu.addressBus = mask.Word(cpu.hi, cpu.lo)
	})
}

// amIIY: (indirect),Y. Same page-crossing short-circuit rule as ABX/ABY,
// applied after the zero-page pointer is dereferenced.
func amIIY(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.tmp = uint16(cpu.read(cpu.PC))
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.tmp)
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read((cpu.tmp + 1) & 0x00FF)
		cpu.tmp = uint16(cpu.hi)<<8 + uint16(cpu.lo) + uint16(cpu.Y)
	})
	c.queue.enqueue(func(cpu *Cpu) {
		uncorrected := uint16(cpu.hi)<<8 | (cpu.tmp & 0x00FF)
		cpu.read(uncorrected)
		crossed := uncorrected != cpu.tmp
		cpu.addressBus = cpu.tmp
		if cpu.currentInstruction.class == classRead && !crossed {
			if next := cpu.queue.dequeue(); next != nil {
				next(cpu)
			}
		}
	})
}

// amIND: indirect, ($llhh), used only by JMP. Reproduces the hardware
// page-wrap bug: when the pointer's low byte is 0xFF, the high byte of the
// target is fetched from $hh00, not the next page.
func amIND(c *Cpu) {
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.lo = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read(cpu.PC)
		cpu.PC++
	})
	c.queue.enqueue(func(cpu *Cpu) {
		ptr := mask.Word(cpu.hi, cpu.lo)
		cpu.tmp = uint16(cpu.read(ptr))
	})
	c.queue.enqueue(func(cpu *Cpu) {
		ptrHi := uint16(cpu.hi) << 8
		hiAddr := ptrHi | ((uint16(cpu.lo) + 1) & 0x00FF)
		cpu.PC = uint16(cpu.read(hiAddr))<<8 | cpu.tmp
	})
}

// amREL: relative, used only by the branch operations, which fetch the
// offset themselves so the taken/not-taken cycle accounting stays in one
// place. This enqueues nothing.
func amREL(c *Cpu) {}
