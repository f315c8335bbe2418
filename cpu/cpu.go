// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES (no decimal mode, no sub-cycle phase modelling).
package cpu

import (
	"log"

	"nes6502/mem"
)

// Flag bit positions within P: NV1B DIZC.
// https://www.nesdev.org/wiki/Status_flags
const (
	FlagCarry     byte = 0x01
	FlagZero      byte = 0x02
	FlagInterrupt byte = 0x04
	FlagDecimal   byte = 0x08
	FlagBreak     byte = 0x10
	FlagUnused    byte = 0x20
	FlagOverflow  byte = 0x40
	FlagNegative  byte = 0x80
)

// instructionClass distinguishes the addressing-mode cycle accounting for
// the indexed/indirect-indexed modes (ABX, ABY, IIY): reads pay for a page
// crossing only when one actually occurs, writes and read-modify-writes
// always pay for it.
type instructionClass int

const (
	classOther instructionClass = iota
	classRead
	classWrite
	classRMW
)

// Instruction is one row of the 256-entry dispatch table.
type Instruction struct {
	Mnemonic string
	Illegal  bool
	Bytes    int
	Cycles   int // base cycle count, for display/disassembly only
	class    instructionClass
	addrmode func(*Cpu)
	operate  func(*Cpu)
}

// Logger is an injected log sink; the default writes through the standard
// log package. Matches mem.Logger so one sink threads through every
// constructor in the module.
type Logger func(format string, args ...any)

// Option configures a Cpu at construction.
type Option func(*Cpu)

// WithLogger overrides the default stderr sink.
func WithLogger(l Logger) Option {
	return func(c *Cpu) { c.log = l }
}

// Cpu holds all 6502 register and transient state. It has no memory of its
// own; every read and write is routed through the injected mem.BusPort.
type Cpu struct {
	Bus mem.BusPort

	A, X, Y byte
	S       byte // stack pointer; stack lives at 0x0100|S
	P       byte // flags: NV1B DIZC
	PC      uint16

	// Transient state, reset or overwritten on every opcode fetch.
	opcode          byte
	dataBus         byte
	addressBus      uint16
	relativeAddress uint16
	tmp             uint16
	hi, lo          byte
	accumulatorMode bool
	cycles          uint64

	currentInstruction *Instruction
	pcExecuted         uint16 // PC at the start of the instruction, for tracing
	cyclesExecuted     uint64 // Cycles() at the start of the instruction, for tracing
	aExecuted          byte   // A/X/Y/P/S at the start of the instruction, for tracing
	xExecuted          byte
	yExecuted          byte
	pExecuted          byte
	sExecuted          byte
	arg1, arg2         byte
	argc               int // number of operand bytes actually fetched, for tracing

	queue microOpQueue

	irqPending bool
	nmiPending bool

	log Logger
}

// New constructs a Cpu wired to bus. Registers are left at their zero value;
// call Reset to bring the CPU to the documented post-reset state.
func New(bus mem.BusPort, opts ...Option) *Cpu {
	c := &Cpu{
		Bus: bus,
		log: func(format string, args ...any) { log.Printf(format, args...) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cpu) read(addr uint16) byte {
	var b byte
	c.Bus.Access(addr, mem.Read, &b)
	return b
}

func (c *Cpu) readOnly(addr uint16) byte {
	var b byte
	c.Bus.Access(addr, mem.ReadOnly, &b)
	return b
}

func (c *Cpu) write(addr uint16, data byte) {
	c.Bus.Access(addr, mem.Write, &data)
}

func (c *Cpu) getFlag(flag byte) bool { return c.P&flag != 0 }

func (c *Cpu) setFlag(flag byte, v bool) {
	if v {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// setZN sets Z and N from the low 8 bits of a result, the shared tail of
// nearly every data-movement and arithmetic instruction.
func (c *Cpu) setZN(v byte) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func (c *Cpu) push(v byte) {
	c.write(0x0100|uint16(c.S), v)
	c.S--
}

func (c *Cpu) pop() byte {
	c.S++
	return c.read(0x0100 | uint16(c.S))
}

// IRQ requests a maskable interrupt; it is honoured on the next instruction
// boundary, and only if the interrupt-disable flag is clear.
func (c *Cpu) IRQ() { c.irqPending = true }

// NMI requests a non-maskable interrupt; it is honoured on the next
// instruction boundary unconditionally.
func (c *Cpu) NMI() { c.nmiPending = true }

// PCExecuted returns the address at the start of the instruction currently (or most
// recently) executing, as used by trace output.
func (c *Cpu) PCExecuted() uint16 { return c.pcExecuted }

// Cycles returns the running total of clock() calls (ticks) since
// construction or the last Reset.
func (c *Cpu) Cycles() uint64 { return c.cycles }

// CyclesExecuted returns the cycle count as it stood immediately before the
// currently (or most recently) decoded instruction was fetched, the
// pre-execution snapshot nestest-format traces report in their CYC field.
func (c *Cpu) CyclesExecuted() uint64 { return c.cyclesExecuted }

// RegistersExecuted returns A, X, Y, P, and S as they stood immediately
// before the currently (or most recently) decoded instruction was fetched,
// the pre-execution snapshot nestest-format traces report.
func (c *Cpu) RegistersExecuted() (a, x, y, p, s byte) {
	return c.aExecuted, c.xExecuted, c.yExecuted, c.pExecuted, c.sExecuted
}

// AtInstructionBoundary reports whether the micro-op queue is currently
// empty, i.e. whether the next clock() call will fetch a fresh opcode.
func (c *Cpu) AtInstructionBoundary() bool { return c.queue.isEmpty() }

// Step runs Clock until an instruction boundary is reached, including the
// boundary-reaching call itself. Used by callers that don't care about
// per-cycle granularity: the debugger's single-step command, and tests.
func (c *Cpu) Step() {
	for !c.Clock() {
	}
}

// CurrentInstruction returns the most recently decoded instruction. Before
// the first fetch it is the zero Instruction (Mnemonic "").
func (c *Cpu) CurrentInstruction() Instruction {
	if c.currentInstruction == nil {
		return Instruction{}
	}
	return *c.currentInstruction
}

// Opcode returns the raw opcode byte of the instruction at PCExecuted.
func (c *Cpu) Opcode() byte { return c.opcode }

// Operands returns up to two operand bytes fetched for tracing, and how many
// of them are meaningful (0, 1, or 2, per the current instruction's length).
func (c *Cpu) Operands() (arg1, arg2 byte, n int) { return c.arg1, c.arg2, c.argc }

// Reset brings the CPU to the documented post-reset state and primes the
// queue with 7 dummy micro-ops, so the first 7 calls to Clock are spent
// before the first real opcode fetch, exactly like the 6502's internal
// reset sequence.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.cycles = 0
	lo := uint16(c.read(0xFFFC))
	hi := uint16(c.read(0xFFFD))
	c.PC = hi<<8 | lo
	c.pcExecuted = c.PC
	c.accumulatorMode = false
	c.queue.clear()
	for i := 0; i < 7; i++ {
		c.queue.enqueue(func(*Cpu) {})
	}
}

// Clock executes exactly one CPU cycle: either fetches and decodes the next
// opcode (enqueueing its micro-ops) or dequeues and runs one micro-op. It
// returns true iff the micro-op queue is empty once the call completes,
// i.e. an instruction boundary has been reached.
func (c *Cpu) Clock() bool {
	c.cycles++

	if c.queue.isEmpty() {
		c.serviceInterruptOrFetch()
		return c.queue.isEmpty()
	}

	op := c.queue.dequeue()
	op(c)
	for c.accumulatorMode && !c.queue.isEmpty() {
		c.queue.dequeue()(c)
	}
	return c.queue.isEmpty()
}

func (c *Cpu) serviceInterruptOrFetch() {
	c.accumulatorMode = false

	if c.nmiPending {
		c.nmiPending = false
		c.enqueueInterrupt(0xFFFA, true)
		return
	}
	if c.irqPending && !c.getFlag(FlagInterrupt) {
		c.irqPending = false
		c.enqueueInterrupt(0xFFFE, false)
		return
	}

	c.pcExecuted = c.PC
	c.cyclesExecuted = c.cycles - 1
	c.aExecuted, c.xExecuted, c.yExecuted, c.pExecuted, c.sExecuted = c.A, c.X, c.Y, c.P, c.S
	c.arg1, c.arg2, c.argc = 0, 0, 0
	c.addressBus = c.PC
	c.PC++
	c.opcode = c.read(c.addressBus)
	c.currentInstruction = &instructionTable[c.opcode]
	c.peekOperandsForTrace()
	c.currentInstruction.addrmode(c)
	c.currentInstruction.operate(c)
}

// peekOperandsForTrace captures up to two operand bytes via ReadOnly access
// (no side effects) so TraceFormatter can render them even though the
// addressing-mode micro-ops have not run yet.
func (c *Cpu) peekOperandsForTrace() {
	n := c.currentInstruction.Bytes - 1
	if n >= 1 {
		c.arg1 = c.readOnly(c.PC)
	}
	if n >= 2 {
		c.arg2 = c.readOnly(c.PC + 1)
	}
	c.argc = n
}

// enqueueInterrupt schedules the shared IRQ/NMI push-and-vector-fetch
// sequence. extraDummyRead adds the one extra tick that distinguishes NMI's
// 8-cycle service from IRQ's 7; the detecting tick itself (the clock() call
// that found the queue empty) is the first of the total.
func (c *Cpu) enqueueInterrupt(vector uint16, extraDummyRead bool) {
	if extraDummyRead {
		c.queue.enqueue(func(*Cpu) {})
	}
	c.queue.enqueue(func(*Cpu) {}) // dummy read of the next instruction byte
	c.queue.enqueue(func(cpu *Cpu) { cpu.push(byte(cpu.PC >> 8)) })
	c.queue.enqueue(func(cpu *Cpu) { cpu.push(byte(cpu.PC)) })
	c.queue.enqueue(func(cpu *Cpu) {
		p := cpu.P | FlagUnused
		p &^= FlagBreak
		cpu.push(p)
		cpu.setFlag(FlagInterrupt, true)
	})
	c.queue.enqueue(func(cpu *Cpu) { cpu.lo = cpu.read(vector) })
	c.queue.enqueue(func(cpu *Cpu) {
		cpu.hi = cpu.read(vector + 1)
		cpu.PC = uint16(cpu.hi)<<8 | uint16(cpu.lo)
	})
}
