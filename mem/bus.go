// Package mem implements the bus contract the CPU uses to reach every other
// component, and the MemoryMap that composes work RAM, the PPU register
// window, and a cartridge behind it.
//
// The NES has two physically separate buses (CPU and PPU). Only the CPU-side
// bus is required for cycle-accurate instruction execution and trace
// reproduction; the PPU bus is modelled only as far as the register stub
// below requires.
package mem

import (
	"log"

	"nes6502/cartridge"
)

// AccessMode selects the effect a BusPort.Access call has. ReadOnly performs
// the same address resolution as Read but must not trigger side effects
// (mapper bank switches, PPU register latches, etc); it exists solely so
// tracing can peek at upcoming operand bytes without disturbing execution.
type AccessMode int

const (
	Read AccessMode = iota
	Write
	ReadOnly
)

// BusPort is the single indirect entry point every CPU memory interaction
// goes through: opcode fetches, operand reads, stack pushes/pops, dummy
// reads, and interrupt vector fetches all call Access. Implementations may
// veto or redirect addresses (a cartridge mapper does both).
type BusPort interface {
	Access(addr uint16, mode AccessMode, data *byte)
}

// Logger is an injected log sink, used instead of a mutable global so the
// same MemoryMap can run silently in tests and noisily under the CLI. It
// replaces the "static Console*" pattern of the original source.
type Logger func(format string, args ...any)

const ramSize = 2048 // 2 KiB, mirrored across 0x0000-0x1FFF

// MemoryMap composes 2 KiB of work RAM, an 8-register PPU stub, and a
// cartridge into one 16-bit address space. The cartridge sees every address
// first and may veto (handle) any of them, including ranges outside the
// conventional 0x8000-0xFFFF ROM window; RAM and the PPU stub are the
// fallback once the cartridge declines.
type MemoryMap struct {
	ram  [ramSize]byte
	Cart *cartridge.Cartridge

	log Logger

	loggedFault bool
}

// Option configures a MemoryMap at construction.
type Option func(*MemoryMap)

// WithLogger overrides the default stderr sink.
func WithLogger(l Logger) Option {
	return func(m *MemoryMap) { m.log = l }
}

// New builds a MemoryMap over the given cartridge. cart may be nil (e.g. for
// CPU-only unit tests that never touch ROM addresses).
func New(cart *cartridge.Cartridge, opts ...Option) *MemoryMap {
	m := &MemoryMap{Cart: cart, log: func(format string, args ...any) {
		log.Printf(format, args...)
	}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Access implements BusPort. Dispatch order: cartridge first (so a mapper
// may intercept any address, including diagnostic overlays outside the
// conventional ROM window), then RAM (mirrored every 0x0800), then the PPU
// register window (mirrored every 0x0008), then open bus (no-op).
func (m *MemoryMap) Access(addr uint16, mode AccessMode, data *byte) {
	if m.Cart != nil {
		var handled bool
		var val byte
		switch mode {
		case Write:
			handled = m.Cart.CPUWrite(addr, *data)
		default: // Read, ReadOnly
			val, handled = m.Cart.CPURead(addr)
		}
		if handled {
			if mode != Write {
				*data = val
			}
			return
		}
	}

	switch {
	case addr <= 0x1FFF:
		idx := addr & 0x07FF
		if mode == Write {
			m.ram[idx] = *data
		} else {
			*data = m.ram[idx]
		}

	case addr >= 0x2000 && addr <= 0x3FFF:
		// Stub: the real PPU latches writes into its internal state machine
		// and serves reads from it. Out of scope here; reads return 0,
		// writes are discarded.
		if mode != Write {
			*data = 0
		}

	default:
		// Open bus. Not modelled: real hardware would return the last
		// value that was on the bus, but no consumer of this core
		// depends on that behaviour.
		if !m.loggedFault {
			m.log("mem: unmapped access at $%04X, mode=%d", addr, mode)
			m.loggedFault = true
		}
	}
}

// Read is a convenience wrapper over Access for callers outside the CPU hot
// path (the debugger, tests).
func (m *MemoryMap) Read(addr uint16) byte {
	var b byte
	m.Access(addr, Read, &b)
	return b
}

// Write is a convenience wrapper over Access for callers outside the CPU hot
// path.
func (m *MemoryMap) Write(addr uint16, data byte) {
	m.Access(addr, Write, &data)
}
