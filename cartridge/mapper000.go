package cartridge

// Mapper000 is NMOS, no bank switching: the simplest iNES mapper, and the
// only one this core requires. PRG-ROM is always mapped starting at 0x8000;
// a 16 KiB cartridge mirrors itself into the upper half of that window. PRG
// is read-only (no PRG-RAM); CHR is either a fixed 8 KiB bank or, when the
// header declares zero CHR banks, 8 KiB of CHR-RAM.
type Mapper000 struct {
	prgBanks uint8
	chrBanks uint8
}

// NewMapper000 constructs a Mapper000 for the given PRG/CHR bank counts, as
// read from the iNES header (bytes 4 and 5).
func NewMapper000(prgBanks, chrBanks uint8) *Mapper000 {
	return &Mapper000{prgBanks: prgBanks, chrBanks: chrBanks}
}

func (m *Mapper000) CPUMapRead(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if m.prgBanks > 1 {
		return uint32(addr & 0x7FFF), true
	}
	return uint32(addr & 0x3FFF), true
}

func (m *Mapper000) CPUMapWrite(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	// Cartridge ROM is read-only on mapper 0; the address is still
	// claimed (so MemoryMap does not fall through to RAM), but the write
	// itself is silently absorbed by the caller.
	return 0, true
}

func (m *Mapper000) PPUMapRead(addr uint16) (uint32, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	return uint32(addr), true
}

func (m *Mapper000) PPUMapWrite(addr uint16) (uint32, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	if m.chrBanks == 0 {
		// CHR-RAM: writable.
		return uint32(addr), true
	}
	return 0, false
}
