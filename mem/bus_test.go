package mem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nes6502/cartridge"
)

func TestRAMMirrorsAcrossFourBanks(t *testing.T) {
	m := New(nil)
	m.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0x0800))
	assert.Equal(t, byte(0x42), m.Read(0x1000))
	assert.Equal(t, byte(0x42), m.Read(0x1800))
}

func TestPPURegisterWindowReadsZeroAndDiscardsWrites(t *testing.T) {
	m := New(nil)
	m.Write(0x2000, 0xFF)
	assert.Equal(t, byte(0), m.Read(0x2000))
	assert.Equal(t, byte(0), m.Read(0x3FFF))
}

func TestCartridgeTakesPrecedenceOverRAM(t *testing.T) {
	img := buildINES(t, 1, 1, 0)
	cart, err := cartridge.Load(bytes.NewReader(img), "")
	require.NoError(t, err)

	m := New(cart)
	v := m.Read(0x8000)
	assert.Equal(t, cart.PRG[0], v)

	m.Write(0x0000, 0x99)
	assert.Equal(t, byte(0x99), m.Read(0x0000), "addresses below the ROM window still reach RAM")
}

func TestReadOnlyAccessHasNoSideEffects(t *testing.T) {
	m := New(nil)
	m.Write(0x0000, 0x11)
	var b byte
	m.Access(0x0000, ReadOnly, &b)
	assert.Equal(t, byte(0x11), b)
	assert.Equal(t, byte(0x11), m.Read(0x0000))
}

func buildINES(t *testing.T, prgBanks, chrBanks byte, mapperID uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("NES\x1A")
	buf.WriteByte(prgBanks)
	buf.WriteByte(chrBanks)
	buf.WriteByte((mapperID & 0x0F) << 4)
	buf.WriteByte(mapperID & 0xF0)
	buf.Write(make([]byte, 8))
	prg := make([]byte, int(prgBanks)*16*1024)
	for i := range prg {
		prg[i] = byte(i + 1)
	}
	buf.Write(prg)
	buf.Write(make([]byte, int(chrBanks)*8*1024))
	return buf.Bytes()
}
