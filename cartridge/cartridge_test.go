package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES assembles a minimal iNES image: header, optional trainer, PRG,
// CHR. mapperID is split across the header's two nibbles the way real
// dumps encode it.
func buildINES(prgBanks, chrBanks byte, mapperID uint8, mirror byte, trainer bool) []byte {
	var buf bytes.Buffer
	buf.Write(magic)
	buf.WriteByte(prgBanks)
	buf.WriteByte(chrBanks)
	flags6 := mirror&0x01 | (mapperID&0x0F)<<4
	if trainer {
		flags6 |= 0x04
	}
	buf.WriteByte(flags6)
	buf.WriteByte((mapperID & 0xF0))
	buf.Write(make([]byte, 8)) // prgRAM, tvSystem1, tvSystem2, padding[5]

	if trainer {
		buf.Write(make([]byte, 512))
	}
	prg := make([]byte, int(prgBanks)*16*1024)
	for i := range prg {
		prg[i] = byte(i)
	}
	buf.Write(prg)
	chr := make([]byte, int(chrBanks)*8*1024)
	buf.Write(chr)
	return buf.Bytes()
}

func TestLoadParsesHeaderAndBanks(t *testing.T) {
	img := buildINES(1, 1, 0, 0, false)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), c.MapperID)
	assert.Equal(t, Horizontal, c.Mirror)
	assert.Len(t, c.PRG, 16*1024)
	assert.Len(t, c.CHR, 8*1024)
}

func TestLoadSkipsTrainer(t *testing.T) {
	img := buildINES(1, 1, 0, 1, true)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)
	assert.Equal(t, Vertical, c.Mirror)
	assert.Equal(t, byte(0), c.PRG[0], "trainer bytes must not leak into PRG")
}

func TestLoadRejectsBadMagic(t *testing.T) {
	img := buildINES(1, 1, 0, 0, false)
	img[0] = 'X'
	_, err := Load(bytes.NewReader(img), "game.nes")
	require.Error(t, err)
	var invalidErr *InvalidError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "game.nes", invalidErr.Path)
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	img := buildINES(1, 1, 4, 0, false)
	_, err := Load(bytes.NewReader(img), "")
	require.Error(t, err)
}

func TestLoadRejectsTruncatedPRG(t *testing.T) {
	img := buildINES(2, 1, 0, 0, false)
	truncated := img[:len(img)-8*1024-100] // cut all of CHR plus part of PRG
	_, err := Load(bytes.NewReader(truncated), "")
	require.Error(t, err)
}

func TestMapper000SingleBankMirrorsUpperHalf(t *testing.T) {
	img := buildINES(1, 1, 0, 0, false)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)

	lo, ok := c.CPURead(0x8000)
	require.True(t, ok)
	hi, ok := c.CPURead(0xC000)
	require.True(t, ok)
	assert.Equal(t, lo, hi, "16 KiB PRG mirrors into both halves of the ROM window")
}

func TestMapper000WritesAreAbsorbedButClaimed(t *testing.T) {
	img := buildINES(1, 1, 0, 0, false)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)

	before, _ := c.CPURead(0x8000)
	ok := c.CPUWrite(0x8000, 0xFF)
	assert.True(t, ok, "the ROM window is claimed even though PRG is read-only")
	after, _ := c.CPURead(0x8000)
	assert.Equal(t, before, after)
}

func TestMapper000BelowROMWindowIsUnclaimed(t *testing.T) {
	img := buildINES(1, 1, 0, 0, false)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)

	_, ok := c.CPURead(0x4020)
	assert.False(t, ok)
	assert.False(t, c.CPUWrite(0x4020, 0))
}

func TestMapper000ChrRAMIsWritableWhenNoChrBanks(t *testing.T) {
	img := buildINES(1, 0, 0, 0, false)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)
	require.Len(t, c.CHR, 8*1024)

	ok := c.PPUWrite(0x0010, 0x42)
	assert.True(t, ok)
	v, ok := c.PPURead(0x0010)
	require.True(t, ok)
	assert.Equal(t, byte(0x42), v)
}

func TestMapper000ChrROMRejectsWrites(t *testing.T) {
	img := buildINES(1, 1, 0, 0, false)
	c, err := Load(bytes.NewReader(img), "")
	require.NoError(t, err)

	assert.False(t, c.PPUWrite(0x0010, 0x42))
}

func TestInvalidErrorUnwraps(t *testing.T) {
	_, err := LoadFile("does-not-exist.nes")
	require.Error(t, err)
	var invalidErr *InvalidError
	require.ErrorAs(t, err, &invalidErr)
	assert.NotNil(t, invalidErr.Unwrap())
}
