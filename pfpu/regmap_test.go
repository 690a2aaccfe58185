package pfpu

import (
	"maps"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegmapShadows(t *testing.T) {
	table := [](struct {
		offset uint32
		value  uint32
		expect uint32
	}){
		{REG_DMA_BASE, 0x40001000, 0x40001000},
		{REG_MESH_W, 0x0000007f, 0x7f},
		{REG_MESH_W, 0xffffff85, 0x05},
		{REG_MESH_H, 0x00000100, 0x00},
		{REG_MESH_H, 0x00000023, 0x23},
	}

	for _, entry := range table {
		assert := assert.New(t)

		pf := NewPfpu(nil, nil)
		pf.Write32(entry.offset, entry.value)
		assert.Equal(entry.expect, pf.Read32(entry.offset), "offset 0x%03x", entry.offset)
	}
}

func TestRegmapReadOnly(t *testing.T) {
	assert := assert.New(t)

	pf, _, _ := newTestPfpu()
	load(pf, 0, 0, nil, ucodeCollision...)
	pf.Write32(REG_CTL, CTL_START_BUSY)

	before := map[uint32]uint32{}
	for _, offset := range []uint32{REG_VERTICES, REG_COLLISIONS, REG_STRAY, REG_LAST_DMA, REG_PC} {
		before[offset] = pf.Read32(offset)
		pf.Write32(offset, 0xdeadbeef)
	}
	for offset, value := range before {
		assert.Equal(value, pf.Read32(offset), "offset 0x%03x", offset)
	}
	assert.Equal(uint32(testDmaBase+0xc), before[REG_LAST_DMA])
}

func TestRegmapUnmapped(t *testing.T) {
	assert := assert.New(t)

	pf := NewPfpu(nil, nil)
	for _, offset := range []uint32{0x010, 0x028, 0x100, 0x3fc, REG_WINDOW_SIZE, 0xffffffff} {
		pf.Write32(offset, 0x12345678)
		assert.Equal(uint32(0), pf.Read32(offset), "offset 0x%03x", offset)
	}
	assert.Equal(RegFile{}, pf.Register)
	assert.Equal([MICROCODE_WORDS]uint32{}, pf.Microcode)
}

func TestRegmapWindows(t *testing.T) {
	assert := assert.New(t)

	pf := NewPfpu(nil, nil)

	for n := range REGISTER_COUNT {
		pf.Write32(REG_REGFILE+4*uint32(n), uint32(n)|0x100)
	}
	for n := range MICROCODE_WORDS {
		pf.Write32(REG_MICROCODE+4*uint32(n), uint32(n)|0x80000000)
	}

	assert.Equal(uint32(0x100), pf.Register[0])
	assert.Equal(uint32(0x17f), pf.Register[REGISTER_COUNT-1])
	assert.Equal(uint32(0x17f), pf.Read32(REG_REGFILE+4*(REGISTER_COUNT-1)))
	assert.Equal(uint32(0x80000000), pf.Microcode[0])
	assert.Equal(uint32(0x800001ff), pf.Read32(REG_WINDOW_SIZE-4))

	// Sub-word offsets select the containing word.
	assert.Equal(uint32(0x105), pf.Read32(REG_REGFILE+4*5+2))
}

func TestRegmapDefines(t *testing.T) {
	assert := assert.New(t)

	pf := NewPfpu(nil, nil)
	defines := maps.Collect(pf.Defines())

	expect := map[string]uint64{
		"PFPU_CTL":             REG_CTL,
		"PFPU_DMA_BASE":        REG_DMA_BASE,
		"PFPU_MESH_W":          REG_MESH_W,
		"PFPU_MESH_H":          REG_MESH_H,
		"PFPU_VERTICES":        REG_VERTICES,
		"PFPU_COLLISIONS":      REG_COLLISIONS,
		"PFPU_STRAY":           REG_STRAY,
		"PFPU_LAST_DMA":        REG_LAST_DMA,
		"PFPU_PC":              REG_PC,
		"PFPU_REGFILE":         REG_REGFILE,
		"PFPU_MICROCODE":       REG_MICROCODE,
		"PFPU_MICROCODE_WORDS": MICROCODE_WORDS,
		"PFPU_WINDOW_SIZE":     REG_WINDOW_SIZE,
	}

	assert.Len(defines, len(expect))
	for name, value := range expect {
		text, ok := defines[name]
		if !assert.True(ok, name) {
			continue
		}
		got, err := strconv.ParseUint(text, 0, 64)
		assert.NoError(err, name)
		assert.Equal(value, got, name)
	}
}
