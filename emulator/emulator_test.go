package emulator

import (
	"maps"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pfpu/pfpu"
)

func newTestEmulator(t *testing.T) *Emulator {
	emu, err := NewEmulator()
	assert.NoError(t, err)
	return emu
}

func loadAdd(emu *Emulator) {
	ucode := []uint32{0x000c2080, 0, 0, 0, 0, 0x00000003, 0x000c2380}

	emu.Write32(PFPU_BASE+pfpu.REG_MESH_W, 1)
	emu.Write32(PFPU_BASE+pfpu.REG_MESH_H, 0)
	emu.Write32(PFPU_BASE+pfpu.REG_REGFILE+4*3, math.Float32bits(3.0))
	emu.Write32(PFPU_BASE+pfpu.REG_REGFILE+4*4, math.Float32bits(9.0))
	for n, word := range ucode {
		emu.Write32(PFPU_BASE+pfpu.REG_MICROCODE+4*uint32(n), word)
	}
	emu.Write32(PFPU_BASE+pfpu.REG_DMA_BASE, RAM_BASE)
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Pfpu)

	var names []string
	for region := range emu.Bus.Regions() {
		names = append(names, region.Name)
	}
	assert.Equal([]string{"ram", "pic", "pfpu"}, names)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t)
	defines := maps.Collect(emu.Defines())

	assert.Equal("0x60006000", defines["PFPU_BASE"])
	assert.Equal("8", defines["PFPU_IRQ"])
	assert.Equal("0x40000000", defines["RAM_BASE"])
	assert.Equal("0x800", defines["PFPU_MICROCODE"])
}

func TestEmulatorRun(t *testing.T) {
	cases := [](struct {
		name    string
		stepped bool
	}){
		{"sync", false},
		{"stepped", true},
	}

	for _, entry := range cases {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			emu := newTestEmulator(t)
			emu.Pfpu.Stepped = entry.stepped
			emu.Pfpu.Layout = pfpu.LAYOUT_MILKYMIST

			loadAdd(emu)
			emu.Write32(PFPU_BASE+pfpu.REG_CTL, pfpu.CTL_START_BUSY)
			assert.NoError(emu.Wait(0))

			assert.Equal(uint32(0), emu.Read32(PFPU_BASE+pfpu.REG_CTL))
			assert.True(emu.Pic.Latched(PFPU_IRQ))
			assert.Equal(uint32(1<<PFPU_IRQ), emu.Read32(PIC_BASE+0))

			expect := []float32{12, 9, 21, 9}
			for n, value := range expect {
				assert.Equal(math.Float32bits(value), emu.Read32(RAM_BASE+4*uint32(n)))
			}
			assert.Equal(uint32(2), emu.Read32(PFPU_BASE+pfpu.REG_VERTICES))

			emu.Write32(PIC_BASE+0, 1<<PFPU_IRQ)
			assert.False(emu.Pic.Latched(PFPU_IRQ))
		})
	}
}

func TestEmulatorStall(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t)
	emu.Pfpu.Stepped = true
	emu.Write32(PFPU_BASE+pfpu.REG_CTL, pfpu.CTL_START_BUSY)

	err := emu.Wait(0)
	var stalled *ErrStalled
	if assert.ErrorAs(err, &stalled) {
		assert.Equal(0, stalled.Point)
		assert.Equal(pfpu.MICROCODE_WORDS, stalled.Pc)
	}
	assert.False(emu.Pic.Latched(PFPU_IRQ))

	emu.Reset()
	assert.False(emu.Pfpu.Busy())
	assert.NoError(emu.Wait(0))
}

func TestEmulatorWaitLimit(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t)
	emu.Pfpu.Stepped = true
	loadAdd(emu)
	emu.Write32(PFPU_BASE+pfpu.REG_CTL, pfpu.CTL_START_BUSY)

	assert.ErrorIs(emu.Wait(3), ErrStillBusy)
	assert.Equal(uint32(3), emu.Read32(PFPU_BASE+pfpu.REG_PC))
	assert.NoError(emu.Wait(0))
	assert.Equal(1, emu.Pic.Count())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := newTestEmulator(t)
	loadAdd(emu)
	emu.Write32(PFPU_BASE+pfpu.REG_CTL, pfpu.CTL_START_BUSY)
	assert.True(emu.Pic.Latched(PFPU_IRQ))

	emu.Reset()

	assert.False(emu.Pic.Latched(PFPU_IRQ))
	assert.Equal(uint32(0), emu.Read32(RAM_BASE))
	assert.Equal(uint32(0), emu.Read32(PFPU_BASE+pfpu.REG_DMA_BASE))
	assert.Equal(uint32(0), emu.Read32(PFPU_BASE+pfpu.REG_MICROCODE))
	assert.Equal(uint32(0), emu.Read32(PFPU_BASE+pfpu.REG_VERTICES))
}
