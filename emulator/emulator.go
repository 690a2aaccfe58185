// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/pfpu/bus"
	"github.com/ezrec/pfpu/internal"
	"github.com/ezrec/pfpu/pfpu"
)

const (
	RAM_BASE  = 0x40000000
	RAM_SIZE  = 1 << 20
	PIC_BASE  = 0x60002000
	PFPU_BASE = 0x60006000
	PFPU_IRQ  = 8
)

var _emulator_defines = map[string]string{
	"RAM_BASE":    fmt.Sprintf("0x%x", RAM_BASE),
	"RAM_SIZE":    fmt.Sprintf("0x%x", RAM_SIZE),
	"PIC_BASE":    fmt.Sprintf("0x%x", PIC_BASE),
	"PIC_PENDING": fmt.Sprintf("0x%x", bus.REG_PIC_PENDING),
	"PIC_COUNT":   fmt.Sprintf("0x%x", bus.REG_PIC_COUNT),
	"PFPU_BASE":   fmt.Sprintf("0x%x", PFPU_BASE),
	"PFPU_IRQ":    fmt.Sprintf("%d", PFPU_IRQ),
}

// Emulator state. PFPU + RAM + interrupt controller on one bus.
type Emulator struct {
	Verbose bool       // If set, enables verbose logging.
	Bus     bus.Bus    // System bus; the PFPU DMAs through it.
	Ram     *bus.Ram   // Main memory.
	Pic     bus.Pic    // Interrupt controller.
	Pfpu    *pfpu.Pfpu // Reference to the PFPU simulation.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator, err error) {
	emu = &Emulator{
		Ram: bus.NewRam(RAM_SIZE),
	}

	emu.Pfpu = pfpu.NewPfpu(&emu.Bus, emu.Pic.Line(PFPU_IRQ))

	err = emu.Bus.Map("ram", RAM_BASE, RAM_SIZE, emu.Ram)
	if err != nil {
		return
	}

	err = emu.Bus.Map("pic", PIC_BASE, bus.REG_PIC_SIZE, &emu.Pic)
	if err != nil {
		return
	}

	err = emu.Bus.Map("pfpu", PFPU_BASE, pfpu.REG_WINDOW_SIZE, emu.Pfpu)
	if err != nil {
		return
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.Pfpu.Defines(),
	)
}

// Reset returns every device to its power-on state.
func (emu *Emulator) Reset() {
	emu.setVerbose()

	emu.Pfpu.Reset()
	emu.Pfpu.Register = pfpu.RegFile{}
	emu.Pfpu.Microcode = [pfpu.MICROCODE_WORDS]uint32{}
	emu.Pfpu.DmaBase = 0
	emu.Pfpu.HMeshLast = 0
	emu.Pfpu.VMeshLast = 0

	emu.Pic.Reset()
	emu.Ram.Clear()
}

func (emu *Emulator) setVerbose() {
	emu.Bus.Verbose = emu.Verbose
	emu.Pic.Verbose = emu.Verbose
	emu.Pfpu.Verbose = emu.Verbose
}

// Read32 reads a word from the system bus.
func (emu *Emulator) Read32(addr uint32) uint32 {
	emu.setVerbose()
	return emu.Bus.Read32(addr)
}

// Write32 writes a word to the system bus.
func (emu *Emulator) Write32(addr uint32, value uint32) {
	emu.setVerbose()
	emu.Bus.Write32(addr, value)
}

// Tick performs a single PFPU cycle. done is set once the PFPU is no
// longer busy.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.setVerbose()

	if emu.Pfpu.Stalled() {
		err = &ErrStalled{Point: emu.pfpuPoint(), Pc: emu.Pfpu.Pc()}
		return
	}

	done = emu.Pfpu.Tick()
	return
}

func (emu *Emulator) pfpuPoint() int {
	index, _, _ := emu.Pfpu.Point()
	return index
}

// Wait ticks the PFPU until it is no longer busy, for at most limit
// cycles. A limit of zero or less does not bound the wait.
func (emu *Emulator) Wait(limit int) (err error) {
	for ticks := 0; limit <= 0 || ticks < limit; ticks++ {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	if emu.Pfpu.Busy() {
		err = ErrStillBusy
	}

	return
}
