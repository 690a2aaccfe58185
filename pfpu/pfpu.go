// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package pfpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// MICROCODE_WORDS is the size of the microcode store.
const MICROCODE_WORDS = 512

// Interrupt is the line pulsed once per completed run.
type Interrupt interface {
	Pulse()
}

// Pfpu is the simulation context for one programmable floating point unit.
type Pfpu struct {
	Verbose bool   // Set to enable verbose logging.
	Stepped bool   // If set, a start only arms the run; advance it with Tick or Run.
	Layout  Layout // DMA layout policy, latched at start.
	Order   Order  // Mesh order policy, latched at start.

	Register  RegFile                 // Operand registers.
	Microcode [MICROCODE_WORDS]uint32 // Microcode store.

	DmaBase   uint32 // DMA_BASE shadow register.
	HMeshLast uint32 // MESH_W shadow register.
	VMeshLast uint32 // MESH_H shadow register.

	Memory    Memory    // DMA target.
	Interrupt Interrupt // Completion interrupt.

	state   State
	stalled bool
	pc      int
	mesh    Mesh
	dma     Dma
	pipe    Pipeline
	hazards Hazards
}

// NewPfpu creates a PFPU writing vectors to mem and pulsing irq.
func NewPfpu(mem Memory, irq Interrupt) (pf *Pfpu) {
	pf = &Pfpu{
		Memory:    mem,
		Interrupt: irq,
	}

	return
}

// Defines returns the register offsets of the PFPU window.
func (pf *Pfpu) Defines() iter.Seq2[string, string] {
	return maps.All(_pfpu_defines)
}

// Reset returns the PFPU to idle, abandoning any run in progress.
// Registers, microcode and the configuration shadows are kept.
func (pf *Pfpu) Reset() {
	if pf.Verbose {
		log.Printf("pfpu: reset")
	}

	pf.state = STATE_IDLE
	pf.stalled = false
	pf.pc = 0
	pf.mesh = Mesh{}
	pf.dma = Dma{}
	pf.pipe.Flush()
	pf.hazards.Reset()
}

// Busy reports whether a run is in progress, including a stalled one.
func (pf *Pfpu) Busy() bool {
	return pf.state == STATE_RUNNING
}

// State returns the mesh controller state.
func (pf *Pfpu) State() State {
	return pf.state
}

// Stalled reports whether the current pass ran off the end of the microcode.
func (pf *Pfpu) Stalled() bool {
	return pf.stalled
}

// Counters returns the counters of the current or most recent run.
func (pf *Pfpu) Counters() Counters {
	return pf.hazards.Counters
}

// Pc returns the program counter within the current pass.
func (pf *Pfpu) Pc() int {
	return pf.pc
}

// Point returns the index and coordinates of the current mesh point. Once
// the mesh is done they are those of the last point.
func (pf *Pfpu) Point() (index, x, y int) {
	x, y = pf.mesh.Point()
	index = min(pf.mesh.Index, max(pf.mesh.Total()-1, 0))
	return
}

// LastDma returns the address of the last word written by DMA.
func (pf *Pfpu) LastDma() uint32 {
	return pf.dma.LastDma
}

// Start begins a run on a 0 to 1 transition of the start bit. A start
// while busy is ignored, and started is false.
func (pf *Pfpu) Start() (started bool) {
	if pf.Busy() {
		if pf.Verbose {
			log.Printf("pfpu: start ignored, busy at point %d pc %d", pf.mesh.Index, pf.pc)
		}
		return false
	}

	pf.mesh = NewMesh(pf.HMeshLast, pf.VMeshLast, pf.Order)
	pf.dma = Dma{Base: pf.DmaBase, Layout: pf.Layout}
	pf.hazards.Reset()
	pf.pipe.Flush()
	pf.stalled = false
	pf.state = STATE_RUNNING

	if pf.Verbose {
		log.Printf("pfpu: start %dx%d %v, dma 0x%08x %v",
			pf.mesh.Width, pf.mesh.Height, pf.mesh.Order, pf.dma.Base, pf.dma.Layout)
	}

	pf.beginPoint()

	return true
}

// Run advances the current run until it is done or stalled.
func (pf *Pfpu) Run() State {
	for pf.state == STATE_RUNNING && !pf.stalled {
		pf.Tick()
	}

	return pf.state
}

// Tick executes a single microcode instruction. done is true once no run
// is in progress; a stalled run never becomes done.
func (pf *Pfpu) Tick() (done bool) {
	if pf.state != STATE_RUNNING {
		return true
	}
	if pf.stalled {
		return false
	}

	insn := Decode(pf.Microcode[pf.pc])
	if pf.Verbose {
		log.Printf("pfpu: %03x: %v", pf.pc, insn)
	}

	pf.execute(insn)

	return pf.state != STATE_RUNNING
}

// execute performs one cycle: issue, retire, emit, advance.
func (pf *Pfpu) execute(insn Insn) {
	if lat := insn.Opcode.Latency(); lat > 0 {
		a := pf.Register[insn.A]
		b := pf.Register[insn.B]
		result := alu(insn.Opcode, a, b, pf.Register[GPR_FLAGS])
		if pf.pipe.Issue(lat, result) {
			pf.hazards.PortCollision()
			if pf.Verbose {
				log.Printf("pfpu: %03x: write port collision", pf.pc)
			}
		}
	}

	if value, ok := pf.pipe.Retire(); ok {
		if insn.D != 0 {
			pf.Register[insn.D] = value
		} else {
			pf.hazards.StrayResult()
			if pf.Verbose {
				log.Printf("pfpu: %03x: stray result 0x%08x", pf.pc, value)
			}
		}
	}

	if insn.Flags.Has(FLAG_EMIT) {
		pf.emit(insn)
	}

	pf.pc++

	switch {
	case insn.Flags.Has(FLAG_EXIT):
		pf.endPoint()
	case pf.pc >= MICROCODE_WORDS:
		pf.stalled = true
		if pf.Verbose {
			log.Printf("pfpu: stalled at point %d, no exit in microcode", pf.mesh.Index)
		}
	}
}

// emit writes the vector of insn for the current point.
func (pf *Pfpu) emit(insn Insn) {
	addr, words := pf.dma.Vector(&pf.mesh, &pf.Register, insn)
	collision, stray := pf.hazards.Emission(addr)
	if pf.Verbose {
		log.Printf("pfpu: %03x: emit 0x%08x %08x collision:%v stray:%v", pf.pc, addr, words, collision, stray)
	}
	pf.dma.Write(pf.Memory, addr, words)
}

// beginPoint prepares the pass of the current mesh point.
func (pf *Pfpu) beginPoint() {
	x, y := pf.mesh.Point()
	pf.Register[GPR_X] = uint32(x)
	pf.Register[GPR_Y] = uint32(y)
	pf.pc = 0
}

// endPoint closes the current pass and moves on, finishing the run after
// the last point.
func (pf *Pfpu) endPoint() {
	pf.pipe.Flush()
	pf.hazards.EndPass()

	if !pf.mesh.Next() {
		pf.beginPoint()
		return
	}

	pf.pc = 0
	pf.state = STATE_DONE

	if pf.Verbose {
		c := pf.hazards.Counters
		log.Printf("pfpu: done, vertices %d collisions %d stray %d", c.Vertices, c.Collisions, c.StrayWrites)
	}

	if pf.Interrupt != nil {
		pf.Interrupt.Pulse()
	}
}

// String returns the current PFPU state as a string.
func (pf *Pfpu) String() (text string) {
	index, x, y := pf.Point()
	c := pf.hazards.Counters

	state := pf.state.String()
	if pf.stalled {
		state += " (stalled)"
	}

	text += fmt.Sprintf("% 10s: %v\n", "state", state)
	text += fmt.Sprintf("% 10s: %03x\n", "pc", pf.pc)
	text += fmt.Sprintf("% 10s: %d (%d,%d) of %dx%d\n", "point", index, x, y, pf.mesh.Width, pf.mesh.Height)
	text += fmt.Sprintf("% 10s: %d\n", "in flight", pf.pipe.Pending())
	text += fmt.Sprintf("% 10s: %d\n", "vertices", c.Vertices)
	text += fmt.Sprintf("% 10s: %d\n", "collisions", c.Collisions)
	text += fmt.Sprintf("% 10s: %d\n", "stray", c.StrayWrites)
	text += fmt.Sprintf("% 10s: %04X_%04X\n", "last dma", pf.LastDma()>>16, pf.LastDma()&0xffff)

	return
}
