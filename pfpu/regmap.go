package pfpu

import (
	"fmt"
	"log"
)

// Register window offsets, relative to the PFPU base address.
const (
	REG_CTL        = 0x000 // R: busy, W: start
	REG_DMA_BASE   = 0x004 // Vector base address.
	REG_MESH_W     = 0x008 // Mesh width - 1.
	REG_MESH_H     = 0x00c // Mesh height - 1.
	REG_VERTICES   = 0x014 // R: emissions this run.
	REG_COLLISIONS = 0x018 // R: collisions this run.
	REG_STRAY      = 0x01c // R: stray writes this run.
	REG_LAST_DMA   = 0x020 // R: address of the last DMA word.
	REG_PC         = 0x024 // R: program counter.
	REG_REGFILE    = 0x400 // Operand registers, 4 bytes apart.
	REG_MICROCODE  = 0x800 // Microcode store, 4 bytes apart.

	REG_WINDOW_SIZE = REG_MICROCODE + 4*MICROCODE_WORDS

	CTL_START_BUSY = uint32(1 << 0)
)

var _pfpu_defines = map[string]string{
	"PFPU_CTL":             fmt.Sprintf("0x%x", REG_CTL),
	"PFPU_DMA_BASE":        fmt.Sprintf("0x%x", REG_DMA_BASE),
	"PFPU_MESH_W":          fmt.Sprintf("0x%x", REG_MESH_W),
	"PFPU_MESH_H":          fmt.Sprintf("0x%x", REG_MESH_H),
	"PFPU_VERTICES":        fmt.Sprintf("0x%x", REG_VERTICES),
	"PFPU_COLLISIONS":      fmt.Sprintf("0x%x", REG_COLLISIONS),
	"PFPU_STRAY":           fmt.Sprintf("0x%x", REG_STRAY),
	"PFPU_LAST_DMA":        fmt.Sprintf("0x%x", REG_LAST_DMA),
	"PFPU_PC":              fmt.Sprintf("0x%x", REG_PC),
	"PFPU_REGFILE":         fmt.Sprintf("0x%x", REG_REGFILE),
	"PFPU_MICROCODE":       fmt.Sprintf("0x%x", REG_MICROCODE),
	"PFPU_MICROCODE_WORDS": fmt.Sprintf("%d", MICROCODE_WORDS),
	"PFPU_WINDOW_SIZE":     fmt.Sprintf("0x%x", REG_WINDOW_SIZE),
}

// Read32 reads the register at offset within the PFPU window.
func (pf *Pfpu) Read32(offset uint32) (value uint32) {
	switch {
	case offset >= REG_MICROCODE && offset < REG_WINDOW_SIZE:
		return pf.Microcode[(offset-REG_MICROCODE)/4]
	case offset >= REG_REGFILE && offset < REG_REGFILE+4*REGISTER_COUNT:
		return pf.Register[(offset-REG_REGFILE)/4]
	}

	c := pf.hazards.Counters

	switch offset {
	case REG_CTL:
		if pf.Busy() {
			value = CTL_START_BUSY
		}
	case REG_DMA_BASE:
		value = pf.DmaBase
	case REG_MESH_W:
		value = pf.HMeshLast
	case REG_MESH_H:
		value = pf.VMeshLast
	case REG_VERTICES:
		value = c.Vertices
	case REG_COLLISIONS:
		value = c.Collisions
	case REG_STRAY:
		value = c.StrayWrites
	case REG_LAST_DMA:
		value = pf.LastDma()
	case REG_PC:
		value = uint32(pf.pc)
	default:
		if pf.Verbose {
			log.Printf("pfpu: read of unmapped offset 0x%03x", offset)
		}
	}

	return
}

// Write32 writes the register at offset within the PFPU window.
func (pf *Pfpu) Write32(offset uint32, value uint32) {
	switch {
	case offset >= REG_MICROCODE && offset < REG_WINDOW_SIZE:
		pf.Microcode[(offset-REG_MICROCODE)/4] = value
		return
	case offset >= REG_REGFILE && offset < REG_REGFILE+4*REGISTER_COUNT:
		pf.Register[(offset-REG_REGFILE)/4] = value
		return
	}

	switch offset {
	case REG_CTL:
		if value&CTL_START_BUSY != 0 && pf.Start() && !pf.Stepped {
			pf.Run()
		}
	case REG_DMA_BASE:
		pf.DmaBase = value
	case REG_MESH_W:
		pf.HMeshLast = value & MESH_LAST_MASK
	case REG_MESH_H:
		pf.VMeshLast = value & MESH_LAST_MASK
	default:
		if pf.Verbose {
			log.Printf("pfpu: write 0x%08x to read-only or unmapped offset 0x%03x", value, offset)
		}
	}
}
