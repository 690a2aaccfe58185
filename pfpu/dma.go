package pfpu

// Memory is the external address space written by the DMA engine.
type Memory interface {
	Write32(addr uint32, value uint32)
}

// Layout selects where an emission lands and which registers it carries.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_LINEAR    = Layout(0) // linear
	LAYOUT_MILKYMIST = Layout(1) // milkymist
)

const (
	LINEAR_VECTOR_WORDS = 4   // Registers per linear emission.
	LINEAR_STRIDE       = 16  // Bytes between points, linear layout.
	MILKYMIST_STRIDE    = 8   // Bytes between points, milkymist layout.
	MILKYMIST_ROW       = 128 // Points per row, milkymist layout.
)

// ParseLayout returns the Layout with the given name.
func ParseLayout(name string) (layout Layout, ok bool) {
	for _, layout = range []Layout{LAYOUT_LINEAR, LAYOUT_MILKYMIST} {
		if layout.String() == name {
			return layout, true
		}
	}
	return LAYOUT_LINEAR, false
}

// Dma is the vector output engine.
type Dma struct {
	Base    uint32 // Latched DMA_BASE.
	Layout  Layout
	LastDma uint32 // Address of the last word written.
}

// Vector returns the target address and the words of an emission by insn
// at the current mesh point.
func (dma *Dma) Vector(mesh *Mesh, regs *RegFile, insn Insn) (addr uint32, words []uint32) {
	switch dma.Layout {
	case LAYOUT_MILKYMIST:
		x, y := mesh.Point()
		addr = dma.Base + uint32(MILKYMIST_STRIDE*(MILKYMIST_ROW*y+x))
		words = []uint32{regs[insn.A], regs[insn.B]}
	default:
		addr = dma.Base + uint32(LINEAR_STRIDE*mesh.Index)
		words = regs.Vector(insn.VectorBase(), LINEAR_VECTOR_WORDS)
	}
	return
}

// Write stores words at consecutive addresses starting at addr.
func (dma *Dma) Write(mem Memory, addr uint32, words []uint32) {
	for n, word := range words {
		dma.LastDma = addr + uint32(4*n)
		if mem != nil {
			mem.Write32(dma.LastDma, word)
		}
	}
}
