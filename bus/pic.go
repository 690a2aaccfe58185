package bus

import (
	"log"
)

const (
	PIC_LINES = 32

	REG_PIC_PENDING = 0x0 // R: latched lines, W: 1 to clear.
	REG_PIC_COUNT   = 0x4 // R: total pulses since reset.
	REG_PIC_SIZE    = 0x8
)

// Pic latches interrupt pulses until they are cleared.
type Pic struct {
	Verbose bool

	pending uint32
	count   uint32
}

// Line is a single interrupt input of a Pic.
type Line struct {
	pic *Pic
	n   int
}

// Line returns input n of the controller.
func (pic *Pic) Line(n int) *Line {
	return &Line{pic: pic, n: n}
}

// Pulse raises the line.
func (line *Line) Pulse() {
	line.pic.Raise(line.n)
}

// Raise latches line n.
func (pic *Pic) Raise(n int) {
	if n < 0 || n >= PIC_LINES {
		return
	}

	if pic.Verbose {
		log.Printf("pic: irq %d", n)
	}

	pic.pending |= 1 << n
	pic.count++
}

// Latched reports whether line n has been raised since it was last cleared.
func (pic *Pic) Latched(n int) bool {
	if n < 0 || n >= PIC_LINES {
		return false
	}
	return pic.pending&(1<<n) != 0
}

// Clear drops the latch of line n.
func (pic *Pic) Clear(n int) {
	if n < 0 || n >= PIC_LINES {
		return
	}
	pic.pending &^= 1 << n
}

// Count is the number of pulses since the last reset.
func (pic *Pic) Count() int {
	return int(pic.count)
}

// Reset clears every latch and the pulse count.
func (pic *Pic) Reset() {
	pic.pending = 0
	pic.count = 0
}

func (pic *Pic) Read32(offset uint32) (value uint32) {
	switch offset &^ 3 {
	case REG_PIC_PENDING:
		value = pic.pending
	case REG_PIC_COUNT:
		value = pic.count
	}
	return
}

func (pic *Pic) Write32(offset uint32, value uint32) {
	if offset&^3 == REG_PIC_PENDING {
		pic.pending &^= value
	}
}
