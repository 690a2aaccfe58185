package pfpu

import (
	"fmt"
	"strings"
)

// Opcode is the 4-bit operation field of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP     = Opcode(0)  // nop
	OP_FADD    = Opcode(1)  // fadd
	OP_FSUB    = Opcode(2)  // fsub
	OP_FMUL    = Opcode(3)  // fmul
	OP_FABS    = Opcode(4)  // fabs
	OP_F2I     = Opcode(5)  // f2i
	OP_I2F     = Opcode(6)  // i2f
	OP_VECTOUT = Opcode(7)  // vectout
	OP_SIN     = Opcode(8)  // sin
	OP_COS     = Opcode(9)  // cos
	OP_ABOVE   = Opcode(10) // above
	OP_EQUAL   = Opcode(11) // equal
	OP_COPY    = Opcode(12) // copy
	OP_IF      = Opcode(13) // if
	OP_TSIGN   = Opcode(14) // tsign
	OP_QUAKE   = Opcode(15) // quake
)

// Instruction word bit layout.
const (
	INSN_FLAG_EXIT = uint32(1 << 31) // End of program for this point.
	INSN_FLAG_EMIT = uint32(1 << 30) // Emit a vector.
	INSN_RESERVED  = uint32(0x1f << 25)

	INSN_A_SHIFT      = 18
	INSN_B_SHIFT      = 11
	INSN_OPCODE_SHIFT = 7
	INSN_D_SHIFT      = 0

	INSN_REG_MASK    = 0x7f
	INSN_OPCODE_MASK = 0xf
)

// Latency, in cycles, between issuing an opcode and its result retiring.
// Zero means the opcode produces no register result.
var latency = [16]int{
	OP_NOP:     0,
	OP_FADD:    5,
	OP_FSUB:    5,
	OP_FMUL:    7,
	OP_FABS:    2,
	OP_F2I:     2,
	OP_I2F:     3,
	OP_VECTOUT: 0,
	OP_SIN:     4,
	OP_COS:     4,
	OP_ABOVE:   2,
	OP_EQUAL:   2,
	OP_COPY:    2,
	OP_IF:      2,
	OP_TSIGN:   2,
	OP_QUAKE:   2,
}

// LATENCY_MAX bounds the depth of the result pipeline.
const LATENCY_MAX = 8

// Latency returns the issue-to-retire latency of the opcode.
func (op Opcode) Latency() int {
	if op < 0 || int(op) >= len(latency) {
		return 0
	}
	return latency[op]
}

// Flags is the control flag set of a decoded instruction.
type Flags uint8

const (
	FLAG_EXIT = Flags(1 << 0)
	FLAG_EMIT = Flags(1 << 1)
)

// Has reports whether every flag in want is set.
func (fl Flags) Has(want Flags) bool {
	return fl&want == want
}

func (fl Flags) String() string {
	var names []string
	if fl.Has(FLAG_EXIT) {
		names = append(names, "exit")
	}
	if fl.Has(FLAG_EMIT) {
		names = append(names, "emit")
	}
	return strings.Join(names, "|")
}

// Insn is a decoded microcode word.
type Insn struct {
	Word   uint32
	Opcode Opcode
	A      int
	B      int
	D      int
	Flags  Flags
}

// Decode splits a microcode word into its fields. Every word decodes; a
// word with reserved bits set behaves as an all-zero word.
func Decode(word uint32) (insn Insn) {
	insn.Word = word
	if word&INSN_RESERVED != 0 {
		return
	}

	insn.A = int((word >> INSN_A_SHIFT) & INSN_REG_MASK)
	insn.B = int((word >> INSN_B_SHIFT) & INSN_REG_MASK)
	insn.Opcode = Opcode((word >> INSN_OPCODE_SHIFT) & INSN_OPCODE_MASK)
	insn.D = int((word >> INSN_D_SHIFT) & INSN_REG_MASK)

	if word&INSN_FLAG_EXIT != 0 {
		insn.Flags |= FLAG_EXIT
	}
	if word&INSN_FLAG_EMIT != 0 {
		insn.Flags |= FLAG_EMIT
	}
	if insn.Opcode == OP_VECTOUT {
		insn.Flags |= FLAG_EXIT | FLAG_EMIT
	}

	return
}

// Defined is false for words with reserved bits set.
func (insn Insn) Defined() bool {
	return insn.Word&INSN_RESERVED == 0
}

// VectorBase is the first register of the vector an emission writes out.
func (insn Insn) VectorBase() int {
	if insn.Opcode == OP_VECTOUT {
		return insn.A
	}
	return insn.D
}

// MakeInsn encodes an instruction word.
func MakeInsn(op Opcode, a, b, d int, flags Flags) uint32 {
	word := (uint32(a&INSN_REG_MASK) << INSN_A_SHIFT) |
		(uint32(b&INSN_REG_MASK) << INSN_B_SHIFT) |
		(uint32(op&INSN_OPCODE_MASK) << INSN_OPCODE_SHIFT) |
		(uint32(d&INSN_REG_MASK) << INSN_D_SHIFT)
	if flags.Has(FLAG_EXIT) {
		word |= INSN_FLAG_EXIT
	}
	if flags.Has(FLAG_EMIT) {
		word |= INSN_FLAG_EMIT
	}
	return word
}

// String returns a disassembly of the instruction.
func (insn Insn) String() (out string) {
	if !insn.Defined() {
		return fmt.Sprintf(".word 0x%08x", insn.Word)
	}

	out = insn.Opcode.String()
	switch insn.Opcode {
	case OP_NOP:
	case OP_FABS, OP_F2I, OP_I2F, OP_SIN, OP_COS, OP_COPY, OP_QUAKE:
		out += fmt.Sprintf(" r%d", insn.A)
	default:
		out += fmt.Sprintf(" r%d, r%d", insn.A, insn.B)
	}
	if insn.D != 0 {
		out += fmt.Sprintf(" -> r%d", insn.D)
	}
	if insn.Opcode != OP_VECTOUT && insn.Flags != 0 {
		out += " | " + insn.Flags.String()
	}

	return
}
