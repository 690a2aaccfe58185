package pfpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fw(value float32) uint32 {
	return math.Float32bits(value)
}

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     Opcode
		a, b   uint32
		flags  uint32
		result uint32
	}){
		{"fadd", OP_FADD, fw(3), fw(9), 0, fw(12)},
		{"fsub", OP_FSUB, fw(3), fw(9), 0, fw(-6)},
		{"fmul", OP_FMUL, fw(3), fw(9), 0, fw(27)},
		{"fabs", OP_FABS, fw(-2.5), 0, 0, fw(2.5)},
		{"f2i", OP_F2I, fw(-3.7), 0, 0, uint32(0xfffffffd)},
		{"f2i_nan", OP_F2I, fw(float32(math.NaN())), 0, 0, 0},
		{"f2i_big", OP_F2I, fw(1e10), 0, 0, math.MaxInt32},
		{"f2i_small", OP_F2I, fw(-1e10), 0, 0, 0x80000000},
		{"i2f", OP_I2F, 5, 0, 0, fw(5)},
		{"i2f_neg", OP_I2F, 0xffffffff, 0, 0, fw(-1)},
		{"i2f_float_bits", OP_I2F, fw(1), 0, 0, fw(float32(int32(0x3f800000)))},
		{"cos_zero", OP_COS, fw(0), 0, 0, fw(1)},
		{"above_false", OP_ABOVE, fw(3), fw(9), 0, fw(0)},
		{"above_true", OP_ABOVE, fw(9), fw(3), 0, fw(1)},
		{"equal", OP_EQUAL, fw(2), fw(2), 0, fw(1)},
		{"copy", OP_COPY, 0xdeadbeef, 0, 0, 0xdeadbeef},
		{"if_true", OP_IF, 1, 2, 1, 1},
		{"if_false", OP_IF, 1, 2, 0, 2},
		{"tsign_neg", OP_TSIGN, fw(2), fw(-1), 0, fw(-2)},
		{"tsign_pos", OP_TSIGN, fw(2), fw(1), 0, fw(2)},
		{"quake", OP_QUAKE, fw(4), 0, 0, 0x3ef759df},
		{"nop", OP_NOP, fw(4), fw(4), 0, 0},
		{"vectout", OP_VECTOUT, fw(4), fw(4), 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.result, alu(entry.op, entry.a, entry.b, entry.flags), entry.name)
	}
}

func TestAluTrig(t *testing.T) {
	assert := assert.New(t)

	quarter := fw(ANGLE_TURN / 4)
	half := fw(ANGLE_TURN / 2)

	assert.InDelta(1.0, f32(alu(OP_SIN, quarter, 0, 0)), 1e-6)
	assert.InDelta(0.0, f32(alu(OP_COS, quarter, 0, 0)), 1e-6)
	assert.InDelta(-1.0, f32(alu(OP_COS, half, 0, 0)), 1e-6)
	assert.InDelta(0.0, f32(alu(OP_SIN, half, 0, 0)), 1e-6)
}
