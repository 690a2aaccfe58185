package pfpu

import (
	"math"
)

// ANGLE_TURN is the sin/cos argument value of one full turn.
const ANGLE_TURN = 16384

// QUAKE_MAGIC seeds the inverse square root estimate.
const QUAKE_MAGIC = 0x5f3759df

func f32(word uint32) float32 {
	return math.Float32frombits(word)
}

func bits32(value float32) uint32 {
	return math.Float32bits(value)
}

func truth(cond bool) uint32 {
	if cond {
		return bits32(1.0)
	}
	return bits32(0.0)
}

// toInt32 truncates toward zero, saturating out of range values and
// mapping NaN to 0.
func toInt32(value float32) int32 {
	switch {
	case math.IsNaN(float64(value)):
		return 0
	case value >= math.MaxInt32:
		return math.MaxInt32
	case value <= math.MinInt32:
		return math.MinInt32
	}
	return int32(value)
}

// alu computes the result of op on the raw source words a and b.
// flags is the current value of the flags register.
func alu(op Opcode, a, b, flags uint32) (result uint32) {
	switch op {
	case OP_FADD:
		result = bits32(f32(a) + f32(b))
	case OP_FSUB:
		result = bits32(f32(a) - f32(b))
	case OP_FMUL:
		result = bits32(f32(a) * f32(b))
	case OP_FABS:
		result = a &^ (1 << 31)
	case OP_F2I:
		result = uint32(toInt32(f32(a)))
	case OP_I2F:
		result = bits32(float32(int32(a)))
	case OP_SIN:
		result = bits32(float32(math.Sin(float64(f32(a)) * 2 * math.Pi / ANGLE_TURN)))
	case OP_COS:
		result = bits32(float32(math.Cos(float64(f32(a)) * 2 * math.Pi / ANGLE_TURN)))
	case OP_ABOVE:
		result = truth(f32(a) > f32(b))
	case OP_EQUAL:
		result = truth(f32(a) == f32(b))
	case OP_COPY:
		result = a
	case OP_IF:
		if flags != 0 {
			result = a
		} else {
			result = b
		}
	case OP_TSIGN:
		if f32(b) < 0 {
			result = bits32(-f32(a))
		} else {
			result = a
		}
	case OP_QUAKE:
		result = QUAKE_MAGIC - (a >> 1)
	}

	return
}
