package pfpu

const (
	REGISTER_COUNT = 128 // Registers addressable by a 7-bit operand field.

	GPR_X     = 0 // Current point X, loaded before every pass.
	GPR_Y     = 1 // Current point Y, loaded before every pass.
	GPR_FLAGS = 2 // Condition read by 'if'.
)

// RegFile is the operand register bank. Each word is read as a float32 or
// an int32 depending on the opcode.
type RegFile [REGISTER_COUNT]uint32

// Vector returns count consecutive registers starting at n, wrapping at
// the end of the bank.
func (rf *RegFile) Vector(n int, count int) (words []uint32) {
	words = make([]uint32, count)
	for i := range words {
		words[i] = rf[(n+i)%REGISTER_COUNT]
	}
	return
}
