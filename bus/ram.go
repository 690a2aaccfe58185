package bus

import (
	"encoding/binary"
)

// Ram is a big-endian byte addressed memory.
type Ram struct {
	Data []byte
}

// NewRam returns a zeroed memory of size bytes.
func NewRam(size int) *Ram {
	return &Ram{Data: make([]byte, size)}
}

func (ram *Ram) word(offset uint32) []byte {
	offset &^= 3
	if uint64(offset)+4 > uint64(len(ram.Data)) {
		return nil
	}
	return ram.Data[offset : offset+4]
}

// Read32 reads the aligned word containing offset.
func (ram *Ram) Read32(offset uint32) uint32 {
	word := ram.word(offset)
	if word == nil {
		return 0
	}
	return binary.BigEndian.Uint32(word)
}

// Write32 writes the aligned word containing offset.
func (ram *Ram) Write32(offset uint32, value uint32) {
	word := ram.word(offset)
	if word == nil {
		return
	}
	binary.BigEndian.PutUint32(word, value)
}

// Clear zeroes the memory.
func (ram *Ram) Clear() {
	clear(ram.Data)
}
