package bus

import (
	"github.com/ezrec/pfpu/translate"
)

var f = translate.From

// ErrRegionSize is returned when a region is empty or wraps the address space.
type ErrRegionSize struct {
	Name  string
	Start uint32
	Size  uint32
}

func (err *ErrRegionSize) Error() string {
	return f("region %v: invalid size 0x%x at 0x%08x", err.Name, err.Size, err.Start)
}

// ErrRegionOverlap is returned when a region would overlap a mapped one.
type ErrRegionOverlap struct {
	Name  string
	Other string
}

func (err *ErrRegionOverlap) Error() string {
	return f("region %v overlaps %v", err.Name, err.Other)
}
