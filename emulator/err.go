package emulator

import (
	"errors"

	"github.com/ezrec/pfpu/translate"
)

var f = translate.From

var (
	ErrStillBusy = errors.New(f("pfpu still busy"))
)

// ErrStalled indicates the PFPU ran off the end of its microcode.
type ErrStalled struct {
	Point int
	Pc    int
}

func (err *ErrStalled) Error() string {
	return f("pfpu stalled at point %d pc %d", err.Point, err.Pc)
}
