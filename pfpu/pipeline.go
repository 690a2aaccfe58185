package pfpu

type pending struct {
	value uint32
	valid bool
}

// Pipeline holds results between issue and retire. Slot k of the ring
// retires k cycles after the current one.
type Pipeline struct {
	slot [LATENCY_MAX]pending
	pos  int
}

// Issue queues value to retire latency cycles from now. If another result
// is already due on that cycle the new one replaces it and collided is true.
func (pl *Pipeline) Issue(latency int, value uint32) (collided bool) {
	if latency <= 0 || latency >= LATENCY_MAX {
		return
	}

	slot := &pl.slot[(pl.pos+latency)%LATENCY_MAX]
	collided = slot.valid
	*slot = pending{value: value, valid: true}

	return
}

// Retire returns the result due this cycle, if any, and advances one cycle.
func (pl *Pipeline) Retire() (value uint32, ok bool) {
	slot := &pl.slot[pl.pos]
	value, ok = slot.value, slot.valid
	*slot = pending{}
	pl.pos = (pl.pos + 1) % LATENCY_MAX

	return
}

// Pending is the number of results in flight.
func (pl *Pipeline) Pending() (count int) {
	for _, slot := range pl.slot {
		if slot.valid {
			count++
		}
	}
	return
}

// Flush drops every result in flight.
func (pl *Pipeline) Flush() {
	clear(pl.slot[:])
	pl.pos = 0
}
