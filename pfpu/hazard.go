package pfpu

// Counters are the per-run anomaly and output counters.
type Counters struct {
	Vertices    uint32 // Emissions this run.
	Collisions  uint32 // Address reuse and write-port collisions.
	StrayWrites uint32 // Extra emissions and results with no destination.
}

// Hazards tracks the anomalies of one run.
type Hazards struct {
	Counters

	written map[uint32]struct{} // Vector addresses emitted this run.
	emitted bool                // The current pass has emitted.
	held    Counters            // Pipeline hazards of a pass that has not emitted yet.
}

// Reset clears the counters and all tracking state.
func (hz *Hazards) Reset() {
	hz.Counters = Counters{}
	clear(hz.written)
	hz.emitted = false
	hz.held = Counters{}
}

// Emission accounts for one vector written at addr.
func (hz *Hazards) Emission(addr uint32) (collision, stray bool) {
	if hz.written == nil {
		hz.written = make(map[uint32]struct{})
	}

	hz.Vertices++

	if _, collision = hz.written[addr]; collision {
		hz.Collisions++
	}
	hz.written[addr] = struct{}{}

	stray = hz.emitted
	if stray {
		hz.StrayWrites++
	}

	if !hz.emitted {
		hz.Collisions += hz.held.Collisions
		hz.StrayWrites += hz.held.StrayWrites
		hz.held = Counters{}
	}
	hz.emitted = true

	return
}

// PortCollision accounts for two results due on the same cycle. Pipeline
// hazards only count in a pass that emits.
func (hz *Hazards) PortCollision() {
	if hz.emitted {
		hz.Collisions++
	} else {
		hz.held.Collisions++
	}
}

// StrayResult accounts for a result retiring with no destination register.
func (hz *Hazards) StrayResult() {
	if hz.emitted {
		hz.StrayWrites++
	} else {
		hz.held.StrayWrites++
	}
}

// EndPass closes the current point's pass, dropping the pipeline hazards
// of a pass that never emitted.
func (hz *Hazards) EndPass() {
	hz.emitted = false
	hz.held = Counters{}
}
