// Package pfpu implements a behavioral model of a programmable floating point
// unit: a memory mapped peripheral that runs a microprogram once per point of
// a rectangular mesh and writes the resulting vectors to memory by DMA.
//
// The unit has 128 32-bit registers, a 512 word microcode store, an exposed
// result pipeline, and counters for the hazards a program can create:
// collisions (two results or two vectors landing in the same place) and
// stray writes (results with no destination, or extra vectors in one pass).
// Completion is signalled by clearing the busy bit and pulsing an interrupt.
package pfpu
