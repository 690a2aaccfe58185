// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bus

import (
	"iter"
	"log"
	"slices"
)

// Device is a memory mapped peripheral. Offsets are relative to the start
// of the region the device is mapped at.
type Device interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, value uint32)
}

// Region is a mapped address range, inclusive of End.
type Region struct {
	Name   string
	Start  uint32
	End    uint32
	Device Device
}

// Contains reports whether addr falls within the region.
func (rg *Region) Contains(addr uint32) bool {
	return addr >= rg.Start && addr <= rg.End
}

func (rg *Region) overlaps(other *Region) bool {
	return rg.Start <= other.End && other.Start <= rg.End
}

// Bus routes 32-bit accesses to the devices mapped on it.
type Bus struct {
	Verbose bool // Set to log unmapped accesses.

	regions []Region // Sorted by Start.
}

// Map places dev at [start, start+size).
func (bus *Bus) Map(name string, start uint32, size uint32, dev Device) (err error) {
	if size == 0 || start+(size-1) < start {
		err = &ErrRegionSize{Name: name, Start: start, Size: size}
		return
	}

	region := Region{
		Name:   name,
		Start:  start,
		End:    start + (size - 1),
		Device: dev,
	}

	for _, other := range bus.regions {
		if region.overlaps(&other) {
			err = &ErrRegionOverlap{Name: name, Other: other.Name}
			return
		}
	}

	index, _ := slices.BinarySearchFunc(bus.regions, start, func(rg Region, addr uint32) int {
		switch {
		case rg.Start < addr:
			return -1
		case rg.Start > addr:
			return 1
		}
		return 0
	})
	bus.regions = slices.Insert(bus.regions, index, region)

	if bus.Verbose {
		log.Printf("bus: map %s 0x%08x-0x%08x", name, region.Start, region.End)
	}

	return
}

// Regions returns the mapped regions in address order.
func (bus *Bus) Regions() iter.Seq[Region] {
	return slices.Values(bus.regions)
}

// Lookup returns the region containing addr, if any.
func (bus *Bus) Lookup(addr uint32) (region *Region, ok bool) {
	for n := range bus.regions {
		region = &bus.regions[n]
		if region.Contains(addr) {
			return region, true
		}
	}
	return nil, false
}

// Read32 reads the word at addr. Unmapped addresses read as zero.
func (bus *Bus) Read32(addr uint32) (value uint32) {
	region, ok := bus.Lookup(addr)
	if !ok {
		if bus.Verbose {
			log.Printf("bus: read of unmapped address 0x%08x", addr)
		}
		return
	}

	return region.Device.Read32(addr - region.Start)
}

// Write32 writes the word at addr. Writes to unmapped addresses are dropped.
func (bus *Bus) Write32(addr uint32, value uint32) {
	region, ok := bus.Lookup(addr)
	if !ok {
		if bus.Verbose {
			log.Printf("bus: write 0x%08x to unmapped address 0x%08x", value, addr)
		}
		return
	}

	region.Device.Write32(addr-region.Start, value)
}
