package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Concat2 chains key/value sequences, stopping early if the consumer does.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Sorted2 collects a key/value sequence and replays it in key order.
// Later duplicates of a key replace earlier ones.
func Sorted2[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	all := maps.Collect(seq)
	return func(yield func(K, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(all)) {
			if !yield(k, all[k]) {
				return
			}
		}
	}
}
