// SPDX-License-Identifier: MIT

package vecutil

import (
	"github.com/veristoch/mdpcheck/bitvec"
)

// Fill sets dst[i] = value for every state i in positions.
func Fill(dst []float64, positions bitvec.Vector, value float64) {
	mustLen(len(dst), positions.Len())
	for i, ok := positions.NextSet(0); ok; i, ok = positions.NextSet(i + 1) {
		dst[i] = value
	}
}

// Scatter copies src, indexed by rank, onto the positions of dst:
// dst[k-th member of positions] = src[k].
func Scatter(dst []float64, positions bitvec.Vector, src []float64) {
	mustLen(len(dst), positions.Len())
	mustLen(len(src), positions.Count())
	k := 0
	for i, ok := positions.NextSet(0); ok; i, ok = positions.NextSet(i + 1) {
		dst[i] = src[k]
		k++
	}
}

// SelectValues gathers, for every kept state in group order, the src
// entries of all rows in its group: the result has one entry per kept row.
// src is indexed by row (length idx[n]).
func SelectValues(positions bitvec.Vector, idx []int, src []float64) []float64 {
	mustLen(positions.Len(), len(idx)-1)
	mustLen(len(src), idx[len(idx)-1])
	out := make([]float64, 0)
	for s, ok := positions.NextSet(0); ok; s, ok = positions.NextSet(s + 1) {
		out = append(out, src[idx[s]:idx[s+1]]...)
	}
	return out
}

// SelectValuesRepeatedly gathers, for every kept state, its src entry
// repeated once per row of its group. src is indexed by state (length n).
func SelectValuesRepeatedly(positions bitvec.Vector, idx []int, src []float64) []float64 {
	mustLen(positions.Len(), len(idx)-1)
	mustLen(len(src), len(idx)-1)
	out := make([]float64, 0)
	for s, ok := positions.NextSet(0); ok; s, ok = positions.NextSet(s + 1) {
		for r := idx[s]; r < idx[s+1]; r++ {
			out = append(out, src[s])
		}
	}
	return out
}

// ReduceMin writes into target, per group, the minimum source entry of the
// group's rows. If choices is non-nil it receives the 0-based offset of
// the winning row within its group; the first minimal row wins ties.
// source has one entry per row, target one per group.
func ReduceMin(source []float64, target []float64, idx []int, choices []int) {
	reduce(source, target, idx, choices, func(candidate, best float64) bool { return candidate < best })
}

// ReduceMax is ReduceMin with the maximal entry winning.
func ReduceMax(source []float64, target []float64, idx []int, choices []int) {
	reduce(source, target, idx, choices, func(candidate, best float64) bool { return candidate > best })
}

func reduce(source, target []float64, idx []int, choices []int, better func(candidate, best float64) bool) {
	mustLen(len(target), len(idx)-1)
	mustLen(len(source), idx[len(idx)-1])
	if choices != nil {
		mustLen(len(choices), len(target))
	}
	for s := 0; s < len(target); s++ {
		best := source[idx[s]]
		bestOffset := 0
		for r := idx[s] + 1; r < idx[s+1]; r++ {
			if better(source[r], best) {
				best = source[r]
				bestOffset = r - idx[s]
			}
		}
		target[s] = best
		if choices != nil {
			choices[s] = bestOffset
		}
	}
}

// AddInPlace sets dst[i] += src[i] elementwise.
func AddInPlace(dst, src []float64) {
	mustLen(len(dst), len(src))
	for i := range dst {
		dst[i] += src[i]
	}
}

// SubtractFromConstantOne sets dst[i] = 1 - dst[i] elementwise.
func SubtractFromConstantOne(dst []float64) {
	for i := range dst {
		dst[i] = 1 - dst[i]
	}
}

// ConstrainedOffsetVector re-bases a group offset slice onto the kept
// states: the result has keep.Count()+1 entries and preserves every kept
// group's size.
func ConstrainedOffsetVector(idx []int, keep bitvec.Vector) []int {
	mustLen(keep.Len(), len(idx)-1)
	out := make([]int, 1, keep.Count()+1)
	for s, ok := keep.NextSet(0); ok; s, ok = keep.NextSet(s + 1) {
		out = append(out, out[len(out)-1]+idx[s+1]-idx[s])
	}
	return out
}

func mustLen(got, want int) {
	if got != want {
		panic("vecutil: length mismatch")
	}
}
