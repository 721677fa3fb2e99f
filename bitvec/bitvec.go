package bitvec

import (
	"github.com/bits-and-blooms/bitset"
)

// Vector is a set of state indices drawn from a fixed universe [0, n).
// The zero value is unusable; construct with New, NewFromIndices or Full.
type Vector struct {
	n    int
	bits *bitset.BitSet
}

// New returns an empty Vector over the universe [0, n).
// n must be non-negative; a negative n panics (programmer error).
func New(n int) Vector {
	if n < 0 {
		panic("bitvec: negative universe size")
	}
	return Vector{n: n, bits: bitset.New(uint(n))}
}

// NewFromIndices returns a Vector over [0, n) with the given indices set.
// Indices outside [0, n) panic (programmer error).
func NewFromIndices(n int, indices ...int) Vector {
	v := New(n)
	for _, i := range indices {
		v.Set(i)
	}
	return v
}

// Full returns a Vector over [0, n) with every bit set.
func Full(n int) Vector {
	v := New(n)
	v.bits.SetAll()
	return v
}

// Len reports the universe size n.
func (v Vector) Len() int { return v.n }

// Count reports the number of set bits.
func (v Vector) Count() int { return int(v.bits.Count()) }

// None reports whether no bit is set.
func (v Vector) None() bool { return v.bits.None() }

// Set marks state i as a member. Panics if i is outside [0, n).
func (v Vector) Set(i int) {
	v.check(i)
	v.bits.Set(uint(i))
}

// Clear removes state i. Panics if i is outside [0, n).
func (v Vector) Clear(i int) {
	v.check(i)
	v.bits.Clear(uint(i))
}

// Get reports whether state i is a member. Panics if i is outside [0, n).
func (v Vector) Get(i int) bool {
	v.check(i)
	return v.bits.Test(uint(i))
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return Vector{n: v.n, bits: v.bits.Clone()}
}

// Union returns v ∪ o as a new Vector.
func (v Vector) Union(o Vector) Vector {
	v.match(o)
	return Vector{n: v.n, bits: v.bits.Union(o.bits)}
}

// Intersect returns v ∩ o as a new Vector.
func (v Vector) Intersect(o Vector) Vector {
	v.match(o)
	return Vector{n: v.n, bits: v.bits.Intersection(o.bits)}
}

// AndNot returns v \ o as a new Vector.
func (v Vector) AndNot(o Vector) Vector {
	v.match(o)
	return Vector{n: v.n, bits: v.bits.Difference(o.bits)}
}

// Not returns the complement of v within [0, n) as a new Vector.
func (v Vector) Not() Vector {
	return Vector{n: v.n, bits: v.bits.Complement()}
}

// InPlaceUnion adds every member of o to v.
func (v Vector) InPlaceUnion(o Vector) {
	v.match(o)
	v.bits.InPlaceUnion(o.bits)
}

// InPlaceIntersect removes from v every state not in o.
func (v Vector) InPlaceIntersect(o Vector) {
	v.match(o)
	v.bits.InPlaceIntersection(o.bits)
}

// IsDisjoint reports whether v and o share no member.
func (v Vector) IsDisjoint(o Vector) bool {
	v.match(o)
	return v.bits.IntersectionCardinality(o.bits) == 0
}

// IsSubsetOf reports whether every member of v is also in o.
func (v Vector) IsSubsetOf(o Vector) bool {
	v.match(o)
	return o.bits.IsSuperSet(v.bits)
}

// Equals reports whether v and o contain exactly the same states.
func (v Vector) Equals(o Vector) bool {
	return v.n == o.n && v.bits.Equal(o.bits)
}

// NextSet returns the first member ≥ from, and whether one exists.
func (v Vector) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	i, ok := v.bits.NextSet(uint(from))
	if !ok || int(i) >= v.n {
		return 0, false
	}
	return int(i), true
}

// Indices returns the members of v in increasing order. The position of a
// state in this slice is its rank, the index used for sub-universe vectors.
func (v Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// SelectFrom projects v into the sub-universe induced by constraint: the
// result has length constraint.Count(), and bit k is set iff the k-th
// member of constraint (in increasing order) is a member of v.
func (v Vector) SelectFrom(constraint Vector) Vector {
	v.match(constraint)
	out := New(constraint.Count())
	rank := 0
	for i, ok := constraint.NextSet(0); ok; i, ok = constraint.NextSet(i + 1) {
		if v.Get(i) {
			out.Set(rank)
		}
		rank++
	}
	return out
}

func (v Vector) check(i int) {
	if i < 0 || i >= v.n {
		panic("bitvec: state index out of range")
	}
}

func (v Vector) match(o Vector) {
	if v.n != o.n {
		panic("bitvec: universe length mismatch")
	}
}
