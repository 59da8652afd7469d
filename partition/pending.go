package partition

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Pending is a set of points backed by a 32-bit roaring bitmap.
// The zero value is not usable; call NewPending.
type Pending struct {
	rb *roaring.Bitmap
}

// NewPending returns a set holding points.
func NewPending(points ...int) *Pending {
	r := &Pending{rb: roaring.New()}
	for _, p := range points {
		r.rb.Add(uint32(p))
	}

	return r
}

// Add inserts p and reports whether it was absent.
func (r *Pending) Add(p int) bool { return r.rb.CheckedAdd(uint32(p)) }

// Remove deletes p.
func (r *Pending) Remove(p int) { r.rb.Remove(uint32(p)) }

// Contains reports whether p is in the set.
func (r *Pending) Contains(p int) bool { return r.rb.Contains(uint32(p)) }

// Len returns the number of points.
func (r *Pending) Len() int { return int(r.rb.GetCardinality()) }

// IsEmpty reports whether the set is empty.
func (r *Pending) IsEmpty() bool { return r.rb.IsEmpty() }

// Clone returns an independent copy. A nil receiver clones to an empty set.
func (r *Pending) Clone() *Pending {
	if r == nil {
		return NewPending()
	}

	return &Pending{rb: r.rb.Clone()}
}

// PopMin removes and returns the smallest point; ok is false if the set is empty.
func (r *Pending) PopMin() (p int, ok bool) {
	if r.rb.IsEmpty() {
		return 0, false
	}
	m := r.rb.Minimum()
	r.rb.Remove(m)

	return int(m), true
}

// Points returns the members in ascending order.
func (r *Pending) Points() []int {
	raw := r.rb.ToArray()
	out := make([]int, len(raw))
	for i, x := range raw {
		out[i] = int(x)
	}

	return out
}
