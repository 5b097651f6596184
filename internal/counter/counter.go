// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

// Package counter provides the atomic counter abstraction shared by
// [condeque.Deque]'s sizeApprox and [boundedset.BoundedOrderedSet]'s cnt
// (spec.md §2's "shared support", ~5% of the implementation budget). Both
// callers only ever need increment-by-one, decrement-by-one, a relaxed
// load, and (for BOS) a single compare-and-swap, so this type exposes
// exactly that surface, plus the general Add the two conveniences are built
// on, rather than wrapping the whole of atomic.Int64.
package counter

import "sync/atomic"

// Counter is an atomic, approximate element count. The zero value is ready
// to use and starts at zero.
type Counter struct {
	v atomic.Int64
}

// Add adjusts the counter by delta and returns the updated value.
func (c *Counter) Add(delta int64) int64 {
	return c.v.Add(delta)
}

// Increment is a convenience for Add(1).
func (c *Counter) Increment() int64 {
	return c.Add(1)
}

// Decrement is a convenience for Add(-1).
func (c *Counter) Decrement() int64 {
	return c.Add(-1)
}

// Load returns the current value. Under concurrent mutation this is only
// approximate; it is exact once all mutators have quiesced (spec.md §8,
// invariant 1).
func (c *Counter) Load() int64 {
	return c.v.Load()
}

// CompareAndSwap attempts to move the counter from old to new, reporting
// whether it succeeded. BOS's eviction loop uses this to claim the right to
// remove a single element without double-evicting under contention.
func (c *Counter) CompareAndSwap(old, new int64) bool {
	return c.v.CompareAndSwap(old, new)
}

// Int32Saturated caps v to the range of a signed 32-bit integer, matching
// spec.md §9's note that size() "returns traversal count capped at the
// maximum signed 32-bit integer."
func Int32Saturated(v int64) int {
	const max32 = int64(1)<<31 - 1
	if v > max32 {
		return int(max32)
	}
	if v < 0 {
		return 0
	}
	return int(v)
}
