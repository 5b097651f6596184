// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package boundedset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/gothreads/condeque/internal/counter"
	"github.com/gothreads/condeque/internal/order"
	"github.com/gothreads/condeque/internal/orderedset"
)

// BoundedOrderedSet is a concurrent sorted set that admits every distinct
// key offered to it and then keeps its size at or under max by evicting
// the current smallest keys, per spec.md §4.2. The zero value is not
// usable; construct one with [New] or [NewFunc].
type BoundedOrderedSet[T any] struct {
	max   int
	cnt   counter.Counter
	inner *orderedset.Set[T]
}

// New constructs a [BoundedOrderedSet] with the given soft bound, ordered
// by T's natural ordering. It returns [ErrInvalidMax] if max is not
// positive.
func New[T cmp.Ordered](max int) (*BoundedOrderedSet[T], error) {
	return NewFunc[T](max, order.Natural[T]())
}

// NewFunc constructs a [BoundedOrderedSet] ordered by cmp.
func NewFunc[T any](max int, cmp order.Comparator[T]) (*BoundedOrderedSet[T], error) {
	if max <= 0 {
		return nil, ErrInvalidMax
	}
	return &BoundedOrderedSet[T]{max: max, inner: orderedset.NewFunc(cmp)}, nil
}

// Add inserts e if not already present, and reports whether it did so. A
// successful insertion that pushes cnt above max triggers eviction of the
// current smallest elements (which may, but need not, be e itself) until
// cnt is back at or under max. Add never fails for being "full": the bound
// is soft.
//
// Eviction is serialized through cnt per spec.md §4.2 step 3: each
// goroutine that observes cnt above max first claims the right to evict
// exactly one element by CASing cnt down by one, retrying the load/CAS
// pair on contention, and only performs [Set.RemoveFirst] after winning
// that CAS. Without this, two goroutines could both observe a single unit
// of overflow and each evict an element, driving cnt below max.
func (s *BoundedOrderedSet[T]) Add(e T) bool {
	if !s.inner.Add(e) {
		return false
	}
	s.cnt.Increment()
	for {
		cur := s.cnt.Load()
		if cur <= int64(s.max) {
			return true
		}
		if s.cnt.CompareAndSwap(cur, cur-1) {
			s.inner.RemoveFirst()
		}
	}
}

// Remove always returns false and [ErrRemoveNotSupported]: see that
// error's doc.
func (s *BoundedOrderedSet[T]) Remove(T) (bool, error) {
	return false, ErrRemoveNotSupported
}

// RemoveFirstOccurrence always returns false and [ErrRemoveNotSupported].
func (s *BoundedOrderedSet[T]) RemoveFirstOccurrence(T) (bool, error) {
	return false, ErrRemoveNotSupported
}

// Contains reports whether e is currently present.
func (s *BoundedOrderedSet[T]) Contains(e T) bool {
	return s.inner.Contains(e)
}

// First returns the current smallest element, or ok=false if the set is
// empty.
func (s *BoundedOrderedSet[T]) First() (e T, ok bool) {
	return s.inner.First()
}

// All returns a weakly-consistent ascending iterator over the set's
// current and future elements.
func (s *BoundedOrderedSet[T]) All() iter.Seq[T] {
	return s.inner.All()
}

// Len returns the set's current size, which is at most Max() except for a
// brief window between a size-exceeding Add and the eviction loop that
// follows it.
func (s *BoundedOrderedSet[T]) Len() int {
	return s.inner.Len()
}

// Max returns the soft upper bound supplied at construction.
func (s *BoundedOrderedSet[T]) Max() int {
	return s.max
}

// Cap is an alias for Max, matching Go container conventions.
func (s *BoundedOrderedSet[T]) Cap() int {
	return s.max
}

// String renders the set's current elements in ascending order for
// diagnostics, e.g. "BoundedOrderedSet(max=3)[1 5 9]". Like Len, this is a
// best-effort, non-linearizable traversal under concurrent mutation.
func (s *BoundedOrderedSet[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "BoundedOrderedSet(max=%d)[", s.max)
	first := true
	for v := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
