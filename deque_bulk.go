// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

import "iter"

// Sequence is anything [Deque.AddAll] can drain elements from. *Deque[T]
// itself implements Sequence so that one deque's contents can be spliced
// into another, per spec.md §6's addAll(c).
type Sequence[T any] interface {
	All() iter.Seq[T]
}

type sliceSeq[T any] []T

func (s sliceSeq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// Elements adapts a plain slice into a [Sequence] for use with
// [Deque.AddAll].
func Elements[T any](s []T) Sequence[T] {
	return sliceSeq[T](s)
}

// All returns an iterator over the deque's elements from first to last,
// suitable for range-over-func use and as a [Sequence] source for another
// deque's AddAll. It has the same weakly-consistent guarantees as
// [Deque.Iterator].
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := d.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// AddAll appends every element of seq to the back of the deque, in
// iteration order, as a single spliced-in run: the elements become visible
// to concurrent readers together rather than one at a time, per spec.md
// §6's description of addAll. It returns false (with a nil error) if seq
// yielded no elements. Passing d itself returns [ErrSelfInsert].
func (d *Deque[T]) AddAll(seq Sequence[T]) (bool, error) {
	if other, ok := seq.(*Deque[T]); ok && other == d {
		return false, ErrSelfInsert
	}

	var first, last *node[T]
	for e := range seq.All() {
		if isAbsent(e) {
			return false, ErrAbsentElement
		}
		n := newNode(e)
		if first == nil {
			first = n
			last = n
			continue
		}
		n.prev.Store(last)
		last.next.Store(n)
		last = n
	}
	if first == nil {
		return false, nil
	}

	d.spliceLast(first, last)
	return true, nil
}

// spliceLast links the already-chained run [first, last] onto the back of
// the deque as a unit, extending linkLast's single-node CAS loop to a
// pre-built chain.
func (d *Deque[T]) spliceLast(first, last *node[T]) {
	var count int64
	for n := first; ; n = n.next.Load() {
		count++
		if n == last {
			break
		}
	}
	d.size.Add(count)
restart:
	for {
		t := d.tail.Load()
		p := t
		hops := 0
		for {
			next := p.next.Load()
			switch {
			case next == nil:
				first.prev.Store(p)
				if p.next.CompareAndSwap(nil, first) {
					d.tail.CompareAndSwap(t, last)
					return
				}
				continue
			case deadForward(p, next):
				continue restart
			default:
				p = next
				hops++
				if hops >= 2 {
					continue restart
				}
			}
		}
	}
}

// Clear removes every currently-present element by polling from the front
// until the deque observes empty. It is not atomic: a concurrent AddLast
// may interleave and survive the call, per spec.md §6.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.pollFirstNode(); !ok {
			return
		}
	}
}

// ToArray copies every live element, first to last, into *dst, replacing
// its previous contents. It returns [ErrNilTarget] if dst is nil.
func (d *Deque[T]) ToArray(dst *[]T) error {
	if dst == nil {
		return ErrNilTarget
	}
	out := (*dst)[:0]
	for p := d.firstNode(); p != nil; p = d.successor(p) {
		if v := p.item.Load(); v != nil {
			out = append(out, *v)
		}
	}
	*dst = out
	return nil
}

// ForEach calls fn for each live element from first to last, stopping
// early if fn returns false. Like the other bulk operations it is
// weakly-consistent rather than atomic.
func (d *Deque[T]) ForEach(fn func(T) bool) {
	for p := d.firstNode(); p != nil; p = d.successor(p) {
		v := p.item.Load()
		if v == nil {
			continue
		}
		if !fn(*v) {
			return
		}
	}
}

// Contains reports whether e is currently present in the deque, using the
// equality function supplied at construction. It returns [ErrAbsentElement]
// if e is itself an absent value, since no present element can ever equal
// it.
func (d *Deque[T]) Contains(e T) (bool, error) {
	if isAbsent(e) {
		return false, ErrAbsentElement
	}
	found := false
	d.ForEach(func(v T) bool {
		if d.equal(v, e) {
			found = true
			return false
		}
		return true
	})
	return found, nil
}

// RemoveFirstOccurrence removes the first (closest to the front) element
// equal to e, and reports whether one was found. It returns
// [ErrAbsentElement] if e is an absent value.
func (d *Deque[T]) RemoveFirstOccurrence(e T) (bool, error) {
	if isAbsent(e) {
		return false, ErrAbsentElement
	}
	for p := d.firstNode(); p != nil; p = d.successor(p) {
		v := p.item.Load()
		if v == nil || !d.equal(*v, e) {
			continue
		}
		if p.item.CompareAndSwap(v, nil) {
			d.physicalUnlink(p)
			return true, nil
		}
	}
	return false, nil
}

// RemoveLastOccurrence removes the last (closest to the back) element equal
// to e, and reports whether one was found. It returns [ErrAbsentElement] if
// e is an absent value.
func (d *Deque[T]) RemoveLastOccurrence(e T) (bool, error) {
	if isAbsent(e) {
		return false, ErrAbsentElement
	}
	for p := d.lastNode(); p != nil; p = d.predecessor(p) {
		v := p.item.Load()
		if v == nil || !d.equal(*v, e) {
			continue
		}
		if p.item.CompareAndSwap(v, nil) {
			d.physicalUnlink(p)
			return true, nil
		}
	}
	return false, nil
}

// Remove is an alias for [Deque.RemoveFirstOccurrence], matching the
// Collection.remove(Object) convention described in spec.md §6.
func (d *Deque[T]) Remove(e T) (bool, error) {
	return d.RemoveFirstOccurrence(e)
}
