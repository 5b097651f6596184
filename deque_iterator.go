// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

// Iterator is a weakly-consistent, single-goroutine cursor over a [Deque]:
// it reflects some state the deque was, is, or will be in during the
// iteration, is guaranteed not to throw, and never returns an element more
// than once, per spec.md §5. It is not safe for concurrent use by multiple
// goroutines.
type Iterator[T any] struct {
	d            *Deque[T]
	descending   bool
	nextNode     *node[T]
	nextItem     *T
	lastReturned *node[T]
}

// Iterator returns a front-to-back [Iterator] over the deque's current and
// future elements.
func (d *Deque[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{d: d, nextNode: d.firstNode()}
	it.prime()
	return it
}

// DescendingIterator returns a back-to-front [Iterator].
func (d *Deque[T]) DescendingIterator() *Iterator[T] {
	it := &Iterator[T]{d: d, descending: true, nextNode: d.lastNode()}
	it.prime()
	return it
}

// prime establishes the invariant that nextNode/nextItem either both name a
// live, not-yet-yielded node, or are both nil.
func (it *Iterator[T]) prime() {
	if v := it.nextNode.item.Load(); v != nil {
		it.nextItem = v
		return
	}
	it.advance()
}

func (it *Iterator[T]) advance() {
	p := it.nextNode
	for p != nil {
		if it.descending {
			p = it.d.predOrNil(p)
		} else {
			p = it.d.succOrNil(p)
		}
		if p == nil {
			break
		}
		if v := p.item.Load(); v != nil {
			it.nextNode = p
			it.nextItem = v
			return
		}
	}
	it.nextNode = nil
	it.nextItem = nil
}

// HasNext reports whether a call to Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.nextItem != nil
}

// Next returns the next element in iteration order, and false once the
// iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.nextItem == nil {
		var zero T
		return zero, false
	}
	v := *it.nextItem
	it.lastReturned = it.nextNode
	it.advance()
	return v, true
}

// Remove removes the element most recently returned by Next from the
// underlying deque. It returns [ErrIteratorNotStarted] if Next has not been
// called since construction or since the last Remove.
func (it *Iterator[T]) Remove() error {
	n := it.lastReturned
	if n == nil {
		return ErrIteratorNotStarted
	}
	it.lastReturned = nil
	if v := n.item.Load(); v != nil && n.item.CompareAndSwap(v, nil) {
		it.d.physicalUnlink(n)
	}
	return nil
}
