// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

import "sync/atomic"

// node is the unit of the deque's doubly-linked list. All three fields are
// accessed exclusively through the atomic.Pointer operations below: prev and
// next are never written with a plain "=", and item is only ever moved from
// present to absent (nil) after construction, per spec.md §3's node
// lifecycle.
//
// item holds the stored element, boxed so that a nil *T can represent
// "absent" independent of T's own zero value. Once item transitions to nil
// it is never set back to non-nil (invariant 3).
type node[T any] struct {
	item atomic.Pointer[T]
	prev atomic.Pointer[node[T]]
	next atomic.Pointer[node[T]]
}

// newNode allocates a fresh, unlinked, live node holding e. The item is
// stored with a single relaxed-then-published write: nothing else can
// observe n until it is installed into a neighbor's prev/next via CAS, and
// that CAS happens-before any later load of n.item by another goroutine.
func newNode[T any](e T) *node[T] {
	n := &node[T]{}
	v := e
	n.item.Store(&v)
	return n
}

// live reports whether n currently holds an element.
func (n *node[T]) live() bool {
	return n.item.Load() != nil
}

// terminators holds the pair of sentinel nodes described in spec.md §3: one
// pair allocated per Deque value by NewFunc (Go generics monomorphize
// per type argument, so there is no single node value shared across every
// Deque[T] the way Java's statics are shared across every
// ConcurrentLinkedDeque<E>; this pair plays the identical role for one
// Deque[T] value). Neither terminator is ever live, and neither is ever
// reachable from head/tail.
type terminators[T any] struct {
	// prevTerminator marks "off the list at the head end": it is stored as
	// the prev field of a node that has been GC-unlinked near the front.
	prevTerminator *node[T]
	// nextTerminator marks "off the list at the tail end": stored as the
	// next field of a node GC-unlinked near the back.
	nextTerminator *node[T]
}

func newTerminators[T any]() *terminators[T] {
	t := &terminators[T]{
		prevTerminator: &node[T]{},
		nextTerminator: &node[T]{},
	}
	// Each terminator self-links on the field that makes it recognizable as
	// a terminator: spec.md §3, "PREV_TERMINATOR (with next pointing to
	// itself) and NEXT_TERMINATOR (with prev pointing to itself)".
	t.prevTerminator.next.Store(t.prevTerminator)
	t.nextTerminator.prev.Store(t.nextTerminator)
	return t
}

func (t *terminators[T]) isPrevTerminator(n *node[T]) bool {
	return n == t.prevTerminator
}

func (t *terminators[T]) isNextTerminator(n *node[T]) bool {
	return n == t.nextTerminator
}
