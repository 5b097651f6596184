// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

import (
	"reflect"
	"sync/atomic"

	"github.com/gothreads/condeque/internal/counter"
)

// Deque is a lock-free, concurrent, unbounded double-ended queue. The zero
// value is not usable; construct one with [New] or [NewFunc].
type Deque[T any] struct {
	head  atomic.Pointer[node[T]]
	tail  atomic.Pointer[node[T]]
	size  counter.Counter
	term  *terminators[T]
	equal func(a, b T) bool
}

// New constructs an empty [Deque] whose comparable-based equality (used by
// [Deque.Contains], [Deque.Remove], and friends) is Go's built-in ==.
func New[T comparable]() *Deque[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc constructs an empty [Deque] using equal for element comparison in
// [Deque.Contains], [Deque.RemoveFirstOccurrence], [Deque.RemoveLastOccurrence],
// and [Deque.Remove]. Use this constructor when T is not comparable with ==
// (for example a slice or a struct containing one).
func NewFunc[T any](equal func(a, b T) bool) *Deque[T] {
	d := &Deque[T]{
		term:  newTerminators[T](),
		equal: equal,
	}
	root := &node[T]{}
	d.head.Store(root)
	d.tail.Store(root)
	return d
}

// isAbsent reports whether e is the "no value" representation condeque
// rejects on insertion: a nil pointer, slice, map, channel, function, or
// interface, per spec.md §7's InvalidArgument case. Non-nilable T always
// returns false.
func isAbsent[T any](e T) bool {
	v := reflect.ValueOf(e)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// AddFirst inserts e at the front of the deque. It always succeeds (the
// deque is unbounded) except when e is an absent value.
func (d *Deque[T]) AddFirst(e T) error {
	if isAbsent(e) {
		return ErrAbsentElement
	}
	d.linkFirst(newNode(e))
	return nil
}

// AddLast inserts e at the back of the deque.
func (d *Deque[T]) AddLast(e T) error {
	if isAbsent(e) {
		return ErrAbsentElement
	}
	d.linkLast(newNode(e))
	return nil
}

// OfferFirst is an alias for [Deque.AddFirst]: since the deque is unbounded,
// offer and add never differ in behavior. Both are provided to match the
// two-name convention of deque-like APIs.
func (d *Deque[T]) OfferFirst(e T) error { return d.AddFirst(e) }

// OfferLast is an alias for [Deque.AddLast].
func (d *Deque[T]) OfferLast(e T) error { return d.AddLast(e) }

// PeekFirst returns the first element without removing it, and false if the
// deque is empty.
func (d *Deque[T]) PeekFirst() (T, bool) {
	var zero T
	p, ok := d.firstLive()
	if !ok {
		return zero, false
	}
	v := p.item.Load()
	if v == nil {
		return zero, false
	}
	return *v, true
}

// PeekLast returns the last element without removing it, and false if the
// deque is empty.
func (d *Deque[T]) PeekLast() (T, bool) {
	var zero T
	p, ok := d.lastLive()
	if !ok {
		return zero, false
	}
	v := p.item.Load()
	if v == nil {
		return zero, false
	}
	return *v, true
}

// PollFirst removes and returns the first element, or false if the deque is
// empty.
func (d *Deque[T]) PollFirst() (T, bool) {
	var zero T
	n, ok := d.pollFirstNode()
	if !ok {
		return zero, false
	}
	return *n.item.Load(), true
}

// PollLast removes and returns the last element, or false if the deque is
// empty.
func (d *Deque[T]) PollLast() (T, bool) {
	var zero T
	n, ok := d.pollLastNode()
	if !ok {
		return zero, false
	}
	return *n.item.Load(), true
}

// GetFirst returns the first element, or [ErrNoSuchElement] if the deque is
// empty.
func (d *Deque[T]) GetFirst() (T, error) {
	v, ok := d.PeekFirst()
	if !ok {
		return v, ErrNoSuchElement
	}
	return v, nil
}

// GetLast returns the last element, or [ErrNoSuchElement] if the deque is
// empty.
func (d *Deque[T]) GetLast() (T, error) {
	v, ok := d.PeekLast()
	if !ok {
		return v, ErrNoSuchElement
	}
	return v, nil
}

// RemoveFirst removes and returns the first element, or [ErrNoSuchElement]
// if the deque is empty.
func (d *Deque[T]) RemoveFirst() (T, error) {
	v, ok := d.PollFirst()
	if !ok {
		return v, ErrNoSuchElement
	}
	return v, nil
}

// RemoveLast removes and returns the last element, or [ErrNoSuchElement] if
// the deque is empty.
func (d *Deque[T]) RemoveLast() (T, error) {
	v, ok := d.PollLast()
	if !ok {
		return v, ErrNoSuchElement
	}
	return v, nil
}

// AddFirstX inserts e at the front of the deque like AddFirst and returns a
// [NodeHandle] on the freshly linked node, so that the caller can later
// remove exactly that element with [Deque.Unlink].
func (d *Deque[T]) AddFirstX(e T) (*NodeHandle[T], error) {
	h, err := NewNodeHandle(e)
	if err != nil {
		return nil, err
	}
	return h, d.AddFirstNode(h)
}

// AddLastX is the X-suffixed counterpart to AddLast.
func (d *Deque[T]) AddLastX(e T) (*NodeHandle[T], error) {
	h, err := NewNodeHandle(e)
	if err != nil {
		return nil, err
	}
	return h, d.AddLastNode(h)
}

// OfferFirstX is the X-suffixed counterpart to OfferFirst.
func (d *Deque[T]) OfferFirstX(e T) (*NodeHandle[T], error) { return d.AddFirstX(e) }

// OfferLastX is the X-suffixed counterpart to OfferLast.
func (d *Deque[T]) OfferLastX(e T) (*NodeHandle[T], error) { return d.AddLastX(e) }

// PollResult is the return type of [Deque.PollFirstX]: the removed element,
// whether one was available, and a handle on the node that held it, per
// spec.md §6's "element+node pair" pollFirstX result.
type PollResult[T any] struct {
	Value T
	Ok    bool
	Node  *NodeHandle[T]
}

// PollFirstX removes and returns the first element as a [PollResult],
// matching spec.md §6's node-returning poll variant. The physically
// unlinked node cannot itself be handed back live (its item has already
// been CAS'd to nil as part of removal), so Node wraps a freshly allocated,
// unlinked node preloaded with Value; passing it to [Deque.AddFirstNode] or
// [Deque.AddLastNode] reinserts the polled value in O(1). Node is nil when
// Ok is false.
func (d *Deque[T]) PollFirstX() PollResult[T] {
	v, ok := d.PollFirst()
	if !ok {
		return PollResult[T]{}
	}
	return PollResult[T]{Value: v, Ok: true, Node: &NodeHandle[T]{n: newNode(v)}}
}

// Size returns the exact number of elements, computed by a full traversal
// of live nodes. Because the deque may be concurrently mutated while Size
// runs, the result reflects some state the deque was in during the call,
// not necessarily its state at any single instant; see spec.md §5.
func (d *Deque[T]) Size() int {
	var count int64
	for p := d.firstNode(); p != nil; p = d.successor(p) {
		if p.live() {
			count++
		}
	}
	return counter.Int32Saturated(count)
}

// SizeApprox returns the running element count maintained by an atomic
// counter, per spec.md §6: O(1), but may be transiently inaccurate under
// concurrent modification (a linkFirst/linkLast increment and a
// pollFirst/pollLast decrement are not part of the same atomic step).
func (d *Deque[T]) SizeApprox() int {
	return counter.Int32Saturated(d.size.Load())
}

// IsEmpty reports whether the deque currently has no live elements. It is
// cheaper than checking Size() == 0 since it stops at the first live node.
func (d *Deque[T]) IsEmpty() bool {
	_, ok := d.firstLive()
	return !ok
}

// Len is an alias for SizeApprox, matching the convention of Go's built-in
// container types that expose a Len method.
func (d *Deque[T]) Len() int {
	return d.SizeApprox()
}
