// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

// This file holds the structural traversal and linking/unlinking primitives
// described in spec.md §4.1: end insertion, end removal support, interior
// unlink, the skipDeletedPredecessors/Successors compression helpers, and
// updateHead/updateTail. Public-facing operations in deque.go and
// deque_bulk.go are built on top of these.
//
// A traversal cursor p is considered "dead" in a given direction once
// either p itself is self-linked on the field being followed (p was
// GC-unlinked with that field pointing back to itself), or the candidate
// node it leads to is self-linked on the *opposite* field (the candidate is
// one of the terminators, or a node GC-unlinked without reference to a
// specific end). Either condition means the cursor has wandered off the
// active chain and traversal must restart or stop, per spec.md's "Terminal
// self-links" note.

func deadForward[T any](p, q *node[T]) bool {
	if q == p {
		return true
	}
	return q.prev.Load() == q
}

func deadBackward[T any](p, q *node[T]) bool {
	if q == p {
		return true
	}
	return q.next.Load() == q
}

// isTerminator reports whether n is one of d's two sentinel nodes, for
// call sites that want to name the condition explicitly rather than rely
// on the self-link shortcut above (a terminator always satisfies it, since
// that is how newTerminators constructs them).
func (d *Deque[T]) isTerminator(n *node[T]) bool {
	return d.term.isPrevTerminator(n) || d.term.isNextTerminator(n)
}

// firstNode returns the current structurally-first node: the one reachable
// by chasing prev links from head until a node with no predecessor is
// found. It opportunistically advances head to reduce future traversal
// length, mirroring the teacher's amortized-CAS pattern in
// internal/nbcq.Queue.PushBack.
func (d *Deque[T]) firstNode() *node[T] {
	for {
		h := d.head.Load()
		p := h
		stale := false
		for {
			q := p.prev.Load()
			if q == nil {
				break
			}
			if deadBackward(p, q) {
				stale = true
				break
			}
			p = q
		}
		if stale {
			continue
		}
		if p != h {
			d.head.CompareAndSwap(h, p)
		}
		return p
	}
}

// lastNode is the symmetric counterpart of firstNode, chasing next links
// from tail.
func (d *Deque[T]) lastNode() *node[T] {
	for {
		t := d.tail.Load()
		p := t
		stale := false
		for {
			q := p.next.Load()
			if q == nil {
				break
			}
			if deadForward(p, q) {
				stale = true
				break
			}
			p = q
		}
		if stale {
			continue
		}
		if p != t {
			d.tail.CompareAndSwap(t, p)
		}
		return p
	}
}

// successor returns p's next node for forward traversal, restarting from
// firstNode if the forward link leads off the active chain. Used by writers
// (pollFirst, removeFirstOccurrence, size, ...) per spec.md's description of
// successor(p).
func (d *Deque[T]) successor(p *node[T]) *node[T] {
	q := p.next.Load()
	if q == nil {
		return nil
	}
	if deadForward(p, q) {
		return d.firstNode()
	}
	return q
}

// predecessor is the symmetric counterpart of successor for backward
// traversal.
func (d *Deque[T]) predecessor(p *node[T]) *node[T] {
	q := p.prev.Load()
	if q == nil {
		return nil
	}
	if deadBackward(p, q) {
		return d.lastNode()
	}
	return q
}

// succOrNil and predOrNil are the read-only-iterator variants of
// successor/predecessor: per spec.md's "Terminal self-links" note, a
// weakly-consistent iterator that wanders off the active chain simply
// terminates rather than restarting from the opposite end (restarting could
// revisit elements already yielded, or yield them out of order).
func (d *Deque[T]) succOrNil(p *node[T]) *node[T] {
	q := p.next.Load()
	if q == nil || deadForward(p, q) {
		return nil
	}
	return q
}

func (d *Deque[T]) predOrNil(p *node[T]) *node[T] {
	q := p.prev.Load()
	if q == nil || deadBackward(p, q) {
		return nil
	}
	return q
}

// firstLive returns the leftmost live node, or ok=false if the deque holds
// no elements.
func (d *Deque[T]) firstLive() (p *node[T], ok bool) {
	p = d.firstNode()
	for {
		if p.live() {
			return p, true
		}
		q := d.successor(p)
		if q == nil {
			return nil, false
		}
		p = q
	}
}

// lastLive is the symmetric counterpart of firstLive.
func (d *Deque[T]) lastLive() (p *node[T], ok bool) {
	p = d.lastNode()
	for {
		if p.live() {
			return p, true
		}
		q := d.predecessor(p)
		if q == nil {
			return nil, false
		}
		p = q
	}
}

// linkFirst installs n as the new first node and returns it. See spec.md's
// "End insertion" algorithm description; this is linkFirst, the mirror of
// linkLast below.
func (d *Deque[T]) linkFirst(n *node[T]) *node[T] {
restart:
	for {
		h := d.head.Load()
		p := h
		hops := 0
		for {
			prev := p.prev.Load()
			switch {
			case prev == nil:
				n.next.Store(p)
				if p.prev.CompareAndSwap(nil, n) {
					if hops > 0 {
						d.head.CompareAndSwap(h, n)
					}
					d.size.Increment()
					return n
				}
				// Lost the race for p; p.prev is now set, re-examine it.
				continue
			case deadBackward(p, prev):
				continue restart
			default:
				p = prev
				hops++
				if hops >= 2 {
					continue restart
				}
			}
		}
	}
}

// linkLast is the symmetric counterpart of linkFirst.
func (d *Deque[T]) linkLast(n *node[T]) *node[T] {
restart:
	for {
		t := d.tail.Load()
		p := t
		hops := 0
		for {
			next := p.next.Load()
			switch {
			case next == nil:
				n.prev.Store(p)
				if p.next.CompareAndSwap(nil, n) {
					if hops > 0 {
						d.tail.CompareAndSwap(t, n)
					}
					d.size.Increment()
					return n
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

// pollFirstNode implements spec.md's "End removal (pollFirst)": walk
// forward from the first node, CAS the first present item to absent, unlink
// and return it.
func (d *Deque[T]) pollFirstNode() (*node[T], bool) {
	p := d.firstNode()
	for {
		v := p.item.Load()
		if v != nil && p.item.CompareAndSwap(v, nil) {
			d.physicalUnlink(p)
			return p, true
		}
		q := d.successor(p)
		if q == nil {
			return nil, false
		}
		p = q
	}
}

// pollLastNode is the symmetric counterpart of pollFirstNode.
func (d *Deque[T]) pollLastNode() (*node[T], bool) {
	p := d.lastNode()
	for {
		v := p.item.Load()
		if v != nil && p.item.CompareAndSwap(v, nil) {
			d.physicalUnlink(p)
			return p, true
		}
		q := d.predecessor(p)
		if q == nil {
			return nil, false
		}
		p = q
	}
}

// physicalUnlink is the shared second half of every removal path: it
// decrements size exactly once and dispatches to unlinkFirst, unlinkLast, or
// the interior unlink path depending on where x sits, per spec.md's
// "Unlink" algorithm. x.item must already be absent.
func (d *Deque[T]) physicalUnlink(x *node[T]) {
	d.size.Decrement()
	prev := x.prev.Load()
	next := x.next.Load()
	switch {
	case prev == nil:
		d.unlinkFirst(x, next)
	case next == nil:
		d.unlinkLast(x, prev)
	default:
		d.unlinkInterior(x, prev, next)
	}
}

// unlinkFirst handles the case where x was the structurally-first node
// (x.prev was absent) and has just gone non-live. It scans forward to find
// the nearest node fit to become the new first (live, or itself structurally
// terminal), rewires it, and GC-unlinks x at the head end.
func (d *Deque[T]) unlinkFirst(x, next *node[T]) {
	for {
		if next == nil {
			// x was also the last node: the deque is momentarily empty and
			// there is nothing to bypass yet.
			return
		}
		if next.live() || next.next.Load() == nil {
			next.prev.Store(nil)
			x.prev.Store(d.term.prevTerminator)
			if h := d.head.Load(); h == x {
				d.head.CompareAndSwap(h, next)
			}
			return
		}
		nn := next.next.Load()
		if deadForward(next, nn) {
			return
		}
		next = nn
	}
}

// unlinkLast is the symmetric counterpart of unlinkFirst.
func (d *Deque[T]) unlinkLast(x, prev *node[T]) {
	for {
		if prev == nil {
			return
		}
		if prev.live() || prev.prev.Load() == nil {
			prev.next.Store(nil)
			x.next.Store(d.term.nextTerminator)
			if t := d.tail.Load(); t == x {
				d.tail.CompareAndSwap(t, prev)
			}
			return
		}
		pp := prev.prev.Load()
		if deadBackward(prev, pp) {
			return
		}
		prev = pp
	}
}

// unlinkInterior handles a node whose neighbors are both real (non-absent)
// nodes, per spec.md's "Interior unlink" algorithm.
func (d *Deque[T]) unlinkInterior(x, xprev, xnext *node[T]) {
	activePred := xprev
	hops := 0
	for !activePred.live() && activePred.prev.Load() != nil {
		p := activePred.prev.Load()
		if deadBackward(activePred, p) {
			return
		}
		activePred = p
		hops++
	}
	activeSucc := xnext
	for !activeSucc.live() && activeSucc.next.Load() != nil {
		n := activeSucc.next.Load()
		if deadForward(activeSucc, n) {
			return
		}
		activeSucc = n
		hops++
	}

	predAtHead := activePred.prev.Load() == nil
	succAtTail := activeSucc.next.Load() == nil
	if hops < 2 && (predAtHead || succAtTail) {
		// Lazy policy: defer cleanup of shallow interior garbage.
		return
	}

	d.skipDeletedSuccessors(activePred)
	d.skipDeletedPredecessors(activeSucc)

	// GC-unlink x: use the terminator sentinel on whichever side reached a
	// structural end, and self-link the other side (spec.md §4.1's "or to
	// self for the interior end").
	if predAtHead {
		x.prev.Store(d.term.prevTerminator)
	} else {
		x.prev.Store(x)
	}
	if succAtTail {
		x.next.Store(d.term.nextTerminator)
	} else {
		x.next.Store(x)
	}

	if predAtHead {
		d.updateHead()
	}
	if succAtTail {
		d.updateTail()
	}
}

// skipDeletedSuccessors compresses a run of non-live nodes out of p's next
// chain, CASing p.next directly to the nearest live (or structurally
// terminal) node.
func (d *Deque[T]) skipDeletedSuccessors(p *node[T]) {
	for {
		q := p.next.Load()
		if q == nil || deadForward(p, q) {
			return
		}
		if q.live() || q.next.Load() == nil {
			return
		}
		target := q
		for !target.live() && target.next.Load() != nil {
			n := target.next.Load()
			if deadForward(target, n) {
				return
			}
			target = n
		}
		if p.next.CompareAndSwap(q, target) {
			return
		}
		// p.next changed under us; re-examine from the top.
	}
}

// skipDeletedPredecessors is the symmetric counterpart of
// skipDeletedSuccessors.
func (d *Deque[T]) skipDeletedPredecessors(p *node[T]) {
	for {
		q := p.prev.Load()
		if q == nil || deadBackward(p, q) {
			return
		}
		if q.live() || q.prev.Load() == nil {
			return
		}
		target := q
		for !target.live() && target.prev.Load() != nil {
			n := target.prev.Load()
			if deadBackward(target, n) {
				return
			}
			target = n
		}
		if p.prev.CompareAndSwap(q, target) {
			return
		}
	}
}

// updateHead moves head forward off of a non-live node, walking at most two
// hops per attempt before re-reading head, per spec.md's description.
// Best-effort: guarantees progress, not full convergence in one call.
func (d *Deque[T]) updateHead() {
	for {
		h := d.head.Load()
		if h.live() || h.prev.Load() == nil {
			return
		}
		p := h
		hops := 0
		stale := false
		for {
			q := p.prev.Load()
			if q == nil {
				break
			}
			if deadBackward(p, q) {
				stale = true
				break
			}
			p = q
			hops++
			if hops >= 2 {
				break
			}
		}
		if stale {
			continue
		}
		if d.head.CompareAndSwap(h, p) {
			return
		}
	}
}

// updateTail is the symmetric counterpart of updateHead.
func (d *Deque[T]) updateTail() {
	for {
		t := d.tail.Load()
		if t.live() || t.next.Load() == nil {
			return
		}
		p := t
		hops := 0
		stale := false
		for {
			q := p.next.Load()
			if q == nil {
				break
			}
			if deadForward(p, q) {
				stale = true
				break
			}
			p = q
			hops++
			if hops >= 2 {
				break
			}
		}
		if stale {
			continue
		}
		if d.tail.CompareAndSwap(t, p) {
			return
		}
	}
}
