// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package orderedset

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/gothreads/condeque/internal/counter"
	"github.com/gothreads/condeque/internal/order"
)

const maxLevel = 32

type node[T any] struct {
	key         T
	next        []*node[T]
	mu          sync.Mutex
	topLevel    int
	marked      bool
	fullyLinked bool
}

// Set is a concurrent sorted set of unique keys, exposing exactly the
// add/remove-first/first primitive a bounded eviction policy needs; it
// does not support arbitrary remove-by-key in a way callers should rely
// on for anything but internal compaction (see [Set.Remove]'s doc).
type Set[T any] struct {
	cmp   order.Comparator[T]
	head  *node[T]
	tail  *node[T]
	count counter.Counter
}

// New constructs an empty [Set] ordered by T's natural ordering.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc[T](order.Natural[T]())
}

// NewFunc constructs an empty [Set] ordered by cmp.
func NewFunc[T any](cmp order.Comparator[T]) *Set[T] {
	tail := &node[T]{topLevel: maxLevel - 1, fullyLinked: true}
	head := &node[T]{topLevel: maxLevel - 1, fullyLinked: true, next: make([]*node[T], maxLevel)}
	for i := range head.next {
		head.next[i] = tail
	}
	return &Set[T]{cmp: cmp, head: head, tail: tail}
}

func randomLevel() int {
	level := 1
	for level < maxLevel && rand.Float64() < 0.5 {
		level++
	}
	return level - 1
}

// find locates key's position, filling preds/succs at every level with the
// immediate predecessor/successor, and returns the level at which a
// matching, not-yet-deleted node was first observed, or -1 if none was.
func (s *Set[T]) find(key T, preds, succs []*node[T]) int {
	lFound := -1
	pred := s.head
	for level := maxLevel - 1; level >= 0; level-- {
		curr := pred.next[level]
		for curr != s.tail && order.Less(s.cmp, curr.key, key) {
			pred = curr
			curr = curr.next[level]
		}
		if lFound == -1 && curr != s.tail && order.Equal(s.cmp, curr.key, key) {
			lFound = level
		}
		preds[level] = pred
		succs[level] = curr
	}
	return lFound
}

// Add inserts key if not already present, and reports whether it did so.
func (s *Set[T]) Add(key T) bool {
	topLevel := randomLevel()
	preds := make([]*node[T], maxLevel)
	succs := make([]*node[T], maxLevel)
	for {
		lFound := s.find(key, preds, succs)
		if lFound != -1 {
			found := succs[lFound]
			if !found.marked {
				for !found.fullyLinked {
					// Another goroutine is still splicing found in; wait it
					// out rather than report a false negative.
					runtime.Gosched()
				}
				return false
			}
			continue
		}

		highestLocked := -1
		valid := true
		for level := 0; valid && level <= topLevel; level++ {
			pred := preds[level]
			succ := succs[level]
			pred.mu.Lock()
			highestLocked = level
			valid = !pred.marked && !succ.marked && pred.next[level] == succ
		}
		if !valid {
			unlockTo(preds, highestLocked)
			continue
		}

		n := &node[T]{key: key, topLevel: topLevel, next: make([]*node[T], topLevel+1)}
		for level := 0; level <= topLevel; level++ {
			n.next[level] = succs[level]
			preds[level].next[level] = n
		}
		n.fullyLinked = true
		unlockTo(preds, highestLocked)
		s.count.Increment()
		return true
	}
}

// Remove deletes key if present, and reports whether it did so. BOS's
// soft-bound eviction always removes the current minimum through
// [Set.RemoveFirst] instead, which is itself built on Remove; Remove-by-key
// is not exposed through [boundedset.BoundedOrderedSet].
func (s *Set[T]) Remove(key T) bool {
	var victim *node[T]
	isMarked := false
	topLevel := -1
	preds := make([]*node[T], maxLevel)
	succs := make([]*node[T], maxLevel)
	for {
		lFound := s.find(key, preds, succs)
		if !isMarked {
			if lFound == -1 {
				return false
			}
			victim = succs[lFound]
			if !victim.fullyLinked || victim.marked {
				return false
			}
			topLevel = victim.topLevel
			victim.mu.Lock()
			if victim.marked {
				victim.mu.Unlock()
				return false
			}
			victim.marked = true
			isMarked = true
		}

		highestLocked := -1
		valid := true
		for level := 0; valid && level <= topLevel; level++ {
			pred := preds[level]
			pred.mu.Lock()
			highestLocked = level
			valid = !pred.marked && pred.next[level] == victim
		}
		if !valid {
			unlockTo(preds, highestLocked)
			continue
		}

		for level := topLevel; level >= 0; level-- {
			preds[level].next[level] = victim.next[level]
		}
		victim.mu.Unlock()
		unlockTo(preds, highestLocked)
		s.count.Decrement()
		return true
	}
}

// RemoveFirst removes and returns the current minimum key, or ok=false if
// the set is empty. It is the primitive [boundedset.BoundedOrderedSet]
// evicts through.
func (s *Set[T]) RemoveFirst() (key T, ok bool) {
	for {
		k, present := s.First()
		if !present {
			return key, false
		}
		if s.Remove(k) {
			return k, true
		}
		// k was removed or re-marked by a racing goroutine; retry.
	}
}

// First returns the current minimum key without removing it, or ok=false
// if the set is empty.
func (s *Set[T]) First() (key T, ok bool) {
	curr := s.head.next[0]
	for curr != s.tail {
		if curr.fullyLinked && !curr.marked {
			return curr.key, true
		}
		curr = curr.next[0]
	}
	return key, false
}

// Contains reports whether key is present.
func (s *Set[T]) Contains(key T) bool {
	pred := s.head
	var curr *node[T]
	for level := maxLevel - 1; level >= 0; level-- {
		curr = pred.next[level]
		for curr != s.tail && order.Less(s.cmp, curr.key, key) {
			pred = curr
			curr = curr.next[level]
		}
	}
	return curr != s.tail && order.Equal(s.cmp, curr.key, key) && curr.fullyLinked && !curr.marked
}

// Len returns the approximate number of keys currently in the set,
// maintained by an atomic counter alongside Add/Remove.
func (s *Set[T]) Len() int {
	return int(s.count.Load())
}

// All returns a weakly-consistent ascending iterator over the set's
// current and future keys, walking the level-0 chain directly.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		curr := s.head.next[0]
		for curr != s.tail {
			if curr.fullyLinked && !curr.marked {
				if !yield(curr.key) {
					return
				}
			}
			curr = curr.next[0]
		}
	}
}

func unlockTo[T any](preds []*node[T], highestLocked int) {
	var last *node[T]
	for level := 0; level <= highestLocked; level++ {
		if preds[level] != last {
			preds[level].mu.Unlock()
			last = preds[level]
		}
	}
}
