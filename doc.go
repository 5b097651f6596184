// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

// Package condeque provides [Deque], a lock-free, concurrent, unbounded
// double-ended queue backed by a symmetrical doubly-linked list of nodes.
//
// The design follows java.util.concurrent.ConcurrentLinkedDeque's approach:
// elements are never moved once linked, removal is logical (an element slot
// is cleared rather than the node unlinked) before being physically
// unlinked, and the two ends of the list (head/tail) are updated lazily so
// that most operations cost a single compare-and-swap.
//
// # Concurrency
//
// Every exported method is safe for concurrent use by multiple goroutines
// without external locking. Single-element operations at either end
// (addFirst/addLast/pollFirst/pollLast and friends) are linearizable; bulk
// operations ([Deque.AddAll], [Deque.ToArray], [Deque.Contains]) and the
// weakly-consistent [Iterator] are not atomic with respect to concurrent
// mutation, matching spec.md §5's ordering guarantees. There are no locks,
// no blocking, and no cancellation: every method either makes progress or
// returns immediately.
//
// # Memory reclamation
//
// Nodes are ordinary heap values, one per pushed element; Go's garbage
// collector reclaims them once no live node or iterator still references
// them, which is the "external safe-memory-reclamation mechanism" spec.md
// §5 calls for. Deque never pools or reuses nodes, so there is no ABA
// hazard to guard against with tagged pointers or epochs.
package condeque
