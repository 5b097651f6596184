// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

// Package orderedset provides [Set], a concurrent sorted set built as a
// lazy, optimistically-locked skip list: lookups and the first-level scan
// used by [Set.First] are lock-free, while Add and Remove take narrow,
// per-node locks only on the predecessors they are about to splice (the
// approach described by Herlihy & Shavit's lazy skip list, distinct from
// the fully lock-free list [condeque] builds directly). This trades strict
// lock-freedom for a much simpler multi-level splice, which is acceptable
// here because only [condeque.Deque] itself is required to be lock-free.
package orderedset
