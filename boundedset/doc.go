// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

// Package boundedset provides [BoundedOrderedSet], a concurrent sorted set
// with a soft upper bound on size: [BoundedOrderedSet.Add] always succeeds
// (modulo duplicate keys) and then evicts the current smallest elements
// until the set's size is back at or under the bound. It is built directly
// on top of [condeque/internal/orderedset.Set] rather than reimplementing
// ordering, so it inherits that type's lazy skip list concurrency model.
package boundedset
