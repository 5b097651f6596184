// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package boundedset

import "github.com/gothreads/condeque/internal/cerr"

var (
	// ErrInvalidMax is returned by [New] and [NewFunc] when max is not
	// positive.
	ErrInvalidMax = cerr.New(cerr.KindInvalidArgument, "boundedset: max must be positive")
	// ErrRemoveNotSupported is returned by [BoundedOrderedSet.Remove] and
	// [BoundedOrderedSet.RemoveFirstOccurrence]: a bounded set's only
	// mutating operation is Add, which evicts the current minimum itself;
	// removal by equality is deliberately not offered, per spec.md §4.2.
	ErrRemoveNotSupported = cerr.New(cerr.KindNotSupported, "boundedset: remove by equality is not supported")
)
