// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

import "github.com/gothreads/condeque/internal/cerr"

// Sentinel errors surfaced by Deque, classified per spec.md §7 by wrapping
// cerr.New's Kind alongside each one. Check with errors.Is; callers that
// want to branch on category instead can errors.As into *cerr.KindError and
// inspect its Kind field.
var (
	// ErrAbsentElement is returned when a caller passes the zero value of a
	// pointer-shaped T, or otherwise attempts to insert condeque's internal
	// notion of "no element" into the deque.
	ErrAbsentElement = cerr.New(cerr.KindInvalidArgument, "condeque: absent element is not a valid deque value")
	// ErrSelfInsert is returned by AddAll when passed the receiver itself.
	ErrSelfInsert = cerr.New(cerr.KindInvalidArgument, "condeque: cannot add a deque's own elements to itself")
	// ErrNilTarget is returned by ToArray when given a nil destination slice
	// pointer.
	ErrNilTarget = cerr.New(cerr.KindInvalidArgument, "condeque: nil destination")
	// ErrUnlinkNotSupported is returned by [Deque.Unlink] when passed a
	// handle that was never linked into this deque.
	ErrUnlinkNotSupported = cerr.New(cerr.KindNotSupported, "condeque: node handle does not belong to this deque")
	// ErrNodeAlreadyLinked is returned by [Deque.AddFirstNode] and
	// [Deque.AddLastNode] when passed a handle already linked into a deque.
	ErrNodeAlreadyLinked = cerr.New(cerr.KindInvalidArgument, "condeque: node handle is already linked")

	// ErrNoSuchElement is returned by the strict accessors (GetFirst,
	// GetLast, RemoveFirst, RemoveLast) when the deque is empty.
	ErrNoSuchElement = cerr.New(cerr.KindNoSuchElement, "condeque: deque is empty")
	// ErrIteratorNotStarted is returned by [Iterator.Remove] when called
	// before the first successful call to Next, or a second time without a
	// successful Next in between.
	ErrIteratorNotStarted = cerr.New(cerr.KindNotSupported, "condeque: Remove called without a preceding Next")

	// ErrInternalInconsistency marks a defensive assertion failure: an
	// invariant the implementation relies on did not hold.
	ErrInternalInconsistency = cerr.New(cerr.KindInternalInconsistency, "condeque: internal inconsistency")
)
