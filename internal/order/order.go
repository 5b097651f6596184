// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

// Package order provides the monotonic comparison primitive over element
// types that [condeque] and [boundedset] share (spec.md §2's "shared
// support"). It mirrors the ecosystem's cmp package shape (negative/zero/
// positive return for less/equal/greater) so that a [Comparator] built from
// a user func composes with cmp.Compare-based callers.
package order

import "cmp"

// Comparator reports the relative order of a and b: negative if a sorts
// before b, zero if they are equivalent, positive if a sorts after b.
type Comparator[T any] func(a, b T) int

// Natural returns a Comparator for any cmp.Ordered type, delegating to
// cmp.Compare.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Less reports whether a sorts strictly before b under cmp.
func Less[T any](cmp Comparator[T], a, b T) bool {
	return cmp(a, b) < 0
}

// Equal reports whether a and b are equivalent under cmp.
func Equal[T any](cmp Comparator[T], a, b T) bool {
	return cmp(a, b) == 0
}
