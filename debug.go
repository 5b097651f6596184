// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque

import (
	"fmt"
	"strings"
)

// String renders the deque's current elements for diagnostics, e.g.
// "Deque[1 2 3]". Like the rest of the bulk API this is a best-effort,
// non-linearizable traversal: under concurrent mutation it reflects some
// state the deque was in during the call, not necessarily a single
// instant, matching spec.md §5.
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteString("Deque[")
	first := true
	d.ForEach(func(v T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}

// GoString renders a Go-syntax-like diagnostic view, additionally reporting
// whether head or tail currently sits on one of the two terminator
// sentinels. No code path stores a terminator into head or tail, so both
// flags read false on a consistent deque.
func (d *Deque[T]) GoString() string {
	h := d.head.Load()
	t := d.tail.Load()
	return fmt.Sprintf(
		"&condeque.Deque{elements: %s, headIsTerminator: %t, tailIsTerminator: %t}",
		d.String(), d.isTerminator(h), d.isTerminator(t),
	)
}
