// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package order_test

import (
	"strings"
	"testing"

	"github.com/gothreads/condeque/internal/order"
	"github.com/stretchr/testify/require"
)

func TestNatural(t *testing.T) {
	chk := require.New(t)
	cmp := order.Natural[int]()
	chk.True(order.Less(cmp, 1, 2))
	chk.False(order.Less(cmp, 2, 1))
	chk.True(order.Equal(cmp, 3, 3))
}

func TestCustomComparator(t *testing.T) {
	chk := require.New(t)
	cmp := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	chk.True(order.Equal(cmp, "Go", "go"))
	chk.True(order.Less(cmp, "apple", "Banana"))
}
