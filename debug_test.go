// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque_test

import (
	"testing"

	"github.com/gothreads/condeque"
	"github.com/stretchr/testify/require"
)

func TestDequeStringAndGoString(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	chk.Equal("Deque[]", d.String())

	chk.NoError(d.AddLast(1))
	chk.NoError(d.AddLast(2))
	chk.Equal("Deque[1 2]", d.String())
	chk.Contains(d.GoString(), "Deque[1 2]")
}
