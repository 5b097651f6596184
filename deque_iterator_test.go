// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque_test

import (
	"testing"

	"github.com/gothreads/condeque"
	"github.com/stretchr/testify/require"
)

func TestIteratorForwardAndRemove(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	for _, v := range []int{1, 2, 3, 4} {
		chk.NoError(d.AddLast(v))
	}

	it := d.Iterator()
	var got []int
	for it.HasNext() {
		v, ok := it.Next()
		chk.True(ok)
		got = append(got, v)
		if v == 2 {
			chk.NoError(it.Remove())
		}
	}
	chk.Equal([]int{1, 2, 3, 4}, got)

	var remaining []int
	chk.NoError(d.ToArray(&remaining))
	chk.Equal([]int{1, 3, 4}, remaining)
}

func TestIteratorRemoveWithoutNext(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	chk.NoError(d.AddLast(1))
	it := d.Iterator()
	chk.ErrorIs(it.Remove(), condeque.ErrIteratorNotStarted)
}

func TestDescendingIterator(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	for _, v := range []int{1, 2, 3} {
		chk.NoError(d.AddLast(v))
	}
	it := d.DescendingIterator()
	var got []int
	for it.HasNext() {
		v, _ := it.Next()
		got = append(got, v)
	}
	chk.Equal([]int{3, 2, 1}, got)
}

func TestIteratorOnEmptyDeque(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	it := d.Iterator()
	chk.False(it.HasNext())
	_, ok := it.Next()
	chk.False(ok)
}

func TestAllRangeOverFunc(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	for _, v := range []int{1, 2, 3} {
		chk.NoError(d.AddLast(v))
	}
	var got []int
	for v := range d.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	chk.Equal([]int{1, 2}, got)
}
