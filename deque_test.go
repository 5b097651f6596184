// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package condeque_test

import (
	"testing"

	"github.com/gothreads/condeque"
	"github.com/stretchr/testify/require"
)

func TestDequeBasicFunctionality(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()

	chk.True(d.IsEmpty())
	_, ok := d.PollFirst()
	chk.False(ok)

	chk.NoError(d.AddLast(1))
	chk.NoError(d.AddLast(2))
	chk.NoError(d.AddLast(3))
	chk.Equal(3, d.SizeApprox())
	chk.Equal(3, d.Size())

	v, ok := d.PeekFirst()
	chk.True(ok)
	chk.Equal(1, v)

	v, ok = d.PollFirst()
	chk.True(ok)
	chk.Equal(1, v)

	v, ok = d.PollLast()
	chk.True(ok)
	chk.Equal(3, v)

	v, ok = d.PollFirst()
	chk.True(ok)
	chk.Equal(2, v)

	_, ok = d.PollFirst()
	chk.False(ok)
	chk.True(d.IsEmpty())
}

func TestDequeAddFirstAddLastOrdering(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()

	chk.NoError(d.AddLast(2))
	chk.NoError(d.AddFirst(1))
	chk.NoError(d.AddLast(3))
	chk.NoError(d.AddFirst(0))

	var got []int
	d.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	chk.Equal([]int{0, 1, 2, 3}, got)
}

func TestDequeRejectsAbsentElement(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[*int]()
	chk.ErrorIs(d.AddFirst(nil), condeque.ErrAbsentElement)
	chk.ErrorIs(d.AddLast(nil), condeque.ErrAbsentElement)
}

func TestDequeGetAndRemoveOnEmpty(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	_, err := d.GetFirst()
	chk.ErrorIs(err, condeque.ErrNoSuchElement)
	_, err = d.GetLast()
	chk.ErrorIs(err, condeque.ErrNoSuchElement)
	_, err = d.RemoveFirst()
	chk.ErrorIs(err, condeque.ErrNoSuchElement)
	_, err = d.RemoveLast()
	chk.ErrorIs(err, condeque.ErrNoSuchElement)
}

func TestDequeContainsAndRemoveOccurrence(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	for _, v := range []int{5, 3, 5, 1, 5} {
		chk.NoError(d.AddLast(v))
	}
	found, err := d.Contains(5)
	chk.NoError(err)
	chk.True(found)
	ok, err := d.RemoveFirstOccurrence(5)
	chk.NoError(err)
	chk.True(ok)

	var got []int
	d.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	chk.Equal([]int{3, 5, 1, 5}, got)

	ok, err = d.RemoveLastOccurrence(5)
	chk.NoError(err)
	chk.True(ok)
	got = nil
	d.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	chk.Equal([]int{3, 5, 1}, got)

	ok, err = d.RemoveFirstOccurrence(999)
	chk.NoError(err)
	chk.False(ok)
}

func TestDequeClear(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	for i := 0; i < 10; i++ {
		chk.NoError(d.AddLast(i))
	}
	d.Clear()
	chk.True(d.IsEmpty())
	chk.Equal(0, d.Size())
}

func TestDequeToArray(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	for _, v := range []int{1, 2, 3} {
		chk.NoError(d.AddLast(v))
	}
	var out []int
	chk.NoError(d.ToArray(&out))
	chk.Equal([]int{1, 2, 3}, out)
	chk.ErrorIs(d.ToArray(nil), condeque.ErrNilTarget)
}

func TestDequeAddAll(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[int]()
	chk.NoError(d.AddLast(1))

	added, err := d.AddAll(condeque.Elements([]int{2, 3, 4}))
	chk.NoError(err)
	chk.True(added)

	var out []int
	chk.NoError(d.ToArray(&out))
	chk.Equal([]int{1, 2, 3, 4}, out)

	added, err = d.AddAll(condeque.Elements[int](nil))
	chk.NoError(err)
	chk.False(added)

	_, err = d.AddAll(d)
	chk.ErrorIs(err, condeque.ErrSelfInsert)
}

func TestDequeAddAllFromAnotherDeque(t *testing.T) {
	chk := require.New(t)
	src := condeque.New[int]()
	chk.NoError(src.AddLast(1))
	chk.NoError(src.AddLast(2))

	dst := condeque.New[int]()
	chk.NoError(dst.AddLast(0))
	added, err := dst.AddAll(src)
	chk.NoError(err)
	chk.True(added)

	var out []int
	chk.NoError(dst.ToArray(&out))
	chk.Equal([]int{0, 1, 2}, out)
}

func TestDequeNodeHandleAddAndUnlink(t *testing.T) {
	chk := require.New(t)
	d := condeque.New[string]()
	chk.NoError(d.AddLast("a"))

	h, err := condeque.NewNodeHandle("b")
	chk.NoError(err)
	chk.NoError(d.AddLastNode(h))
	chk.NoError(d.AddLast("c"))

	var out []string
	chk.NoError(d.ToArray(&out))
	chk.Equal([]string{"a", "b", "c"}, out)

	chk.NoError(d.Unlink(h))
	out = nil
	chk.NoError(d.ToArray(&out))
	chk.Equal([]string{"a", "c"}, out)

	// Unlink is idempotent.
	chk.NoError(d.Unlink(h))

	other := condeque.New[string]()
	h2, err := condeque.NewNodeHandle("z")
	chk.NoError(err)
	chk.ErrorIs(other.Unlink(h2), condeque.ErrUnlinkNotSupported)
}
