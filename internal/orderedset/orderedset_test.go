// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package orderedset_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/gothreads/condeque/internal/orderedset"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSetBasicFunctionality(t *testing.T) {
	chk := require.New(t)
	s := orderedset.New[int]()

	chk.True(s.Add(5))
	chk.True(s.Add(1))
	chk.True(s.Add(3))
	chk.False(s.Add(3))

	chk.Equal(3, s.Len())
	chk.True(s.Contains(1))
	chk.False(s.Contains(2))

	first, ok := s.First()
	chk.True(ok)
	chk.Equal(1, first)

	v, ok := s.RemoveFirst()
	chk.True(ok)
	chk.Equal(1, v)
	chk.Equal(2, s.Len())

	chk.True(s.Remove(5))
	chk.False(s.Remove(5))

	var got []int
	for k := range s.All() {
		got = append(got, k)
	}
	chk.Equal([]int{3}, got)
}

func TestSetEmptyFirstAndRemoveFirst(t *testing.T) {
	chk := require.New(t)
	s := orderedset.New[int]()
	_, ok := s.First()
	chk.False(ok)
	_, ok = s.RemoveFirst()
	chk.False(ok)
}

func TestSetWithRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := orderedset.New[int]()
		model := map[int]bool{}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				v := rapid.IntRange(0, 200).Draw(t, "value")
				wantAdded := !model[v]
				gotAdded := s.Add(v)
				require.Equal(t, wantAdded, gotAdded)
				model[v] = true
			},
			"removeFirst": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("model is empty")
				}
				min := minKey(model)
				v, ok := s.RemoveFirst()
				require.True(t, ok)
				require.Equal(t, min, v)
				delete(model, min)
			},
			"": func(t *rapid.T) {
				require.Equal(t, len(model), s.Len())
			},
		})
	})
}

func minKey(m map[int]bool) int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys[0]
}

func TestSetConcurrentAdd(t *testing.T) {
	chk := require.New(t)
	s := orderedset.New[int]()
	const perGoroutine = 2_000
	const goroutines = 8

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		g := g
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Add(g*perGoroutine + i)
			}
		}()
	}
	wg.Wait()

	chk.Equal(goroutines*perGoroutine, s.Len())
}
