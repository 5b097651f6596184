// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package counter_test

import (
	"math"
	"testing"

	"github.com/gothreads/condeque/internal/counter"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	chk := require.New(t)
	var c counter.Counter
	chk.EqualValues(0, c.Load())
	chk.EqualValues(1, c.Increment())
	chk.EqualValues(2, c.Increment())
	chk.EqualValues(1, c.Decrement())
	chk.True(c.CompareAndSwap(1, 10))
	chk.False(c.CompareAndSwap(1, 20))
	chk.EqualValues(10, c.Load())
}

func TestInt32Saturated(t *testing.T) {
	chk := require.New(t)
	chk.Equal(0, counter.Int32Saturated(0))
	chk.Equal(5, counter.Int32Saturated(5))
	chk.Equal(0, counter.Int32Saturated(-5))
	chk.Equal(int(math.MaxInt32), counter.Int32Saturated(int64(math.MaxInt32)+100))
}
