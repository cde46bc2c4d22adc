// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Kimbatt/rusty-iter"
)

func TestRange(t *testing.T) {
	testCases := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"0 to 10", 0, 10, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"10 to 20", 10, 20, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}},
		{"single element", 0, 1, []int{0}},
		{"empty", 0, 0, nil},
		{"end before start", 0, -1, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToSlice(Range(tc.start, tc.end)))
		})
	}
}

func TestRangeStep(t *testing.T) {
	testCases := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"step 2", 0, 10, 2, []int{0, 2, 4, 6, 8}},
		{"step 3", 0, 10, 3, []int{0, 3, 6, 9}},
		{"step larger than range", 0, 10, 100, []int{0}},
		{"step 0", 0, 10, 0, nil},
		{"negative step", 0, 10, -1, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToSlice(RangeStep(tc.start, tc.end, tc.step)))
		})
	}
}

func TestRangeInclusive(t *testing.T) {
	testCases := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"0 to 10", 0, 10, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"single element", 0, 0, []int{0}},
		{"end before start", 0, -1, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToSlice(RangeInclusive(tc.start, tc.end)))
		})
	}
}

func TestRangeInclusiveStep(t *testing.T) {
	assert.Equal(t, []int{0, 3, 6, 9}, ToSlice(RangeInclusiveStep(0, 10, 3)))
	assert.Equal(t, []int{0, 5, 10}, ToSlice(RangeInclusiveStep(0, 10, 5)))
	assert.Nil(t, ToSlice(RangeInclusiveStep(0, 10, 0)))
	assert.Nil(t, ToSlice(RangeInclusiveStep(0, 10, -3)))
}

func TestRangeFloat(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, ToSlice(RangeStep(0.0, 1.0, 0.25)))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, ToSlice(RangeInclusiveStep(0.0, 1.0, 0.25)))
}

func TestRangeExhaustionIsSticky(t *testing.T) {
	it := Range(0, 1)
	_, ok := it.Next()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		assert.False(t, ok)
	}
}

func TestInfiniteRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ToSlice(Take(10, InfiniteRange(0))))
	assert.Equal(t, []int{10, 12, 14, 16, 18}, ToSlice(Take(5, InfiniteRangeStep(10, 2))))
	// negative steps keep counting downward instead of exhausting
	assert.Equal(t, []int{0, -1, -2}, ToSlice(Take(3, InfiniteRangeStep(0, -1))))
	assert.Equal(t, []int{0, 0, 0}, ToSlice(Take(3, InfiniteRangeStep(0, 0))))
}

func TestOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ToSlice(Of("a", "b", "c")))
	assert.Nil(t, ToSlice(Of[int]()))
}

func TestOfSlice(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5}
	assert.Equal(t, numbers, ToSlice(OfSlice(numbers)))

	it := OfSlice(numbers)
	for range numbers {
		_, ok := it.Next()
		require.True(t, ok)
	}
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestOfChan(t *testing.T) {
	c := make(chan int, 3)
	c <- 1
	c <- 2
	c <- 3
	close(c)
	assert.Equal(t, []int{1, 2, 3}, ToSlice(OfChan(c)))
}

func TestOfNext(t *testing.T) {
	i := 0
	it := OfNext(func() (int, bool) {
		i++
		return i, i <= 3
	})
	assert.Equal(t, []int{1, 2, 3}, ToSlice(it))

	// the iterator must stay exhausted even if the callback would yield again
	revived := false
	it = OfNext(func() (int, bool) {
		if revived {
			return 7, true
		}
		revived = true
		return 0, false
	})
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestOfNextBack(t *testing.T) {
	// shared-state counting generator over [0, 10)
	lo, hi := 0, 10
	it := OfNextBack(
		func() (int, bool) {
			if lo >= hi {
				return 0, false
			}
			v := lo
			lo++
			return v, true
		},
		func() (int, bool) {
			if lo >= hi {
				return 0, false
			}
			hi--
			return hi, true
		},
	)

	front := func() int { v, ok := it.Next(); require.True(t, ok); return v }
	back := func() int { v, ok := it.NextBack(); require.True(t, ok); return v }

	assert.Equal(t, 0, front())
	assert.Equal(t, 1, front())
	assert.Equal(t, 2, front())
	assert.Equal(t, 9, back())
	assert.Equal(t, 8, back())
	assert.Equal(t, 7, back())
	assert.Equal(t, 3, front())
	assert.Equal(t, 4, front())
	assert.Equal(t, 6, back())
	assert.Equal(t, 5, back())

	_, ok := it.NextBack()
	assert.False(t, ok)
	_, ok = it.NextBack()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x", "x"}, ToSlice(Take(4, Repeat("x"))))
}

func TestRepeatWith(t *testing.T) {
	i := 0
	it := RepeatWith(func() int {
		i++
		return i * i
	})
	assert.Equal(t, []int{1, 4, 9, 16, 25}, ToSlice(Take(5, it)))
}

func TestEmpty(t *testing.T) {
	it := Empty[int]()
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.NextBack()
	assert.False(t, ok)
	assert.Nil(t, ToSlice(Reverse(Empty[int]())))
}

func TestOnce(t *testing.T) {
	assert.Equal(t, []int{42}, ToSlice(Once(42)))

	it := Once("hello")
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestOnceWith(t *testing.T) {
	calls := 0
	it := OnceWith(func() int {
		calls++
		return 7
	})
	assert.Equal(t, 0, calls, "the callback must not run before the element is pulled")

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)

	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestSuccessors(t *testing.T) {
	powers := Successors(1, func(prev int) (int, bool) {
		next := prev * 2
		return next, next <= 64
	})
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64}, ToSlice(powers))

	single := Successors(5, func(int) (int, bool) { return 0, false })
	assert.Equal(t, []int{5}, ToSlice(single))
}
