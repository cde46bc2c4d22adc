// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty

type reverseIterator[V any] struct {
	it DoubleEnded[V]
}

func (it *reverseIterator[V]) Next() (V, bool) {
	return it.it.NextBack()
}

func (it *reverseIterator[V]) NextBack() (V, bool) {
	return it.it.Next()
}

// Reverse swaps the draining direction of a double-ended iterator: Next
// yields from the back and NextBack from the front, so reversing twice
// restores the original order.
func Reverse[V any](it DoubleEnded[V]) DoubleEnded[V] {
	return &reverseIterator[V]{it: it}
}

// RFold is Fold draining from the back.
func RFold[Sum, V any](sum Sum, f func(Sum, V) Sum, it DoubleEnded[V]) Sum {
	for {
		v, ok := it.NextBack()
		if !ok {
			return sum
		}
		sum = f(sum, v)
	}
}

// NthBack returns the element at zero-based offset n from the back,
// consuming n+1 elements from the back end. Reports false if fewer than n+1
// elements remain.
func NthBack[V any](n int, it DoubleEnded[V]) (V, bool) {
	if n < 0 {
		var zero V
		return zero, false
	}
	for i := 0; ; i++ {
		v, ok := it.NextBack()
		if !ok {
			var zero V
			return zero, false
		}
		if i == n {
			return v, true
		}
	}
}

// RFind returns the first element from the back that f is true for,
// stopping there. Reports false if the iterator exhausts without a match.
func RFind[V any](f func(V) bool, it DoubleEnded[V]) (V, bool) {
	for {
		v, ok := it.NextBack()
		if !ok {
			var zero V
			return zero, false
		}
		if f(v) {
			return v, true
		}
	}
}

// RPosition returns the zero-based offset, counted from the back, of the
// first element from the back that f is true for. Reports false if the
// iterator exhausts without a match.
func RPosition[V any](f func(V) bool, it DoubleEnded[V]) (int, bool) {
	for pos := 0; ; pos++ {
		v, ok := it.NextBack()
		if !ok {
			return 0, false
		}
		if f(v) {
			return pos, true
		}
	}
}
