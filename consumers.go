// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty

import "golang.org/x/exp/constraints"

// ForEach calls f on every remaining element.
func ForEach[V any](f func(V), it Iterator[V]) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		f(v)
	}
}

// AppendSlice drains it into s and returns the extended slice.
func AppendSlice[S ~[]V, V any](s S, it Iterator[V]) S {
	for {
		v, ok := it.Next()
		if !ok {
			return s
		}
		s = append(s, v)
	}
}

// ToSlice drains it into a new slice. An empty iterator yields a nil slice.
func ToSlice[V any](it Iterator[V]) []V {
	var res []V
	return AppendSlice(res, it)
}

// ToSliceWithCap is ToSlice with the result's capacity preallocated.
func ToSliceWithCap[V any](it Iterator[V], cap int) []V {
	res := make([]V, 0, cap)
	return AppendSlice(res, it)
}

// Partition splits the elements into two slices: first the ones f rejects,
// then the ones f keeps, each preserving the original relative order.
func Partition[V any](f func(V) bool, it Iterator[V]) (falses, trues []V) {
	ForEach(func(v V) {
		if f(v) {
			trues = append(trues, v)
		} else {
			falses = append(falses, v)
		}
	}, it)
	return falses, trues
}

// Reduce folds the elements into a single value using f, seeding the
// accumulator with the first element. Reports false for an empty iterator.
func Reduce[V any](f func(acc, v V) V, it Iterator[V]) (V, bool) {
	acc, ok := it.Next()
	if !ok {
		var zero V
		return zero, false
	}
	for {
		v, ok := it.Next()
		if !ok {
			return acc, true
		}
		acc = f(acc, v)
	}
}

// Fold folds the elements into a single value using f, starting from sum.
// Unlike Reduce it always returns a value: for an empty iterator, sum
// unchanged.
func Fold[Sum, V any](sum Sum, f func(Sum, V) Sum, it Iterator[V]) Sum {
	for {
		v, ok := it.Next()
		if !ok {
			return sum
		}
		sum = f(sum, v)
	}
}

// Count drains it and returns the number of elements.
func Count[V any](it Iterator[V]) int {
	var n int
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// Last drains it and returns its final element, reporting false if there
// was none.
func Last[V any](it Iterator[V]) (V, bool) {
	last, ok := it.Next()
	if !ok {
		var zero V
		return zero, false
	}
	for {
		v, ok := it.Next()
		if !ok {
			return last, true
		}
		last = v
	}
}

// Nth returns the element at zero-based offset n from the current position,
// consuming n+1 elements. Reports false if fewer than n+1 elements remain.
func Nth[V any](n int, it Iterator[V]) (V, bool) {
	if n < 0 {
		var zero V
		return zero, false
	}
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			var zero V
			return zero, false
		}
		if i == n {
			return v, true
		}
	}
}

// All reports whether f is true for every element, stopping at the first
// false. True for empty iterators.
func All[V any](f func(V) bool, it Iterator[V]) bool {
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if !f(v) {
			return false
		}
	}
}

// Any reports whether f is true for some element, stopping at the first
// true. False for empty iterators.
func Any[V any](f func(V) bool, it Iterator[V]) bool {
	for {
		v, ok := it.Next()
		if !ok {
			return false
		}
		if f(v) {
			return true
		}
	}
}

// Find returns the first element f is true for, stopping there. Reports
// false if the iterator exhausts without a match.
func Find[V any](f func(V) bool, it Iterator[V]) (V, bool) {
	for {
		v, ok := it.Next()
		if !ok {
			var zero V
			return zero, false
		}
		if f(v) {
			return v, true
		}
	}
}

// Position returns the zero-based offset of the first element f is true
// for, stopping there. Reports false if the iterator exhausts without a
// match.
func Position[V any](f func(V) bool, it Iterator[V]) (int, bool) {
	for pos := 0; ; pos++ {
		v, ok := it.Next()
		if !ok {
			return 0, false
		}
		if f(v) {
			return pos, true
		}
	}
}

// Min returns the smallest element under natural ordering. The first of
// several equal minima wins. Reports false for an empty iterator.
func Min[V constraints.Ordered](it Iterator[V]) (V, bool) {
	return MinFunc(it, compare[V])
}

// MinFunc is Min under the given tri-state comparison function.
func MinFunc[V any](it Iterator[V], compare func(a, b V) int) (V, bool) {
	min, ok := it.Next()
	if !ok {
		var zero V
		return zero, false
	}
	for {
		v, ok := it.Next()
		if !ok {
			return min, true
		}
		if compare(v, min) < 0 {
			min = v
		}
	}
}

// Max returns the largest element under natural ordering. The first of
// several equal maxima wins. Reports false for an empty iterator.
func Max[V constraints.Ordered](it Iterator[V]) (V, bool) {
	return MaxFunc(it, compare[V])
}

// MaxFunc is Max under the given tri-state comparison function.
func MaxFunc[V any](it Iterator[V], compare func(a, b V) int) (V, bool) {
	max, ok := it.Next()
	if !ok {
		var zero V
		return zero, false
	}
	for {
		v, ok := it.Next()
		if !ok {
			return max, true
		}
		if compare(v, max) > 0 {
			max = v
		}
	}
}

// Sum adds all elements together, returning 0 for an empty iterator.
func Sum[V Number](it Iterator[V]) V {
	var sum V
	return Fold(sum, func(sum, v V) V { return sum + v }, it)
}

// Product multiplies all elements together, returning 1 for an empty
// iterator.
func Product[V Number](it Iterator[V]) V {
	return Fold(V(1), func(product, v V) V { return product * v }, it)
}

// IsSorted reports whether no element is less than the one before it,
// stopping at the first out-of-order pair. Iterators with fewer than two
// elements are trivially sorted.
func IsSorted[V constraints.Ordered](it Iterator[V]) bool {
	return IsSortedFunc(it, compare[V])
}

// IsSortedDescending reports whether no element is greater than the one
// before it.
func IsSortedDescending[V constraints.Ordered](it Iterator[V]) bool {
	return IsSortedFunc(it, reverseCompare[V])
}

// IsSortedFunc is IsSorted under the given tri-state comparison function.
func IsSortedFunc[V any](it Iterator[V], compare func(a, b V) int) bool {
	prev, ok := it.Next()
	if !ok {
		return true
	}
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if compare(prev, v) > 0 {
			return false
		}
		prev = v
	}
}
