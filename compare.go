// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty

import "golang.org/x/exp/constraints"

// PartialCompareFunc lexicographically compares the elements of the two
// iterators with a partial comparison function: f returns the usual
// tri-state ordering plus true, or false when its arguments are
// incomparable.
//
// Both iterators advance in lockstep until a differing pair decides the
// result or either side exhausts; the side that exhausts first is less, and
// simultaneous exhaustion means equal. The first incomparable pair makes
// the whole comparison incomparable, reported as (0, false).
func PartialCompareFunc[V any](it1, it2 Iterator[V], f func(a, b V) (int, bool)) (int, bool) {
	for {
		v1, ok1 := it1.Next()
		v2, ok2 := it2.Next()

		if !ok1 {
			if ok2 {
				return -1, true
			}
			return 0, true
		}
		if !ok2 {
			return 1, true
		}

		c, ok := f(v1, v2)
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
}

// PartialCompare is PartialCompareFunc under the operator-derived partial
// ordering. For floats, any pair involving NaN is incomparable, including
// NaN compared with itself.
func PartialCompare[V constraints.Ordered](it1, it2 Iterator[V]) (int, bool) {
	return PartialCompareFunc(it1, it2, partialCompare[V])
}

// CompareFunc lexicographically compares the elements of the two iterators
// with a total tri-state comparison function, returning -1, 0, or 1.
func CompareFunc[V any](it1, it2 Iterator[V], f func(a, b V) int) int {
	// a total comparer never reports incomparable, so the result is always present
	c, _ := PartialCompareFunc(it1, it2, func(a, b V) (int, bool) {
		return f(a, b), true
	})
	return c
}

// Compare lexicographically compares the elements of the two iterators
// under natural ordering, returning -1, 0, or 1.
func Compare[V constraints.Ordered](it1, it2 Iterator[V]) int {
	return CompareFunc(it1, it2, compare[V])
}

// EqualFunc reports whether the two iterators yield pairwise equal elements
// under f and exhaust simultaneously.
func EqualFunc[V1, V2 any](it1 Iterator[V1], it2 Iterator[V2], f func(V1, V2) bool) bool {
	for {
		v1, ok1 := it1.Next()
		v2, ok2 := it2.Next()

		if !ok1 {
			return !ok2
		}
		if !ok2 {
			return false
		}
		if !f(v1, v2) {
			return false
		}
	}
}

// Equal reports whether the two iterators have the same length and equal
// elements at every position.
func Equal[V comparable](it1, it2 Iterator[V]) bool {
	return EqualFunc(it1, it2, func(a, b V) bool { return a == b })
}

// NotEqual is the negation of Equal.
func NotEqual[V comparable](it1, it2 Iterator[V]) bool {
	return !Equal(it1, it2)
}

// Less reports whether it1 is lexicographically less than it2. False if the
// deciding pair is incomparable.
func Less[V constraints.Ordered](it1, it2 Iterator[V]) bool {
	c, ok := PartialCompare(it1, it2)
	return ok && c < 0
}

// LessOrEqual reports whether it1 is lexicographically less than or equal
// to it2. False if the deciding pair is incomparable, so it is not the
// negation of Greater.
func LessOrEqual[V constraints.Ordered](it1, it2 Iterator[V]) bool {
	c, ok := PartialCompare(it1, it2)
	return ok && c <= 0
}

// Greater reports whether it1 is lexicographically greater than it2. False
// if the deciding pair is incomparable.
func Greater[V constraints.Ordered](it1, it2 Iterator[V]) bool {
	c, ok := PartialCompare(it1, it2)
	return ok && c > 0
}

// GreaterOrEqual reports whether it1 is lexicographically greater than or
// equal to it2. False if the deciding pair is incomparable, so it is not
// the negation of Less.
func GreaterOrEqual[V constraints.Ordered](it1, it2 Iterator[V]) bool {
	c, ok := PartialCompare(it1, it2)
	return ok && c >= 0
}
