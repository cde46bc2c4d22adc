// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

// Package rusty provides lazily evaluated, composable pull iterators in the
// style of Rust's std::iter.
//
// An iterator is built from a source constructor (Of, Range, Repeat, ...),
// transformed through any number of adapters (Filter, Map, Take, ...), and
// finally drained by a terminal operation (ToSlice, Fold, Count, ...) or by
// ranging over Values(it). No intermediate collections are materialized;
// each adapter pulls one element at a time from its upstream.
//
//	evenSquares := rusty.ToSlice(
//		rusty.Map(func(v int) int { return v * v },
//			rusty.Filter(func(v int) bool { return v%2 == 0 },
//				rusty.Range(0, 10))))
//
// Iterators are stateful and single-use: once Next has reported exhaustion,
// every later call reports exhaustion too (Cycle restarts an internal
// snapshot, never the upstream itself). Iterators are not safe for
// concurrent use.
package rusty

import "golang.org/x/exp/constraints"

// Iterator is the pull protocol every sequence in this package satisfies.
// Next returns the next element and true, or the zero value and false once
// the iterator is exhausted.
type Iterator[V any] interface {
	Next() (V, bool)
}

// DoubleEnded is an Iterator that can also be drained from the back.
// Front and back draining consume from the same pool of remaining elements:
// interleaving Next and NextBack never yields an element twice, and both
// ends report exhaustion once they meet.
//
// Only some iterator kinds support back draining: slices (Of, OfSlice),
// bounded ranges, Empty, OfNextBack, and Reverse. Everything else is
// forward-only, which the compiler enforces.
type DoubleEnded[V any] interface {
	Iterator[V]
	NextBack() (V, bool)
}

// Pair holds two values of possibly different types. It is the element type
// produced by Zip and Enumerate.
type Pair[V1, V2 any] struct {
	V1 V1
	V2 V2
}

// Real is the constraint for arithmetic range element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Number is the constraint for Sum and Product element types.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// compare is the natural tri-state ordering: <0, 0, or >0.
func compare[V constraints.Ordered](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func reverseCompare[V constraints.Ordered](a, b V) int {
	return compare(b, a)
}

// partialCompare is the operator-derived partial ordering: the second result
// is false when the values are incomparable (e.g. a float NaN, which is
// neither less than, greater than, nor equal to anything, itself included).
func partialCompare[V constraints.Ordered](a, b V) (int, bool) {
	switch {
	case a == b:
		return 0, true
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, false
	}
}
