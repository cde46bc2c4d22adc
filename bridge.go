// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty

import "iter"

// Values exposes a pull iterator through Go's native range-over-func
// syntax:
//
//	for v := range rusty.Values(it) { ... }
//
// Breaking out of the loop simply stops pulling; the iterator keeps any
// elements not yet consumed and can be drained further afterwards.
func Values[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed exposes a pull iterator as an index/value sequence, mirroring
// slices.All:
//
//	for i, v := range rusty.Indexed(it) { ... }
func Indexed[V any](it Iterator[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// OfSeq wraps a push sequence into the pull protocol via iter.Pull. The
// returned stop function releases the underlying coroutine and must be
// called once the iterator is no longer needed, unless it has been drained
// to exhaustion.
func OfSeq[V any](seq iter.Seq[V]) (Iterator[V], func()) {
	next, stop := iter.Pull(seq)
	return OfNext(next), stop
}
