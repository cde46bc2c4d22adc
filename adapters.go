// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty

type stepByIterator[V any] struct {
	it    Iterator[V]
	step  int
	first bool
}

func (it *stepByIterator[V]) Next() (V, bool) {
	if it.step < 1 {
		var zero V
		return zero, false
	}
	if it.first {
		it.first = false
		return it.it.Next()
	}
	var (
		v  V
		ok bool
	)
	for i := 0; i < it.step; i++ {
		v, ok = it.it.Next()
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v, ok
}

// StepBy returns an iterator yielding the first element and every n-th
// element after it. n less than 1 yields an empty iterator.
func StepBy[V any](n int, it Iterator[V]) Iterator[V] {
	return &stepByIterator[V]{it: it, step: n, first: true}
}

type chainIterator[V any] struct {
	its []Iterator[V]
}

func (it *chainIterator[V]) Next() (V, bool) {
	for len(it.its) > 0 {
		if v, ok := it.its[0].Next(); ok {
			return v, true
		}
		it.its = it.its[1:]
	}
	var zero V
	return zero, false
}

// Chain concatenates the given iterators: each one is drained to exhaustion
// before the next is pulled.
func Chain[V any](its ...Iterator[V]) Iterator[V] {
	return &chainIterator[V]{its: its}
}

type zipIterator[V1, V2 any] struct {
	it1  Iterator[V1]
	it2  Iterator[V2]
	done bool
}

func (it *zipIterator[V1, V2]) Next() (Pair[V1, V2], bool) {
	if it.done {
		return Pair[V1, V2]{}, false
	}
	v1, ok := it.it1.Next()
	if !ok {
		it.done = true
		return Pair[V1, V2]{}, false
	}
	v2, ok := it.it2.Next()
	if !ok {
		it.done = true
		return Pair[V1, V2]{}, false
	}
	return Pair[V1, V2]{v1, v2}, true
}

// Zip pairs elements of the two iterators positionally, exhausting as soon
// as either side exhausts. When the first side exhausts, the second side is
// not pulled any further.
func Zip[V1, V2 any](it1 Iterator[V1], it2 Iterator[V2]) Iterator[Pair[V1, V2]] {
	return &zipIterator[V1, V2]{it1: it1, it2: it2}
}

// Enumerate pairs each element with its zero-based position, by zipping
// against an unbounded counting iterator.
func Enumerate[V any](it Iterator[V]) Iterator[Pair[int, V]] {
	return Zip(InfiniteRange(0), it)
}

type intersperseIterator[V any] struct {
	it          Iterator[V]
	sep         func() V
	pending     V
	havePending bool
	sepNext     bool
	primed      bool
}

func (it *intersperseIterator[V]) Next() (V, bool) {
	if it.sepNext {
		it.sepNext = false
		return it.sep(), true
	}
	if !it.primed {
		it.primed = true
		if v, ok := it.it.Next(); ok {
			it.pending, it.havePending = v, true
		}
	}
	if !it.havePending {
		var zero V
		return zero, false
	}
	out := it.pending
	if v, ok := it.it.Next(); ok {
		it.pending = v
		it.sepNext = true
	} else {
		it.havePending = false
	}
	return out, true
}

// Intersperse inserts sep between consecutive elements. No separator is
// emitted before the first element or after the last one, so empty and
// single-element iterators are yielded unchanged.
func Intersperse[V any](sep V, it Iterator[V]) Iterator[V] {
	return IntersperseWith(func() V { return sep }, it)
}

// IntersperseWith is Intersperse with the separator recomputed by f each
// time one is emitted.
func IntersperseWith[V any](f func() V, it Iterator[V]) Iterator[V] {
	return &intersperseIterator[V]{it: it, sep: f}
}

type mapIterator[In, Out any] struct {
	it Iterator[In]
	f  func(In) Out
}

func (it *mapIterator[In, Out]) Next() (Out, bool) {
	v, ok := it.it.Next()
	if !ok {
		var zero Out
		return zero, false
	}
	return it.f(v), true
}

// Map transforms each element with f. The output type may differ from the
// input type.
func Map[In, Out any](f func(In) Out, it Iterator[In]) Iterator[Out] {
	return &mapIterator[In, Out]{it: it, f: f}
}

type filterIterator[V any] struct {
	it Iterator[V]
	f  func(V) bool
}

func (it *filterIterator[V]) Next() (V, bool) {
	for {
		v, ok := it.it.Next()
		if !ok {
			var zero V
			return zero, false
		}
		if it.f(v) {
			return v, true
		}
	}
}

// Filter keeps only the elements f returns true for, preserving their
// relative order.
func Filter[V any](f func(V) bool, it Iterator[V]) Iterator[V] {
	return &filterIterator[V]{it: it, f: f}
}

type filterMapIterator[In, Out any] struct {
	it Iterator[In]
	f  func(In) (Out, bool)
}

func (it *filterMapIterator[In, Out]) Next() (Out, bool) {
	for {
		v, ok := it.it.Next()
		if !ok {
			var zero Out
			return zero, false
		}
		if out, keep := it.f(v); keep {
			return out, true
		}
	}
}

// FilterMap filters and maps in one pass: elements for which f reports false
// are skipped, the rest are replaced by f's first result.
func FilterMap[In, Out any](f func(In) (Out, bool), it Iterator[In]) Iterator[Out] {
	return &filterMapIterator[In, Out]{it: it, f: f}
}

// PeekableIterator wraps an iterator with a one-element lookahead.
type PeekableIterator[V any] struct {
	it       Iterator[V]
	peeked   V
	havePeek bool
	done     bool
}

// Peek returns the next element without consuming it. Repeated calls return
// the same element until Next is called.
func (it *PeekableIterator[V]) Peek() (V, bool) {
	if it.havePeek {
		return it.peeked, true
	}
	if it.done {
		var zero V
		return zero, false
	}
	v, ok := it.it.Next()
	if !ok {
		it.done = true
		var zero V
		return zero, false
	}
	it.peeked, it.havePeek = v, true
	return v, true
}

func (it *PeekableIterator[V]) Next() (V, bool) {
	if it.havePeek {
		it.havePeek = false
		return it.peeked, true
	}
	if it.done {
		var zero V
		return zero, false
	}
	return it.it.Next()
}

// Peekable wraps it so that the next element can be inspected without being
// consumed.
func Peekable[V any](it Iterator[V]) *PeekableIterator[V] {
	return &PeekableIterator[V]{it: it}
}

type skipWhileIterator[V any] struct {
	it       Iterator[V]
	f        func(V) bool
	skipping bool
}

func (it *skipWhileIterator[V]) Next() (V, bool) {
	if it.skipping {
		it.skipping = false
		for {
			v, ok := it.it.Next()
			if !ok {
				var zero V
				return zero, false
			}
			if !it.f(v) {
				return v, true
			}
		}
	}
	return it.it.Next()
}

// SkipWhile skips the leading elements f returns true for. The first element
// f rejects, and everything after it, is yielded unfiltered, even elements
// f would accept again.
func SkipWhile[V any](f func(V) bool, it Iterator[V]) Iterator[V] {
	return &skipWhileIterator[V]{it: it, f: f, skipping: true}
}

type takeWhileIterator[V any] struct {
	it   Iterator[V]
	f    func(V) bool
	done bool
}

func (it *takeWhileIterator[V]) Next() (V, bool) {
	if it.done {
		var zero V
		return zero, false
	}
	v, ok := it.it.Next()
	if ok && it.f(v) {
		return v, true
	}
	it.done = true
	var zero V
	return zero, false
}

// TakeWhile yields elements while f returns true. The first rejected element
// ends the iterator permanently; f is not consulted again.
func TakeWhile[V any](f func(V) bool, it Iterator[V]) Iterator[V] {
	return &takeWhileIterator[V]{it: it, f: f}
}

// counter returns a predicate that is true for the first n invocations.
func counter[V any](n int) func(V) bool {
	i := 0
	return func(V) bool {
		i++
		return i <= n
	}
}

// Skip discards the first n elements. If the upstream is shorter than n the
// result is empty.
func Skip[V any](n int, it Iterator[V]) Iterator[V] {
	return SkipWhile(counter[V](n), it)
}

// Take yields at most the first n elements.
func Take[V any](n int, it Iterator[V]) Iterator[V] {
	return TakeWhile(counter[V](n), it)
}

type flattenIterator[V any] struct {
	outer Iterator[Iterator[V]]
	inner Iterator[V]
	done  bool
}

func (it *flattenIterator[V]) Next() (V, bool) {
	if it.done {
		var zero V
		return zero, false
	}
	for {
		if it.inner == nil {
			inner, ok := it.outer.Next()
			if !ok {
				it.done = true
				var zero V
				return zero, false
			}
			it.inner = inner
		}
		if v, ok := it.inner.Next(); ok {
			return v, true
		}
		it.inner = nil
	}
}

// Flatten removes one level of nesting, yielding the concatenation of all
// inner iterators in order.
func Flatten[V any](it Iterator[Iterator[V]]) Iterator[V] {
	return &flattenIterator[V]{outer: it}
}

// FlatMap maps each element to an iterator and flattens the result.
func FlatMap[In, Out any](f func(In) Iterator[Out], it Iterator[In]) Iterator[Out] {
	return Flatten(Map(f, it))
}

type inspectIterator[V any] struct {
	it Iterator[V]
	f  func(V)
}

func (it *inspectIterator[V]) Next() (V, bool) {
	v, ok := it.it.Next()
	if ok {
		it.f(v)
	}
	return v, ok
}

// Inspect calls f on each element as it passes through, without altering
// value or order. Useful for debugging pipelines.
func Inspect[V any](f func(V), it Iterator[V]) Iterator[V] {
	return &inspectIterator[V]{it: it, f: f}
}

type cycleIterator[V any] struct {
	src     Iterator[V]
	cache   []V
	idx     int
	caching bool
}

func (it *cycleIterator[V]) Next() (V, bool) {
	if it.caching {
		if v, ok := it.src.Next(); ok {
			it.cache = append(it.cache, v)
			return v, true
		}
		it.caching = false
	}
	if len(it.cache) == 0 {
		var zero V
		return zero, false
	}
	if it.idx >= len(it.cache) {
		it.idx = 0
	}
	v := it.cache[it.idx]
	it.idx++
	return v, true
}

// Cycle repeats the upstream endlessly: elements are recorded during the
// first pass and replayed from the start each time the end is reached. An
// upstream that is empty on the first pass makes the cycle permanently
// empty.
func Cycle[V any](it Iterator[V]) Iterator[V] {
	return &cycleIterator[V]{src: it, caching: true}
}
