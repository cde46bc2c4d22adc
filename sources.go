// SPDX-FileCopyrightText: 2025 the rusty-iter contributors
// SPDX-License-Identifier: MIT

package rusty

//
// Slice sources
//

type sliceIterator[S ~[]V, V any] struct {
	s     S
	front int
	back  int
}

func (it *sliceIterator[S, V]) Next() (V, bool) {
	if it.front >= it.back {
		var zero V
		return zero, false
	}
	v := it.s[it.front]
	it.front++
	return v, true
}

func (it *sliceIterator[S, V]) NextBack() (V, bool) {
	if it.front >= it.back {
		var zero V
		return zero, false
	}
	it.back--
	return it.s[it.back], true
}

// Of returns a double-ended iterator over the given values.
func Of[V any](vs ...V) DoubleEnded[V] {
	return OfSlice(vs)
}

// OfSlice returns a double-ended iterator over the elements of s.
// The slice is borrowed, not copied: it must stay alive (and unmodified, if
// deterministic output matters) for as long as the iterator is in use.
func OfSlice[S ~[]V, V any](s S) DoubleEnded[V] {
	return &sliceIterator[S, V]{s: s, back: len(s)}
}

// OfChan returns an iterator that receives from c until it is closed.
func OfChan[C interface{ ~<-chan V | ~chan V }, V any](c C) Iterator[V] {
	ch := (<-chan V)(c)
	return OfNext(func() (V, bool) {
		v, ok := <-ch
		return v, ok
	})
}

//
// Generator sources
//

type funcIterator[V any] struct {
	f    func() (V, bool)
	done bool
}

func (it *funcIterator[V]) Next() (V, bool) {
	if it.done {
		var zero V
		return zero, false
	}
	v, ok := it.f()
	if !ok {
		it.done = true
		var zero V
		return zero, false
	}
	return v, true
}

// OfNext returns a finite generator iterator: f is called once per element
// and the iterator exhausts permanently the first time f reports false.
func OfNext[V any](f func() (V, bool)) Iterator[V] {
	return &funcIterator[V]{f: f}
}

type funcDoubleEnded[V any] struct {
	next     func() (V, bool)
	nextBack func() (V, bool)
	done     bool
}

func (it *funcDoubleEnded[V]) Next() (V, bool) {
	if it.done {
		var zero V
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		var zero V
		return zero, false
	}
	return v, true
}

func (it *funcDoubleEnded[V]) NextBack() (V, bool) {
	if it.done {
		var zero V
		return zero, false
	}
	v, ok := it.nextBack()
	if !ok {
		it.done = true
		var zero V
		return zero, false
	}
	return v, true
}

// OfNextBack returns a double-ended generator iterator. The two callbacks
// must draw from shared state so that the ends meet; once either reports
// false the iterator is exhausted in both directions.
func OfNextBack[V any](next, nextBack func() (V, bool)) DoubleEnded[V] {
	return &funcDoubleEnded[V]{next: next, nextBack: nextBack}
}

type generatorIterator[V any] struct {
	f func() V
}

func (it *generatorIterator[V]) Next() (V, bool) {
	return it.f(), true
}

// RepeatWith returns an infinite generator iterator that yields f() forever.
func RepeatWith[V any](f func() V) Iterator[V] {
	return &generatorIterator[V]{f: f}
}

// Repeat returns an infinite iterator that yields v forever.
func Repeat[V any](v V) Iterator[V] {
	return RepeatWith(func() V { return v })
}

// Once returns an iterator that yields v exactly once.
func Once[V any](v V) Iterator[V] {
	return OnceWith(func() V { return v })
}

// OnceWith returns an iterator that yields f() exactly once. f is not called
// until the element is pulled.
func OnceWith[V any](f func() V) Iterator[V] {
	done := false
	return OfNext(func() (V, bool) {
		if done {
			var zero V
			return zero, false
		}
		done = true
		return f(), true
	})
}

// Successors returns an iterator that starts with first and computes each
// following element from the previous one, stopping when f reports that no
// successor exists. An iterator with no elements at all is Empty.
func Successors[V any](first V, f func(V) (V, bool)) Iterator[V] {
	value, ok := first, true
	return OfNext(func() (V, bool) {
		if !ok {
			var zero V
			return zero, false
		}
		prev := value
		value, ok = f(prev)
		return prev, true
	})
}

type emptyIterator[V any] struct{}

func (emptyIterator[V]) Next() (V, bool) {
	var zero V
	return zero, false
}

func (emptyIterator[V]) NextBack() (V, bool) {
	var zero V
	return zero, false
}

// Empty returns an iterator that yields no values.
func Empty[V any]() DoubleEnded[V] {
	return emptyIterator[V]{}
}

//
// Ranges
//

type rangeIterator[V Real] struct {
	front V
	back  V
	step  V
	n     int
}

func (it *rangeIterator[V]) Next() (V, bool) {
	if it.n <= 0 {
		var zero V
		return zero, false
	}
	v := it.front
	it.front += it.step
	it.n--
	return v, true
}

func (it *rangeIterator[V]) NextBack() (V, bool) {
	if it.n <= 0 {
		var zero V
		return zero, false
	}
	v := it.back
	it.back -= it.step
	it.n--
	return v, true
}

func newRange[V Real](start, end, step V, inclusive bool) *rangeIterator[V] {
	if step <= 0 {
		// invalid step, produce an already exhausted iterator
		return &rangeIterator[V]{}
	}

	var n int
	if inclusive {
		if end < start {
			return &rangeIterator[V]{}
		}
		n = int((end-start)/step) + 1
	} else {
		if end <= start {
			return &rangeIterator[V]{}
		}
		n = int((end - start) / step)
		if start+V(n)*step < end {
			n++
		}
	}

	return &rangeIterator[V]{
		front: start,
		back:  start + V(n-1)*step,
		step:  step,
		n:     n,
	}
}

// Range returns a double-ended iterator yielding start, start+1, ... up to
// but not including end.
func Range[V Real](start, end V) DoubleEnded[V] {
	return newRange(start, end, 1, false)
}

// RangeStep is Range with a custom increment. A step of zero or less yields
// an empty iterator.
func RangeStep[V Real](start, end, step V) DoubleEnded[V] {
	return newRange(start, end, step, false)
}

// RangeInclusive returns a double-ended iterator yielding start, start+1,
// ... up to and including end.
func RangeInclusive[V Real](start, end V) DoubleEnded[V] {
	return newRange(start, end, 1, true)
}

// RangeInclusiveStep is RangeInclusive with a custom increment. A step of
// zero or less yields an empty iterator.
func RangeInclusiveStep[V Real](start, end, step V) DoubleEnded[V] {
	return newRange(start, end, step, true)
}

// InfiniteRange returns an unbounded iterator yielding start, start+1, ...
// and never exhausting.
func InfiniteRange[V Real](start V) Iterator[V] {
	return InfiniteRangeStep(start, 1)
}

// InfiniteRangeStep is InfiniteRange with a custom increment. Any step is
// accepted; a negative one counts downward forever, though InfiniteRange
// with a positive step is the intended use.
func InfiniteRangeStep[V Real](start, step V) Iterator[V] {
	value := start
	return RepeatWith(func() V {
		v := value
		value += step
		return v
	})
}
