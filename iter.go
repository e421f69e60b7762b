// Copyright 2026 The Arenalist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arenalist

// All calls yield sequentially for each element of the list, from first to
// last, passing its index and value. If yield returns false, iteration
// stops. The signature allows ranging over the list directly:
//
//	for i, v := range l.All {
//	  fmt.Printf("%d: %v\n", i, v)
//	}
//
// The list must not be mutated during iteration. Doing so, including from
// within yield, has undefined results.
func (l *List[T]) All(yield func(index int, value T) bool) {
	for i := l.first; i != None; {
		s := &l.slots[i]
		next := s.after
		if !yield(i, s.value) {
			return
		}
		i = next
	}
}

// Values is like All but only passes the value of each element.
func (l *List[T]) Values(yield func(value T) bool) {
	for i := l.first; i != None; {
		s := &l.slots[i]
		next := s.after
		if !yield(s.value) {
			return
		}
		i = next
	}
}

// Backward is like All but walks from last to first.
func (l *List[T]) Backward(yield func(index int, value T) bool) {
	for i := l.last; i != None; {
		s := &l.slots[i]
		prev := s.before
		if !yield(i, s.value) {
			return
		}
		i = prev
	}
}

// Iterator is a forward-only cursor over a List. It is single use: once Next
// has returned false it stays exhausted, and a new traversal needs a new
// Iterator from List.Iter. As with All, the list must not be mutated while an
// Iterator is in use.
type Iterator[T any] struct {
	l *List[T]
	// Index of the current element, None before the first call to Next and
	// after exhaustion.
	cur  int
	next int
}

// Iter returns an Iterator positioned before the first element.
func (l *List[T]) Iter() Iterator[T] {
	return Iterator[T]{
		l:    l,
		cur:  None,
		next: l.first,
	}
}

// Next advances to the next element and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.next == None {
		it.cur = None
		return false
	}
	it.cur = it.next
	it.next = it.l.slots[it.cur].after
	return true
}

// Index returns the index of the current element.
func (it *Iterator[T]) Index() int {
	return it.cur
}

// Value returns the current element. It must only be called after Next
// returned true.
func (it *Iterator[T]) Value() T {
	return it.l.slots[it.cur].value
}
