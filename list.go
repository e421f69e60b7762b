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

// package arenalist is a doubly-linked list whose nodes live in a single
// contiguous slot array rather than in individually heap allocated elements.
//
// # Slots
//
// Every element of the backing array is a Slot. A slot is either occupied,
// in which case it holds a value and the indexes of its neighbours in the
// list (before and after), or free. Free slots are threaded together into a
// singly linked free chain that reuses the after field as the "next free"
// pointer:
//
//	index:   0     1     2     3     4     5     6     7
//	        +-----+-----+-----+-----+-----+-----+-----+-----+
//	        | "a" |free | "c" | "b" |free |free |free |free |
//	        +-----+-----+-----+-----+-----+-----+-----+-----+
//	live:   first=0 -> 3 -> 2=last
//	free:   freeHead=1 -> 4 -> 5 -> 6 -> 7 -> None
//
// Allocating a slot pops the head of the free chain and releasing one pushes
// it back on, so neither touches the Go allocator. When the free chain is
// empty the array doubles and the new upper half becomes the free chain.
// The array never shrinks; Clear keeps the current capacity.
//
// # Handles
//
// Elements are identified by their plain int index into the slot array. An
// index is valid until the element is removed. After that the slot may be
// reused by a later insert, at which point the stale index silently refers
// to the new element. Callers that need protection against stale handles
// must track that themselves.
//
// Operations that read through a handle (Get) or insert relative to one
// (InsertAfter, InsertBefore, MoveToFirst, MoveToLast) return an error
// wrapping ErrInvalidHandle when the index is not occupied. Remove and
// Contains instead report absence with false, which makes removal
// idempotent.
//
// A List is NOT goroutine-safe.
package arenalist

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

const (
	// None is the index used for "no slot": the missing neighbour of the
	// first and last elements, the First and Last of an empty list and the
	// end of the free chain.
	None = -1

	// DefaultCapacity is the conventional initial capacity for New.
	DefaultCapacity = 4
)

// Slot holds a value and its links. A Slot obtained from Get is a copy and
// does not track later changes to the list.
type Slot[T any] struct {
	// true if the slot holds a live value, false if it is on the free chain.
	used bool
	// For a free slot, before is None and after is the next free slot.
	before int
	after  int
	value  T
}

// Value returns the stored value.
func (s Slot[T]) Value() T {
	return s.value
}

// Before returns the index of the preceding element, or None if the slot is
// the first element.
func (s Slot[T]) Before() int {
	return s.before
}

// After returns the index of the following element, or None if the slot is
// the last element.
func (s Slot[T]) After() int {
	return s.after
}

// List is an ordered sequence of values with constant time insertion and
// removal at any position identified by an index handle.
type List[T any] struct {
	// The allocator to use for the slots slice.
	allocator Allocator[T]
	// Optional logger for growth and lifecycle events.
	logger *slog.Logger
	slots  []Slot[T]
	// The number of occupied slots.
	count int
	// Ends of the live chain, None when empty.
	first int
	last  int
	// Head of the free chain, None when every slot is occupied.
	freeHead int
}

// New constructs a new List with the specified initial capacity. A capacity
// below 1 is raised to 1.
func New[T any](capacity int, options ...option[T]) *List[T] {
	l := &List[T]{}
	l.Init(capacity, options...)
	return l
}

// Init initializes a List with the specified initial capacity, releasing any
// slots it previously held back to its allocator. A capacity below 1 is
// raised to 1. Init can be used to reuse a List value without allocating a
// new one.
func (l *List[T]) Init(capacity int, options ...option[T]) {
	if l.allocator != nil && l.slots != nil {
		l.allocator.FreeSlots(l.slots)
	}
	if capacity < 1 {
		capacity = 1
	}

	*l = List[T]{
		allocator: defaultAllocator[T]{},
	}
	for _, op := range options {
		op.apply(l)
	}

	l.slots = l.allocator.AllocSlots(capacity)
	l.reset()
	l.checkInvariants()
}

// Close releases the slot array back to the configured allocator. It is
// unnecessary to close a list using the default allocator. It is invalid to
// use a List after it has been closed, though Close itself is idempotent.
func (l *List[T]) Close() {
	if l.slots != nil {
		l.log("close", slog.Int("capacity", len(l.slots)), slog.Int("count", l.count))
		l.allocator.FreeSlots(l.slots)
	}
	l.slots = nil
	l.count = 0
	l.first = None
	l.last = None
	l.freeHead = None
	l.allocator = nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.count
}

// Capacity returns the length of the slot array.
func (l *List[T]) Capacity() int {
	return len(l.slots)
}

// First returns the index of the first element, or None if the list is
// empty.
func (l *List[T]) First() int {
	return l.first
}

// Last returns the index of the last element, or None if the list is empty.
func (l *List[T]) Last() int {
	return l.last
}

// Contains returns true if index refers to an occupied slot.
func (l *List[T]) Contains(index int) bool {
	return index >= 0 && index < len(l.slots) && l.slots[index].used
}

// Get returns a copy of the slot at index. An error wrapping
// ErrInvalidHandle is returned if the index is out of range or free.
func (l *List[T]) Get(index int) (Slot[T], error) {
	if !l.Contains(index) {
		return Slot[T]{}, invalidHandle(index)
	}
	return l.slots[index], nil
}

// AddFirst inserts value at the front of the list and returns its index.
func (l *List[T]) AddFirst(value T) int {
	index := l.insertBefore(value, l.first)
	l.checkInvariants()
	return index
}

// AddLast inserts value at the back of the list and returns its index.
func (l *List[T]) AddLast(value T) int {
	index := l.insertAfter(value, l.last)
	l.checkInvariants()
	return index
}

// InsertAfter inserts value immediately after the element at anchor and
// returns the index of the new element. If the list is empty the anchor is
// ignored and the value becomes the sole element. Otherwise anchor must
// refer to an occupied slot; if it does not, the list is left untouched and
// an error wrapping ErrInvalidHandle is returned.
func (l *List[T]) InsertAfter(value T, anchor int) (int, error) {
	if l.count > 0 && !l.Contains(anchor) {
		return None, invalidHandle(anchor)
	}
	index := l.insertAfter(value, anchor)
	l.checkInvariants()
	return index, nil
}

// InsertBefore inserts value immediately before the element at anchor. It
// mirrors InsertAfter.
func (l *List[T]) InsertBefore(value T, anchor int) (int, error) {
	if l.count > 0 && !l.Contains(anchor) {
		return None, invalidHandle(anchor)
	}
	index := l.insertBefore(value, anchor)
	l.checkInvariants()
	return index, nil
}

// Remove removes the element at index. It returns false, without modifying
// the list, if index is out of range or already free. The stored value is
// zeroed so the list no longer references it.
func (l *List[T]) Remove(index int) bool {
	if !l.Contains(index) {
		return false
	}
	l.unlink(index)
	l.release(index)
	l.checkInvariants()
	return true
}

// MoveToFirst moves the element at index to the front of the list. The
// element is removed and re-inserted, so index is invalid afterwards and the
// returned index must be used instead (the two may happen to be equal).
func (l *List[T]) MoveToFirst(index int) (int, error) {
	if !l.Contains(index) {
		return None, invalidHandle(index)
	}
	value := l.slots[index].value
	l.unlink(index)
	l.release(index)
	index = l.insertBefore(value, l.first)
	l.checkInvariants()
	return index, nil
}

// MoveToLast moves the element at index to the back of the list. See
// MoveToFirst for the handle semantics.
func (l *List[T]) MoveToLast(index int) (int, error) {
	if !l.Contains(index) {
		return None, invalidHandle(index)
	}
	value := l.slots[index].value
	l.unlink(index)
	l.release(index)
	index = l.insertAfter(value, l.last)
	l.checkInvariants()
	return index, nil
}

// Clear removes every element. The capacity is retained and every slot is
// returned to a single contiguous free chain. All outstanding indexes become
// invalid.
func (l *List[T]) Clear() {
	l.log("clear", slog.Int("capacity", len(l.slots)), slog.Int("dropped", l.count))
	l.reset()
	l.checkInvariants()
}

// insertAfter links a new slot after anchor. The anchor is ignored when the
// list is empty and must otherwise be occupied.
func (l *List[T]) insertAfter(value T, anchor int) int {
	index := l.allocate(value)
	if l.count == 1 {
		l.first = index
		l.last = index
		return index
	}

	// NB: allocate may have grown the array, so slots is loaded after it.
	slots := l.slots
	s := &slots[index]
	a := &slots[anchor]
	s.before = anchor
	s.after = a.after
	if a.after != None {
		slots[a.after].before = index
	} else {
		l.last = index
	}
	a.after = index
	return index
}

// insertBefore is the mirror of insertAfter.
func (l *List[T]) insertBefore(value T, anchor int) int {
	index := l.allocate(value)
	if l.count == 1 {
		l.first = index
		l.last = index
		return index
	}

	slots := l.slots
	s := &slots[index]
	a := &slots[anchor]
	s.after = anchor
	s.before = a.before
	if a.before != None {
		slots[a.before].after = index
	} else {
		l.first = index
	}
	a.before = index
	return index
}

// unlink detaches the occupied slot at index from the live chain, leaving
// its own links untouched.
func (l *List[T]) unlink(index int) {
	slots := l.slots
	s := &slots[index]
	if s.before == None {
		l.first = s.after
	} else {
		slots[s.before].after = s.after
	}
	if s.after == None {
		l.last = s.before
	} else {
		slots[s.after].before = s.before
	}
}

// allocate pops the head of the free chain, growing the array first if the
// chain is empty, and stores value in it with no links.
func (l *List[T]) allocate(value T) int {
	if l.freeHead == None {
		l.grow()
	}
	index := l.freeHead
	s := &l.slots[index]
	l.freeHead = s.after
	s.used = true
	s.before = None
	s.after = None
	s.value = value
	l.count++
	return index
}

// release marks an unlinked slot free, zeroes its value and pushes it onto
// the head of the free chain.
func (l *List[T]) release(index int) {
	l.slots[index] = Slot[T]{
		before: None,
		after:  l.freeHead,
	}
	l.freeHead = index
	l.count--
}

// grow doubles the slot array. It is only called when the free chain is
// empty, so the new upper half becomes the entire free chain.
func (l *List[T]) grow() {
	oldSlots := l.slots
	oldCapacity := len(oldSlots)
	newCapacity := 2 * oldCapacity

	l.slots = l.allocator.AllocSlots(newCapacity)
	copy(l.slots, oldSlots)
	l.fillFree(oldCapacity, newCapacity)
	l.allocator.FreeSlots(oldSlots)

	l.log("grow",
		slog.Int("old-capacity", oldCapacity),
		slog.Int("new-capacity", newCapacity),
		slog.Int("count", l.count))
}

// reset empties the list and chains every slot onto the free list.
func (l *List[T]) reset() {
	l.fillFree(0, len(l.slots))
	l.count = 0
	l.first = None
	l.last = None
}

// fillFree marks the slots in [start,end) free and chains them in ascending
// order, making start the new free chain head. Any previous free chain is
// dropped.
func (l *List[T]) fillFree(start, end int) {
	slots := l.slots[start:end]
	for i := range slots {
		slots[i] = Slot[T]{
			before: None,
			after:  start + i + 1,
		}
	}
	slots[len(slots)-1].after = None
	l.freeHead = start
}

func (l *List[T]) log(msg string, attrs ...slog.Attr) {
	if l.logger == nil {
		return
	}
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

func (l *List[T]) checkInvariants() {
	if invariants {
		if err := l.validate(); err != nil {
			panic(errors.Wrapf(err, "invariant failed\n%s", l.debugString()))
		}
	}
}

// validate walks the live chain in both directions and the free chain,
// verifying that they partition the slot array and agree with the counters.
func (l *List[T]) validate() error {
	n := len(l.slots)
	if n < 1 {
		return errors.AssertionFailedf("capacity %d is below 1", n)
	}
	if l.count < 0 || l.count > n {
		return errors.AssertionFailedf("count %d outside [0,%d]", l.count, n)
	}
	if (l.count == 0) != (l.first == None) || (l.count == 0) != (l.last == None) {
		return errors.AssertionFailedf("count=%d but first=%d last=%d", l.count, l.first, l.last)
	}

	var used int
	for i := range l.slots {
		if l.slots[i].used {
			used++
		}
	}
	if used != l.count {
		return errors.AssertionFailedf("found %d used slots, but count is %d", used, l.count)
	}

	// Forward walk.
	prev, seen := None, 0
	for i := l.first; i != None; {
		if i < 0 || i >= n {
			return errors.AssertionFailedf("forward walk: index %d out of range", i)
		}
		s := &l.slots[i]
		if !s.used {
			return errors.AssertionFailedf("forward walk: slot %d is free", i)
		}
		if s.before != prev {
			return errors.AssertionFailedf("slot %d: before=%d, expected %d", i, s.before, prev)
		}
		if seen++; seen > l.count {
			return errors.AssertionFailedf("forward walk: more than %d elements", l.count)
		}
		prev, i = i, s.after
	}
	if prev != l.last {
		return errors.AssertionFailedf("forward walk ended at %d, but last is %d", prev, l.last)
	}
	if seen != l.count {
		return errors.AssertionFailedf("forward walk visited %d elements, but count is %d", seen, l.count)
	}

	// Backward walk.
	next, seen := None, 0
	for i := l.last; i != None; {
		if i < 0 || i >= n {
			return errors.AssertionFailedf("backward walk: index %d out of range", i)
		}
		s := &l.slots[i]
		if !s.used {
			return errors.AssertionFailedf("backward walk: slot %d is free", i)
		}
		if s.after != next {
			return errors.AssertionFailedf("slot %d: after=%d, expected %d", i, s.after, next)
		}
		if seen++; seen > l.count {
			return errors.AssertionFailedf("backward walk: more than %d elements", l.count)
		}
		next, i = i, s.before
	}
	if next != l.first {
		return errors.AssertionFailedf("backward walk ended at %d, but first is %d", next, l.first)
	}

	// Free chain.
	var free int
	for i := l.freeHead; i != None; {
		if i < 0 || i >= n {
			return errors.AssertionFailedf("free chain: index %d out of range", i)
		}
		s := &l.slots[i]
		if s.used {
			return errors.AssertionFailedf("free chain: slot %d is used", i)
		}
		if free++; free > n-l.count {
			return errors.AssertionFailedf("free chain: more than %d slots", n-l.count)
		}
		i = s.after
	}
	if free != n-l.count {
		return errors.AssertionFailedf("free chain has %d slots, expected %d", free, n-l.count)
	}
	return nil
}

func (l *List[T]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d  count=%d  first=%d  last=%d  free-head=%d\n",
		len(l.slots), l.count, l.first, l.last, l.freeHead)
	for i := range l.slots {
		s := &l.slots[i]
		if s.used {
			fmt.Fprintf(&buf, "  %4d: %v [before=%d after=%d]\n", i, s.value, s.before, s.after)
		} else {
			fmt.Fprintf(&buf, "  %4d: free [next=%d]\n", i, s.after)
		}
	}
	return buf.String()
}
