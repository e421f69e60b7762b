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

import "golang.org/x/exp/slog"

// option provide an interface to do work on List while it is being created.
type option[T any] interface {
	apply(l *List[T])
}

// Allocator specifies an interface for allocating and releasing the slot
// arrays used by a List. The default allocator utilizes Go's builtin make()
// and allows the GC to reclaim memory.
//
// If the allocator is manually managing memory and requires that slots be
// freed then List.Close must be called in order to ensure FreeSlots is
// called for the final array.
type Allocator[T any] interface {
	// AllocSlots should return a slice equivalent to make([]Slot[T], n).
	AllocSlots(n int) []Slot[T]

	// FreeSlots can optionally release the memory associated with the
	// supplied slice that is guaranteed to have been allocated by
	// AllocSlots. It is called after the live contents have been copied
	// into a larger array.
	FreeSlots(v []Slot[T])
}

type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) AllocSlots(n int) []Slot[T] {
	return make([]Slot[T], n)
}

func (defaultAllocator[T]) FreeSlots(v []Slot[T]) {
}

type allocatorOption[T any] struct {
	allocator Allocator[T]
}

func (op allocatorOption[T]) apply(l *List[T]) {
	l.allocator = op.allocator
}

// WithAllocator is an option for specifying the Allocator to use for a
// List[T].
func WithAllocator[T any](allocator Allocator[T]) option[T] {
	return allocatorOption[T]{allocator}
}

type loggerOption[T any] struct {
	logger *slog.Logger
}

func (op loggerOption[T]) apply(l *List[T]) {
	l.logger = op.logger
}

// WithLogger is an option to attach a logger to a List[T]. Growth, Clear and
// Close are reported at debug level. Inserts and removals that do not grow
// the list are never logged. A List without a logger stays silent.
func WithLogger[T any](logger *slog.Logger) option[T] {
	return loggerOption[T]{logger}
}
