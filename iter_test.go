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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterate(t *testing.T) {
	l := New[int](DefaultCapacity)
	for i := 0; i < 100; i++ {
		l.AddLast(i)
	}

	j := 0
	for i, v := range l.All {
		require.EqualValues(t, j, v)
		require.EqualValues(t, j, i)
		j++
	}
	require.EqualValues(t, 100, j)

	j = 99
	for i, v := range l.Backward {
		require.EqualValues(t, j, v)
		require.EqualValues(t, j, i)
		j--
	}
	require.EqualValues(t, -1, j)
}

func TestIterateStop(t *testing.T) {
	l := New[string](DefaultCapacity)
	l.AddLast("a")
	l.AddLast("b")
	l.AddLast("c")

	var seen []string
	for v := range l.Values {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, seen)

	seen = nil
	l.Backward(func(_ int, v string) bool {
		seen = append(seen, v)
		return false
	})
	require.Equal(t, []string{"c"}, seen)
}

func TestIterateEmpty(t *testing.T) {
	l := New[int](0)
	for range l.All {
		require.Fail(t, "should not iterate")
	}
	for range l.Backward {
		require.Fail(t, "should not iterate")
	}
	it := l.Iter()
	require.False(t, it.Next())
	require.EqualValues(t, None, it.Index())
}

func TestIterator(t *testing.T) {
	l := New[string](DefaultCapacity)
	b := l.AddLast("b")
	a := l.AddFirst("a")
	c := l.AddLast("c")

	it := l.Iter()
	require.EqualValues(t, None, it.Index())

	var indexes []int
	var values []string
	for it.Next() {
		indexes = append(indexes, it.Index())
		values = append(values, it.Value())
	}
	require.Equal(t, []int{a, b, c}, indexes)
	require.Equal(t, []string{"a", "b", "c"}, values)

	// Exhausted iterators stay exhausted.
	require.False(t, it.Next())
	require.EqualValues(t, None, it.Index())

	// A fresh iterator reflects the current state.
	require.True(t, l.Remove(b))
	values = nil
	for it := l.Iter(); it.Next(); {
		values = append(values, it.Value())
	}
	require.Equal(t, []string{"a", "c"}, values)
}
