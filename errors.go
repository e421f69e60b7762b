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

import "github.com/cockroachdb/errors"

// ErrInvalidHandle is returned when an index that must refer to an occupied
// slot does not. It signals a caller bug: the handle was never valid, or it
// was removed. Test for it with errors.Is.
var ErrInvalidHandle = errors.New("index does not refer to a valid entry")

func invalidHandle(index int) error {
	return errors.Wrapf(ErrInvalidHandle, "index %d", index)
}
