// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package respdiff

import (
	"errors"
	"fmt"
)

// ErrTooLarge is matched by the error returned for documents exceeding the size ceiling.
var ErrTooLarge = errors.New("document too large to diff")

// OversizedError is returned for documents exceeding the size ceiling set by [MaxBytes].
type OversizedError struct {
	Size  int // Size of the rejected document in bytes.
	Limit int // The ceiling in effect.
}

func (e *OversizedError) Error() string {
	return fmt.Sprintf("%v: %d bytes exceed the limit of %d bytes", ErrTooLarge, e.Size, e.Limit)
}

func (e *OversizedError) Is(target error) bool { return target == ErrTooLarge }

func checkSize(text string, limit int) error {
	if limit > 0 && len(text) > limit {
		return &OversizedError{Size: len(text), Limit: limit}
	}
	return nil
}
