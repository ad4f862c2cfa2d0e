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

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // Lines present unchanged in both documents
	Insert           // Lines or words only present in the new document
	Delete           // Lines only present in the old document
	Change           // Lines replaced one by one, with word level spans
)

// MarshalText encodes op by its name, e.g. for JSON output.
func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}
