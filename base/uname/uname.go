// Copyright 2025 Google LLC
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

// Package uname provides unique names.
package uname

import "fmt"

// Unique returns names that have not been returned or registered before.
type Unique struct {
	taken map[string]bool
	next  map[string]int
}

// New returns a new set of unique names.
func New() *Unique {
	return &Unique{
		taken: make(map[string]bool),
		next:  make(map[string]int),
	}
}

// Register marks a name as taken without returning it.
func (n *Unique) Register(name string) {
	n.taken[name] = true
}

// Name returns root if it is not taken yet.
// Otherwise, returns root suffixed with _1, _2, ... skipping any name already taken.
func (n *Unique) Name(root string) string {
	if !n.taken[root] {
		n.taken[root] = true
		return root
	}
	for {
		n.next[root]++
		name := fmt.Sprintf("%s_%d", root, n.next[root])
		if n.taken[name] {
			continue
		}
		n.taken[name] = true
		return name
	}
}
