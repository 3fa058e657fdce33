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

package ir

import "github.com/pkg/errors"

var (
	// ErrInvalidType is returned when a type descriptor has an unknown code
	// or when a type does not support an operation.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidAxisRole is returned when an iteration variable with
	// the wrong role is used as a reduction axis.
	ErrInvalidAxisRole = errors.New("invalid axis role")

	// ErrUnboundDomain is returned when an iteration variable requires a domain but has none.
	ErrUnboundDomain = errors.New("unbound domain")

	// ErrDuplicateAxis is returned when the same axis is reduced more than once.
	ErrDuplicateAxis = errors.New("duplicate axis")

	// ErrNilNode is returned when a node is required but nil has been given.
	ErrNilNode = errors.New("nil node")

	// ErrNotConstant is returned when an expression needs to be a literal constant.
	ErrNotConstant = errors.New("not a constant")

	// ErrNegativeExtent is returned when a domain has a negative extent.
	ErrNegativeExtent = errors.New("negative extent")
)
