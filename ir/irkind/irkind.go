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

// Package irkind defines the type codes of the tensor intermediate representation (IR).
package irkind

import "github.com/gx-org/backend/dtype"

// Code of a type.
type Code uint8

// Codes of the types supported by the IR.
// The values match the codes of the ABI type descriptor.
const (
	Int Code = iota
	UInt
	Float
	// Handle is an opaque pointer.
	Handle

	// Max value for a Code constant.
	Max
)

// Valid returns true if the code is one of the codes defined above.
func (c Code) Valid() bool {
	return c < Max
}

// String returns a string representation of a code.
func (c Code) String() string {
	switch c {
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	case Handle:
		return "handle"
	}
	return "invalid"
}

// DType converts a scalar code and number of bits into an array data type.
// Returns dtype.Invalid if no array data type matches.
func DType(c Code, bits int) dtype.DataType {
	switch {
	case c == UInt && bits == 1:
		return dtype.Bool
	case c == Int && bits == 32:
		return dtype.Int32
	case c == Int && bits == 64:
		return dtype.Int64
	case c == UInt && bits == 32:
		return dtype.Uint32
	case c == UInt && bits == 64:
		return dtype.Uint64
	case c == Float && bits == 32:
		return dtype.Float32
	case c == Float && bits == 64:
		return dtype.Float64
	}
	return dtype.Invalid
}

// FromDType returns the code and number of bits matching an array data type.
// The last returned value is false if the data type has no counterpart.
func FromDType(dt dtype.DataType) (Code, int, bool) {
	switch dt {
	case dtype.Bool:
		return UInt, 1, true
	case dtype.Int32:
		return Int, 32, true
	case dtype.Int64:
		return Int, 64, true
	case dtype.Uint32:
		return UInt, 32, true
	case dtype.Uint64:
		return UInt, 64, true
	case dtype.Float32:
		return Float, 32, true
	case dtype.Float64:
		return Float, 64, true
	}
	return Max, 0, false
}

// IsInteger returns true if the code is a signed or unsigned integer.
func IsInteger(c Code) bool {
	return c == Int || c == UInt
}

// WrapInt wraps a signed integer to a given number of bits,
// sign-extending the result.
func WrapInt(v int64, bits int) int64 {
	if bits <= 0 || bits >= 64 {
		return v
	}
	shift := 64 - uint(bits)
	return (v << shift) >> shift
}

// WrapUint wraps an unsigned integer to a given number of bits.
func WrapUint(v uint64, bits int) uint64 {
	if bits <= 0 || bits >= 64 {
		return v
	}
	return v & (uint64(1)<<uint(bits) - 1)
}
