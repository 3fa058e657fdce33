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

// Package abi defines the type descriptor exchanged with compiled code
// and runtimes.
//
// The layout of TypeDesc is a binary contract: one byte for the type
// code, one byte for the number of bits, two bytes for the number of
// lanes, in that order.
package abi

import "fmt"

// TypeCode is the code of a type in a descriptor.
type TypeCode = uint8

// Type codes recognized by the IR.
const (
	Int    TypeCode = 0
	UInt   TypeCode = 1
	Float  TypeCode = 2
	Handle TypeCode = 3
)

// TypeDesc describes the element type of a scalar or of a fixed-width vector.
type TypeDesc struct {
	Code  TypeCode
	Bits  uint8
	Lanes uint16
}

// Known returns true if the code of the descriptor is recognized.
func (d TypeDesc) Known() bool {
	return d.Code <= Handle
}

// String returns a debug representation of the descriptor.
func (d TypeDesc) String() string {
	return fmt.Sprintf("TypeDesc{code:%d bits:%d lanes:%d}", d.Code, d.Bits, d.Lanes)
}
