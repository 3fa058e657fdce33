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

import (
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Range is the half-open interval [min, min+extent).
//
// The extent is not required to be positive when the range is built.
// Users of a range as an iteration domain need to check it.
type Range struct {
	nodeID
	min, extent Expr
}

// NewRange returns the range [begin, end).
// The extent is end-begin, folded when begin and end are integer literals.
func NewRange(begin, end Expr) *Range {
	return RangeFromMinExtent(begin, rangeExtent(begin, end))
}

func rangeExtent(begin, end Expr) Expr {
	if bv, ok := AsConstInt(begin); ok {
		if bv == 0 {
			return end
		}
		if ev, ok := AsConstInt(end); ok {
			typ := widerType(begin.Type(), end.Type())
			return NewIntImm(typ, ev-bv)
		}
	}
	return Sub(end, begin)
}

// RangeFromMinExtent returns the range [min, min+extent).
func RangeFromMinExtent(min, extent Expr) *Range {
	return &Range{nodeID: newNodeID(), min: min, extent: extent}
}

// Min returns the first value of the range.
func (r *Range) Min() Expr { return r.min }

// Extent returns the number of values in the range.
func (r *Range) Extent() Expr { return r.extent }

// Domain is the list of ranges of a multi-dimensional iteration.
type Domain []*Range

// Shape returns the shape of an array indexed by the domain.
// All the extents need to be non-negative integer literals.
func (d Domain) Shape(dt dtype.DataType) (*shape.Shape, error) {
	axes := make([]int, len(d))
	var errs error
	for i, r := range d {
		if r == nil {
			errs = multierr.Append(errs, errors.Wrapf(ErrNilNode, "axis %d has no range", i))
			continue
		}
		ext, ok := AsConstInt(r.extent)
		if !ok {
			errs = multierr.Append(errs, errors.Wrapf(ErrNotConstant, "axis %d: extent %s", i, r.extent))
			continue
		}
		if ext < 0 {
			errs = multierr.Append(errs, errors.Wrapf(ErrNegativeExtent, "axis %d: extent %d", i, ext))
			continue
		}
		axes[i] = int(ext)
	}
	if errs != nil {
		return nil, errs
	}
	return &shape.Shape{DType: dt, AxisLengths: axes}, nil
}
