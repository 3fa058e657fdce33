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

// Package fmterr provides helpers to attach IR nodes to errors
// and to format errors with their stack traces.
package fmterr

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
)

type (
	// ErrorWithSource is an error attached to the node that caused it.
	ErrorWithSource interface {
		error
		Src() fmt.Stringer
		Err() error
	}

	errorWithSource struct {
		src fmt.Stringer
		err error
	}
)

// In attaches a node to an error.
// Returns nil if err is nil.
func In(src fmt.Stringer, err error) error {
	if err == nil {
		return nil
	}
	return errorWithSource{src: src, err: err}
}

// Errorf returns a formatted error attached to a node.
func Errorf(src fmt.Stringer, format string, a ...any) error {
	return In(src, errors.Errorf(format, a...))
}

// Wrapf wraps a sentinel error with a formatted message and attaches a node to it.
// errors.Is(err, sentinel) holds for the returned error.
func Wrapf(src fmt.Stringer, sentinel error, format string, a ...any) error {
	return In(src, errors.Wrapf(sentinel, format, a...))
}

// Internal marks an error as internal.
func Internal(err error) error {
	return fmt.Errorf("tir internal error. This is a bug. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error.
func Internalf(format string, a ...any) error {
	return Internal(errors.Errorf(format, a...))
}

// Error returns a string description of the error.
func (err errorWithSource) Error() (s string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s = fmt.Sprintf("recovered from panic when building error message: %T:\n%v", err.err, string(debug.Stack()))
	}()
	if err.src == nil {
		return err.err.Error()
	}
	return err.src.String() + ": " + err.err.Error()
}

// Unwrap the error.
func (err errorWithSource) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err errorWithSource) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

func (err errorWithSource) Src() fmt.Stringer {
	return err.src
}

func (err errorWithSource) Err() error {
	return err.err
}
