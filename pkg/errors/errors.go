// Copyright 2022-2026 The Halcyon Authors
// This file is part of the Halcyon library.
//
// The Halcyon library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Halcyon library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Halcyon library. If not, see <http://www.gnu.org/licenses/>.

// Package errors defines common error types used throughout the Halcyon
// codebase. This package provides a centralized location for error definitions
// to ensure consistency and avoid duplication across modules.
package errors

import (
	"errors"
	"fmt"
)

// =====================
// Machine Fault Errors
// =====================

// Faults detected by the step classifier. Inside the virtual machine these are
// carried as plain values; the sentinels below exist so that callers at the
// interpreter boundary can propagate and match them with errors.Is.
var (
	// ErrInvalidInstruction is returned when execution reaches the
	// designated invalid instruction (0xFE).
	ErrInvalidInstruction = errors.New("invalid instruction")

	// ErrUndefinedInstruction is returned when execution reaches a byte with
	// no assigned instruction, or one disabled by the active fork.
	ErrUndefinedInstruction = errors.New("undefined instruction")

	// ErrStackUnderflow is returned when an instruction needs more operands
	// than the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrStackOverflow is returned when an instruction would grow the stack
	// past its depth limit.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrInvalidJumpDest is returned when a jump targets a position that is
	// not a reachable JUMPDEST marker.
	ErrInvalidJumpDest = errors.New("invalid jump destination")

	// ErrWriteProtection is returned when a state-mutating instruction runs
	// inside a static call frame.
	ErrWriteProtection = errors.New("write protection")

	// ErrReturnDataOutOfBounds is returned when a return-data copy reads past
	// the end of the last call's return buffer.
	ErrReturnDataOutOfBounds = errors.New("return data out of bounds")

	// ErrOutOfGas is returned when the remaining gas cannot cover the next
	// instruction's cost.
	ErrOutOfGas = errors.New("out of gas")
)

// =====================
// Frame Outcome Errors
// =====================

var (
	// ErrExecutionReverted is returned when a frame halts via REVERT. The
	// revert payload travels alongside this error, never inside it.
	ErrExecutionReverted = errors.New("execution reverted")

	// ErrDepthLimit is returned when a sub-call would exceed the maximum
	// call depth.
	ErrDepthLimit = errors.New("max call depth exceeded")

	// ErrGasUintOverflow is returned when a gas computation overflows uint64.
	ErrGasUintOverflow = errors.New("gas uint64 overflow")
)

// =====================
// Helper Functions
// =====================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}
