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

package vm

import (
	"fmt"

	"github.com/halcyonchain/halcyon/pkg/errors"
)

// HaltReason classifies why a step cannot proceed. It is a closed set;
// HaltNone means the step may continue. Faults are values, not panics: the
// dispatch loop turns them into frame outcomes.
type HaltReason uint8

const (
	HaltNone HaltReason = iota
	HaltInvalidInstruction
	HaltUndefinedInstruction
	HaltStackUnderflow
	HaltStackOverflow
	HaltInvalidJumpDest
	HaltWriteProtection
	HaltReturnDataOutOfBounds
	HaltOutOfGas
)

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "none"
	case HaltInvalidInstruction:
		return "invalid instruction"
	case HaltUndefinedInstruction:
		return "undefined instruction"
	case HaltStackUnderflow:
		return "stack underflow"
	case HaltStackOverflow:
		return "stack overflow"
	case HaltInvalidJumpDest:
		return "invalid jump destination"
	case HaltWriteProtection:
		return "write protection"
	case HaltReturnDataOutOfBounds:
		return "return data out of bounds"
	case HaltOutOfGas:
		return "out of gas"
	default:
		return fmt.Sprintf("halt reason %d", uint8(r))
	}
}

// ToError maps the reason onto the shared sentinel catalog, for callers that
// propagate frame outcomes as errors. HaltNone maps to nil.
func (r HaltReason) ToError() error {
	switch r {
	case HaltNone:
		return nil
	case HaltInvalidInstruction:
		return errors.ErrInvalidInstruction
	case HaltUndefinedInstruction:
		return errors.ErrUndefinedInstruction
	case HaltStackUnderflow:
		return errors.ErrStackUnderflow
	case HaltStackOverflow:
		return errors.ErrStackOverflow
	case HaltInvalidJumpDest:
		return errors.ErrInvalidJumpDest
	case HaltWriteProtection:
		return errors.ErrWriteProtection
	case HaltReturnDataOutOfBounds:
		return errors.ErrReturnDataOutOfBounds
	case HaltOutOfGas:
		return errors.ErrOutOfGas
	default:
		return errors.Errorf("unknown halt reason %d", uint8(r))
	}
}

// CostReport is the gas gate's verdict for one step: the total cost to
// charge, and whether a dynamic component changed it from the schedule's
// constant.
type CostReport struct {
	Cost    uint64
	Changed bool
	Detail  string
}

// Original reports a cost straight from the constant schedule.
func Original(cost uint64) CostReport {
	return CostReport{Cost: cost}
}

// ChangedCost reports a cost with a dynamic component, with detail naming it.
func ChangedCost(cost uint64, detail string) CostReport {
	return CostReport{Cost: cost, Changed: true, Detail: detail}
}
