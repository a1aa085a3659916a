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
	"github.com/halcyonchain/halcyon/pkg/errors"
)

// CostOracle prices the instruction the machine is about to execute. The
// classifier consults it last, after every structural check has passed, so
// oracles may assume well-formed inputs: the opcode is defined on this fork
// and the stack holds its operands. An oracle may record environment-level
// bookkeeping (the call gas temp) on env; it must not touch the machine
// state.
type CostOracle interface {
	CostOf(m *MachineState, env *Env) (CostReport, error)
}

// scheduleOracle is the built-in oracle: the instruction table's constant
// cost, plus the dynamic component (memory expansion, copy fees, call
// forwarding) where the instruction has one.
type scheduleOracle struct{}

var defaultOracle CostOracle = scheduleOracle{}

// DefaultCostOracle returns the built-in schedule oracle.
func DefaultCostOracle() CostOracle {
	return defaultOracle
}

func (scheduleOracle) CostOf(m *MachineState, env *Env) (CostReport, error) {
	op := env.GetOp(m.PC)
	oper := env.Table()[op]

	cost := oper.constantGas
	if oper.dynamicGas == nil {
		return Original(cost), nil
	}

	var memorySize uint64
	if oper.memorySize != nil {
		size, overflow := oper.memorySize(m.Stack)
		if overflow || size > 0x1FFFFFFFE0 {
			return CostReport{}, errors.ErrGasUintOverflow
		}
		// Round up to the next word boundary; memory grows in words.
		memorySize = toWordSize(size) * 32
	}

	dyn, err := oper.dynamicGas(m, env, memorySize)
	if err != nil {
		return CostReport{}, err
	}
	if dyn == 0 {
		return Original(cost), nil
	}

	total, overflow := safeAdd(cost, dyn)
	if overflow {
		return CostReport{}, errors.ErrGasUintOverflow
	}
	return ChangedCost(total, "dynamic gas"), nil
}
