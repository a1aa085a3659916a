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
	"github.com/halcyonchain/halcyon/internal/vm/stack"
	"github.com/halcyonchain/halcyon/pkg/errors"
)

// Memory size functions. Each returns the highest byte the instruction will
// touch, reading its operands in pop order off the stack, and reports uint64
// overflow instead of guessing.

func memoryKeccak256(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}

func memoryMload(st *stack.Stack) (uint64, bool) {
	return calcMemSize64WithUint(st.Back(0), 32)
}

func memoryMstore(st *stack.Stack) (uint64, bool) {
	return calcMemSize64WithUint(st.Back(0), 32)
}

func memoryMstore8(st *stack.Stack) (uint64, bool) {
	return calcMemSize64WithUint(st.Back(0), 1)
}

// memoryDataCopy serves CALLDATACOPY, CODECOPY and RETURNDATACOPY:
// (memory offset, source offset, length).
func memoryDataCopy(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(2))
}

// memoryExtCodeCopy: (address, memory offset, source offset, length).
func memoryExtCodeCopy(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(1), st.Back(3))
}

func memoryLog(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}

func memoryCreate(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(1), st.Back(2))
}

func memoryCreate2(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(1), st.Back(2))
}

// memoryCall: (gas, address, value, args offset, args length, ret offset,
// ret length).
func memoryCall(st *stack.Stack) (uint64, bool) {
	x, overflow := calcMemSize64(st.Back(5), st.Back(6))
	if overflow {
		return 0, true
	}
	y, overflow := calcMemSize64(st.Back(3), st.Back(4))
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

// memoryDelegateCall serves DELEGATECALL and STATICCALL: same layout as CALL
// without the value word.
func memoryDelegateCall(st *stack.Stack) (uint64, bool) {
	x, overflow := calcMemSize64(st.Back(4), st.Back(5))
	if overflow {
		return 0, true
	}
	y, overflow := calcMemSize64(st.Back(2), st.Back(3))
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

func memoryReturn(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}

// Dynamic gas functions.

// gasMemExpansion prices pure memory growth.
func gasMemExpansion(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	fee, overflow := memoryGasCost(m.Memory, memorySize)
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return fee, nil
}

// gasCopy prices memory growth plus the per-word copy fee for the *COPY
// instructions, whose length is the third operand.
func gasCopy(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}
	words, overflow := m.Stack.Back(2).Uint64WithOverflow()
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if words, overflow = safeMul(toWordSize(words), GasCopyWord); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if gas, overflow = safeAdd(gas, words); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasExtCodeCopy is gasCopy with the length one operand deeper.
func gasExtCodeCopy(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}
	words, overflow := m.Stack.Back(3).Uint64WithOverflow()
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if words, overflow = safeMul(toWordSize(words), GasCopyWord); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if gas, overflow = safeAdd(gas, words); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasKeccak256 prices memory growth plus the per-word hashing fee.
func gasKeccak256(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}
	wordGas, overflow := m.Stack.Back(1).Uint64WithOverflow()
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if wordGas, overflow = safeMul(toWordSize(wordGas), GasKeccak256Word); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if gas, overflow = safeAdd(gas, wordGas); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasLogData prices memory growth plus the per-byte payload fee.
func gasLogData(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}
	byteGas, overflow := m.Stack.Back(1).Uint64WithOverflow()
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if byteGas, overflow = safeMul(byteGas, GasLogByte); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if gas, overflow = safeAdd(gas, byteGas); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasExp prices EXP by the byte length of the exponent.
func gasExp(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	expByteLen := uint64((m.Stack.Back(1).BitLen() + 7) / 8)
	gas, overflow := safeMul(expByteLen, GasExpByte)
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasCall prices CALL and CALLCODE: memory growth, the non-zero-value
// surcharge, and the gas forwarded to the callee. The forwarded amount is
// recorded on the environment so the dispatcher does not re-derive it.
func gasCall(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}
	var overflow bool
	if !m.Stack.Back(2).IsZero() {
		if gas, overflow = safeAdd(gas, GasCallValue); overflow {
			return 0, errors.ErrGasUintOverflow
		}
	}

	if m.Gas < GasCall {
		// The constant part alone already exceeds the remaining gas; the
		// classifier reports out-of-gas from the total.
		env.SetCallGasTemp(0)
		return gas, nil
	}
	forwarded, err := callGas(true, m.Gas-GasCall, gas, m.Stack.Back(0))
	if err != nil {
		return 0, err
	}
	env.SetCallGasTemp(forwarded)

	if gas, overflow = safeAdd(gas, forwarded); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasDelegateCall prices DELEGATECALL and STATICCALL: like gasCall but with
// no value surcharge.
func gasDelegateCall(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}

	if m.Gas < GasCall {
		env.SetCallGasTemp(0)
		return gas, nil
	}
	forwarded, err := callGas(true, m.Gas-GasCall, gas, m.Stack.Back(0))
	if err != nil {
		return 0, err
	}
	env.SetCallGasTemp(forwarded)

	var overflow bool
	if gas, overflow = safeAdd(gas, forwarded); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}

// gasCreate2 prices CREATE2: memory growth plus hashing of the init code.
func gasCreate2(m *MachineState, env *Env, memorySize uint64) (uint64, error) {
	gas, err := gasMemExpansion(m, env, memorySize)
	if err != nil {
		return 0, err
	}
	wordGas, overflow := m.Stack.Back(2).Uint64WithOverflow()
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if wordGas, overflow = safeMul(toWordSize(wordGas), GasKeccak256Word); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	if gas, overflow = safeAdd(gas, wordGas); overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return gas, nil
}
