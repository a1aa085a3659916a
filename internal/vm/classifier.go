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
	"github.com/holiman/uint256"

	"github.com/halcyonchain/halcyon/internal/vm/stack"
)

// maxOperands is the largest operand count of any instruction (SWAP16).
const maxOperands = 17

// Classifier decides, for each step, whether the machine continues (and at
// what cost) or halts (and why). Implementations must be pure: repeated
// calls on the same state yield the same verdict and mutate nothing.
type Classifier interface {
	// Classify runs the ordered fault checks and the gas gate. A HaltNone
	// reason means the step may proceed at the reported cost.
	Classify(m *MachineState, env *Env) (CostReport, HaltReason)

	// NormalHalt reports whether the current instruction ends the frame
	// without fault, and with what payload.
	NormalHalt(m *MachineState, env *Env) (HaltMode, []byte)
}

// stepClassifier is the stateless core classifier.
type stepClassifier struct{}

// NewClassifier returns the core step classifier.
func NewClassifier() Classifier {
	return stepClassifier{}
}

// probeStack returns the top n stack words in pop order without modifying
// the stack. The bool is false when the stack is too shallow; callers must
// treat that as stack underflow before inspecting any operand.
func probeStack(st *stack.Stack, n int) ([]*uint256.Int, bool) {
	if st.Len() < n {
		return nil, false
	}
	var buf [maxOperands]*uint256.Int
	for i := 0; i < n; i++ {
		buf[i] = st.Back(i)
	}
	return buf[:n], true
}

// validJumpDest reports whether dest names a reachable JUMPDEST in the code.
func validJumpDest(env *Env, dest *uint256.Int) bool {
	udest, overflow := dest.Uint64WithOverflow()
	if overflow || udest >= uint64(len(env.code)) {
		return false
	}
	if OpCode(env.code[udest]) != JUMPDEST {
		return false
	}
	return env.jumpDests.Contains(udest)
}

// mutatesState reports whether executing op would write world state. CALL
// only writes when it transfers a non-zero value; inputs are the probed
// operands in pop order.
func mutatesState(op OpCode, oper *operation, inputs []*uint256.Int) bool {
	if oper.writes {
		return true
	}
	return op == CALL && !inputs[2].IsZero()
}

// Classify implements the ordered halting checks. The order is part of the
// contract: a step that underflows the stack reports stack underflow even if
// it would also fault later, and the cost oracle is never consulted once an
// earlier check has failed.
func (stepClassifier) Classify(m *MachineState, env *Env) (CostReport, HaltReason) {
	op := env.GetOp(m.PC)

	// The designated invalid instruction outranks the undefined check, so a
	// fork-masked table can never reclassify 0xFE.
	if op == INVALID {
		return CostReport{}, HaltInvalidInstruction
	}
	oper := env.Table()[op]
	if oper == nil {
		return CostReport{}, HaltUndefinedInstruction
	}

	sLen := m.Stack.Len()
	if sLen < oper.numPop {
		return CostReport{}, HaltStackUnderflow
	}
	if sLen-oper.numPop+oper.numPush > StackLimit {
		return CostReport{}, HaltStackOverflow
	}

	inputs, ok := probeStack(m.Stack, oper.numPop)
	if !ok {
		return CostReport{}, HaltStackUnderflow
	}

	switch op {
	case JUMP:
		if !validJumpDest(env, inputs[0]) {
			return CostReport{}, HaltInvalidJumpDest
		}
	case JUMPI:
		// A zero condition never faults on the target.
		if !inputs[1].IsZero() && !validJumpDest(env, inputs[0]) {
			return CostReport{}, HaltInvalidJumpDest
		}
	}

	if env.Static() && mutatesState(op, oper, inputs) {
		return CostReport{}, HaltWriteProtection
	}

	if op == RETURNDATACOPY {
		// Operands in pop order: memory offset, return data offset, size.
		// The sum must be taken at full 256-bit width; any overflow is
		// itself out of bounds.
		end := GetUint256()
		_, overflow := end.AddOverflow(inputs[1], inputs[2])
		inBounds := !overflow && end.IsUint64() && end.Uint64() <= uint64(len(m.ReturnData))
		PutUint256(end)
		if !inBounds {
			return CostReport{}, HaltReturnDataOutOfBounds
		}
	}

	report, err := env.oracle.CostOf(m, env)
	if err != nil || report.Cost > m.Gas {
		return CostReport{}, HaltOutOfGas
	}
	return report, HaltNone
}

// Classify runs the core classifier on (m, env).
func Classify(m *MachineState, env *Env) (CostReport, HaltReason) {
	return stepClassifier{}.Classify(m, env)
}
