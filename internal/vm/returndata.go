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

// HaltMode says how a frame ended without fault.
type HaltMode uint8

const (
	// HaltModeNone: the current instruction does not end the frame.
	HaltModeNone HaltMode = iota

	// HaltModeReturn: the frame ends successfully with a payload (RETURN).
	HaltModeReturn

	// HaltModeRevert: the frame ends reverting state, with a payload (REVERT).
	HaltModeRevert

	// HaltModeStop: the frame ends successfully with an empty payload
	// (STOP, SELFDESTRUCT, or running off the end of the code).
	HaltModeStop
)

func (h HaltMode) String() string {
	switch h {
	case HaltModeNone:
		return "none"
	case HaltModeReturn:
		return "return"
	case HaltModeRevert:
		return "revert"
	case HaltModeStop:
		return "stop"
	default:
		return "unknown"
	}
}

// NormalHalt inspects the current instruction and reports whether it ends
// the frame without fault. For RETURN and REVERT the payload is extracted
// from memory; for STOP and SELFDESTRUCT it is empty. Instructions masked by
// the fork gate never halt normally - they fault in Classify instead.
func (stepClassifier) NormalHalt(m *MachineState, env *Env) (HaltMode, []byte) {
	op := env.GetOp(m.PC)
	oper := env.Table()[op]
	if oper == nil {
		return HaltModeNone, nil
	}
	switch {
	case oper.reverts:
		return HaltModeRevert, ReturnPayload(m)
	case oper.returns:
		return HaltModeReturn, ReturnPayload(m)
	case oper.halts:
		return HaltModeStop, nil
	}
	return HaltModeNone, nil
}

// NormalHalt runs the core normal-halt predicate on (m, env).
func NormalHalt(m *MachineState, env *Env) (HaltMode, []byte) {
	return stepClassifier{}.NormalHalt(m, env)
}

// ReturnPayload reads the (offset, length) pair from the top of the stack
// and slices memory into a fresh buffer of exactly length bytes, zero-padded
// past the current memory size. It is a pure read: neither the stack nor the
// memory is modified.
//
// The length word is untrusted. A length that cannot even be addressed on
// this machine yields nil; callers wanting a tighter bound apply their own
// limit before calling.
func ReturnPayload(m *MachineState) []byte {
	offset, length := m.Stack.Back(0), m.Stack.Back(1)

	size, ok := SafeUint256ToUint64(length)
	if !ok {
		return nil
	}
	if size == 0 {
		return []byte{}
	}
	payload := make([]byte, size)
	data := m.Memory.Data()
	if start, overflow := offset.Uint64WithOverflow(); !overflow && start < uint64(len(data)) {
		copy(payload, data[start:])
	}
	return payload
}
