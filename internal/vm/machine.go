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
	"github.com/halcyonchain/halcyon/params"
)

// StackLimit is the maximum number of words on the machine stack.
const StackLimit = 1024

// MaxStackDepth returns the machine stack depth limit.
func MaxStackDepth() int {
	return StackLimit
}

// MachineState is the mutable per-frame machine state. The step classifier
// only ever reads it; mutation belongs to the dispatch loop.
type MachineState struct {
	PC     uint64
	Stack  *stack.Stack
	Memory *Memory
	Gas    uint64

	// ReturnData is the buffer returned by the most recent sub-call,
	// possibly empty.
	ReturnData []byte
}

// NewMachineState returns a fresh frame state with the given gas budget.
// The stack comes from the shared pool; call Release when the frame is done.
func NewMachineState(gas uint64) *MachineState {
	return &MachineState{
		Stack:  stack.New(),
		Memory: NewMemory(),
		Gas:    gas,
	}
}

// Release returns pooled resources. The state must not be used afterwards.
func (m *MachineState) Release() {
	if m.Stack != nil {
		stack.ReturnNormalStack(m.Stack)
		m.Stack = nil
	}
}

// Env is the read-only execution environment of a frame: the code under
// execution, its jump-destination analysis, the static flag and the fork
// config. The cost oracle is the only party allowed to update the
// environment-level bookkeeping (the call gas temp).
type Env struct {
	code      []byte
	jumpDests JumpDestSet
	static    bool
	config    *params.ForkConfig
	table     JumpTable
	oracle    CostOracle

	// callGasTemp holds the gas forwarded to a callee, as computed by the
	// cost oracle for the CALL family. Stored here so the dispatcher does
	// not re-derive it.
	callGasTemp uint64
}

// NewEnv builds the environment for one frame: the instruction table for cfg
// comes from the shared cache, the jump-destination set from the analysis
// cache, and costing defaults to the built-in schedule oracle.
func NewEnv(code []byte, cfg *params.ForkConfig, static bool) *Env {
	return &Env{
		code:      code,
		jumpDests: CachedJumpDests(code),
		static:    static,
		config:    cfg,
		table:     GetCachedInstructionSet(cfg),
		oracle:    defaultOracle,
	}
}

// SetOracle replaces the cost oracle. A nil oracle restores the default.
func (e *Env) SetOracle(o CostOracle) {
	if o == nil {
		o = defaultOracle
	}
	e.oracle = o
}

// Code returns the bytecode under execution.
func (e *Env) Code() []byte {
	return e.code
}

// JumpDests returns the precomputed jump-destination set.
func (e *Env) JumpDests() JumpDestSet {
	return e.jumpDests
}

// Static reports whether the frame forbids state mutation.
func (e *Env) Static() bool {
	return e.static
}

// Config returns the fork config the frame runs under.
func (e *Env) Config() *params.ForkConfig {
	return e.config
}

// Table returns the fork-gated instruction table.
func (e *Env) Table() JumpTable {
	return e.table
}

// GetOp returns the opcode at position pc. Reading past the end of the code
// yields the implicit STOP.
func (e *Env) GetOp(pc uint64) OpCode {
	if pc < uint64(len(e.code)) {
		return OpCode(e.code[pc])
	}
	return STOP
}

// SetCallGasTemp records the gas forwarded to a callee.
func (e *Env) SetCallGasTemp(gas uint64) {
	e.callGasTemp = gas
}

// CallGasTemp returns the gas forwarded to a callee.
func (e *Env) CallGasTemp() uint64 {
	return e.callGasTemp
}
