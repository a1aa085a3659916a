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

	"github.com/halcyonchain/halcyon/pkg/errors"
)

// Gas cost tiers per Yellow Paper Appendix G.
const (
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20
)

// Per-instruction constant costs outside the tiers.
const (
	GasJumpDest      uint64 = 1
	GasStop          uint64 = 0
	GasReturn        uint64 = 0
	GasRevert        uint64 = 0
	GasKeccak256     uint64 = 30
	GasKeccak256Word uint64 = 6
	GasBalance       uint64 = 400
	GasSload         uint64 = 200
	GasSstoreSet     uint64 = 20000
	GasExtcodeSize   uint64 = 700
	GasExtcodeCopy   uint64 = 700
	GasExtcodeHash   uint64 = 400
	GasCall          uint64 = 700
	GasCallValue     uint64 = 9000
	GasCallStipend   uint64 = 2300
	GasCreate        uint64 = 32000
	GasSelfdestruct  uint64 = 5000
	GasLog           uint64 = 375
	GasLogTopic      uint64 = 375
	GasLogByte       uint64 = 8
	GasExpByte       uint64 = 10
)

// Memory expansion cost: words*GasMemoryWord + words^2/QuadCoeffDiv.
const (
	GasMemoryWord uint64 = 3
	QuadCoeffDiv  uint64 = 512
	GasCopyWord   uint64 = 3
)

// safeAdd returns a+b and whether the addition overflowed.
func safeAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum < a
}

// safeMul returns a*b and whether the multiplication overflowed.
func safeMul(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	prod := a * b
	return prod, prod/b != a
}

// toWordSize returns the number of 32-byte words required to hold size bytes.
func toWordSize(size uint64) uint64 {
	if size > maxUint64-31 {
		return maxUint64/32 + 1
	}
	return (size + 31) / 32
}

// ToWordSize is the exported form of toWordSize, used by gas oracles built
// outside this package.
func ToWordSize(size uint64) uint64 {
	return toWordSize(size)
}

// memoryGasCost returns the gas needed to grow mem to newMemSize bytes.
// It is a pure read of the current memory size; charging and growing are the
// caller's business. The second return is true when the size is too large to
// price in uint64.
func memoryGasCost(mem *Memory, newMemSize uint64) (uint64, bool) {
	if newMemSize == 0 {
		return 0, false
	}
	// Anything above this would overflow the square below; the gas check
	// rejects it long before, so treat it as unpriceable.
	if newMemSize > 0x1FFFFFFFE0 {
		return 0, true
	}
	newWords := toWordSize(newMemSize)
	newCost := newWords*GasMemoryWord + newWords*newWords/QuadCoeffDiv

	oldWords := toWordSize(uint64(mem.Len()))
	oldCost := oldWords*GasMemoryWord + oldWords*oldWords/QuadCoeffDiv

	if newCost > oldCost {
		return newCost - oldCost, false
	}
	return 0, false
}

// callGas returns the gas a call instruction may forward to its callee.
// With the 63/64 rule active (EIP-150), the forwarded amount is capped at
// availableGas - base minus a 1/64 retention; before it, the requested
// callCost must fit in uint64 or the computation fails.
func callGas(isEip150 bool, availableGas, base uint64, callCost *uint256.Int) (uint64, error) {
	if isEip150 {
		availableGas = availableGas - base
		gas := availableGas - availableGas/64
		// If the bit length exceeds 64 bits, we know that the newly calculated
		// "gas" for EIP150 is smaller than the requested amount. Therefore we
		// return the new gas instead of returning an error.
		if !callCost.IsUint64() || gas < callCost.Uint64() {
			return gas, nil
		}
	}
	if !callCost.IsUint64() {
		return 0, errors.ErrGasUintOverflow
	}

	return callCost.Uint64(), nil
}
