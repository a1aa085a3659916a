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
	mapset "github.com/deckarep/golang-set/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// JumpDestSet holds the code positions that are reachable JUMPDEST markers.
// It is built once per code blob and never mutated afterwards.
type JumpDestSet = mapset.Set[uint64]

// BuildJumpDests scans code left to right and records every JUMPDEST byte
// that is an instruction. The immediates of PUSH1..PUSH32 are skipped, so a
// 0x5b byte inside push data is never recorded.
func BuildJumpDests(code []byte) JumpDestSet {
	dests := mapset.NewThreadUnsafeSet[uint64]()
	for i := 0; i < len(code); i++ {
		op := OpCode(code[i])
		if op == JUMPDEST {
			dests.Add(uint64(i))
		} else if op.IsPush() {
			i += op.PushBytes()
		}
	}
	return dests
}

const defaultAnalysisCacheSize = 4096

// analysisCache memoizes completed jump-destination analyses keyed by the
// keccak256 hash of the code. Contracts are re-entered constantly; their
// analysis is not.
var analysisCache, _ = lru.New[[32]byte, JumpDestSet](defaultAnalysisCacheSize)

// codeHash returns the keccak256 hash of code.
func codeHash(code []byte) (h [32]byte) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(code)
	hasher.Sum(h[:0])
	return h
}

// CachedJumpDests returns the jump-destination set for code, reusing a prior
// analysis of the same bytes when one is cached.
func CachedJumpDests(code []byte) JumpDestSet {
	if len(code) == 0 {
		return mapset.NewThreadUnsafeSet[uint64]()
	}
	hash := codeHash(code)
	if dests, ok := analysisCache.Get(hash); ok {
		return dests
	}
	dests := BuildJumpDests(code)
	analysisCache.Add(hash, dests)
	return dests
}
