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
	"sync"

	"github.com/halcyonchain/halcyon/params"
)

// instructionSetCache provides cached instruction tables to avoid repeated
// construction. Tables are immutable once created, so they can be safely
// shared across frames and goroutines.
var instructionSetCache = &instructionSetCacheType{
	tables: make(map[string]JumpTable),
}

type instructionSetCacheType struct {
	mu     sync.RWMutex
	tables map[string]JumpTable
}

// GetCachedInstructionSet returns the instruction table for the given fork
// config, creating and caching it on first use.
func GetCachedInstructionSet(cfg *params.ForkConfig) JumpTable {
	key := cfg.CacheKey()

	// Fast path: read lock
	instructionSetCache.mu.RLock()
	table, ok := instructionSetCache.tables[key]
	instructionSetCache.mu.RUnlock()
	if ok {
		return table
	}

	// Slow path: create and cache
	instructionSetCache.mu.Lock()
	defer instructionSetCache.mu.Unlock()

	// Double-check after acquiring write lock
	if table, ok = instructionSetCache.tables[key]; ok {
		return table
	}

	table = newInstructionSet(cfg)
	instructionSetCache.tables[key] = table
	return table
}

// PrewarmInstructionSets pre-creates the tables for all known fork presets.
// Call this during startup to avoid construction during execution.
func PrewarmInstructionSets() {
	presets := params.AllPresets()
	for i := range presets {
		GetCachedInstructionSet(&presets[i])
	}
}
