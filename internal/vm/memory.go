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
)

// Memory is the frame's byte-addressed scratch memory. It only ever grows;
// reads past the current size observe zeros.
type Memory struct {
	store []byte
}

// NewMemory returns a new memory with a 4KB backing buffer pre-allocated.
func NewMemory() *Memory {
	return &Memory{
		store: make([]byte, 0, 4*1024),
	}
}

// Set writes value to memory at [offset, offset+size). The region must have
// been resized into existence first.
func (m *Memory) Set(offset, size uint64, value []byte) {
	// length of store may never be less than offset + size.
	// The store should be resized PRIOR to setting the memory
	if size > 0 {
		if offset+size > uint64(len(m.store)) {
			panic("invalid memory: store empty")
		}
		copy(m.store[offset:offset+size], value)
	}
}

// Set32 writes the 32-byte big-endian form of val at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	if offset+32 > uint64(len(m.store)) {
		panic("invalid memory: store empty")
	}
	b32 := val.Bytes32()
	copy(m.store[offset:], b32[:])
}

// Resize grows memory to size bytes. Shrinking is a no-op.
func (m *Memory) Resize(size uint64) {
	if uint64(m.Len()) < size {
		m.store = append(m.store, make([]byte, size-uint64(m.Len()))...)
	}
}

// GetCopy returns a fresh copy of [offset, offset+size), zero-padded past the
// current memory size.
func (m *Memory) GetCopy(offset, size int64) (cpy []byte) {
	if size == 0 {
		return nil
	}

	cpy = make([]byte, size)
	if offset < int64(len(m.store)) {
		copy(cpy, m.store[offset:])
	}
	return
}

// GetPtr returns a view of [offset, offset+size) without copying. The region
// must lie inside the current size.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}

	if len(m.store) > int(offset) {
		return m.store[offset : offset+size]
	}

	return nil
}

// Len returns the current memory size.
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the backing slice.
func (m *Memory) Data() []byte {
	return m.store
}

// Reset empties the memory, keeping the backing buffer for reuse.
func (m *Memory) Reset() {
	m.store = m.store[:0]
}
