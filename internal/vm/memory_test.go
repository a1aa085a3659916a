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
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

// =============================================================================
// Memory Basic Tests
// =============================================================================

func TestMemoryNew(t *testing.T) {
	mem := NewMemory()
	if mem == nil {
		t.Fatal("NewMemory returned nil")
	}
	if mem.Len() != 0 {
		t.Errorf("New memory should be empty, got len %d", mem.Len())
	}
	if cap(mem.store) < 4*1024 {
		t.Errorf("Initial capacity should be at least 4KB, got %d", cap(mem.store))
	}
	t.Logf("✓ NewMemory creates empty memory with initial capacity")
}

func TestMemoryResize(t *testing.T) {
	tests := []struct {
		name     string
		size     uint64
		expected int
	}{
		{"zero", 0, 0},
		{"one_byte", 1, 1},
		{"word", 32, 32},
		{"large", 4096, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemory()
			mem.Resize(tt.size)
			if mem.Len() != tt.expected {
				t.Errorf("After Resize(%d), Len() = %d, want %d", tt.size, mem.Len(), tt.expected)
			}
		})
	}
	t.Logf("✓ Resize works correctly")
}

func TestMemoryResizeMultiple(t *testing.T) {
	mem := NewMemory()

	mem.Resize(32)
	if mem.Len() != 32 {
		t.Errorf("First resize: expected len 32, got %d", mem.Len())
	}

	mem.Resize(64)
	if mem.Len() != 64 {
		t.Errorf("Second resize: expected len 64, got %d", mem.Len())
	}

	// Shrinking is a no-op
	mem.Resize(32)
	if mem.Len() != 64 {
		t.Errorf("Smaller resize should not shrink: expected len 64, got %d", mem.Len())
	}

	t.Logf("✓ Multiple resizes work correctly")
}

func TestMemorySet(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0x01, 0x02, 0x03, 0x04}
	mem.Set(0, uint64(len(data)), data)

	result := mem.GetCopy(0, int64(len(data)))
	if !bytes.Equal(result, data) {
		t.Errorf("GetCopy = %x, want %x", result, data)
	}

	mem.Set(32, uint64(len(data)), data)
	result = mem.GetCopy(32, int64(len(data)))
	if !bytes.Equal(result, data) {
		t.Errorf("GetCopy at 32 = %x, want %x", result, data)
	}

	t.Logf("✓ Set works correctly")
}

func TestMemorySetZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	// A zero-size set must not touch memory, whatever the offset
	mem.Set(100, 0, []byte{0x01, 0x02})

	if mem.Len() != 32 {
		t.Errorf("Zero-size set changed memory length: got %d, want 32", mem.Len())
	}

	t.Logf("✓ Zero-size Set is a no-op")
}

func TestMemorySet32(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	val := uint256.NewInt(0x0102030405060708)
	mem.Set32(0, val)

	data := mem.GetPtr(0, 32)
	expected := val.Bytes32()
	if !bytes.Equal(data, expected[:]) {
		t.Errorf("Set32 result = %x, want %x", data, expected)
	}

	t.Logf("✓ Set32 works correctly")
}

func TestMemoryGetCopy(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	mem.Set(10, uint64(len(data)), data)

	copy1 := mem.GetCopy(10, 4)
	copy2 := mem.GetCopy(10, 4)

	// The copies are independent of each other and of the store
	copy1[0] = 0xFF
	if copy2[0] != 0xAA {
		t.Errorf("GetCopy results should be independent")
	}
	if mem.GetPtr(10, 1)[0] != 0xAA {
		t.Errorf("GetCopy should not alias the store")
	}

	t.Logf("✓ GetCopy returns independent copies")
}

func TestMemoryGetCopyZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	result := mem.GetCopy(0, 0)
	if len(result) != 0 {
		t.Errorf("GetCopy(0, 0) should be empty, got %d bytes", len(result))
	}

	t.Logf("✓ Zero-size GetCopy works correctly")
}

func TestMemoryGetCopyPastSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(4)
	mem.Set(0, 4, []byte{0x01, 0x02, 0x03, 0x04})

	// Reads past the current size observe zeros
	result := mem.GetCopy(2, 4)
	expected := []byte{0x03, 0x04, 0x00, 0x00}
	if !bytes.Equal(result, expected) {
		t.Errorf("GetCopy past size = %x, want %x", result, expected)
	}

	result = mem.GetCopy(100, 3)
	if !bytes.Equal(result, []byte{0x00, 0x00, 0x00}) {
		t.Errorf("GetCopy beyond size should be all zeros, got %x", result)
	}

	t.Logf("✓ GetCopy zero-pads past the current size")
}

func TestMemoryReset(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)
	mem.Set(0, 4, []byte{0x01, 0x02, 0x03, 0x04})

	mem.Reset()

	if mem.Len() != 0 {
		t.Errorf("After Reset, Len() = %d, want 0", mem.Len())
	}

	t.Logf("✓ Reset works correctly")
}

// =============================================================================
// Benchmark Tests
// =============================================================================

func BenchmarkMemoryResize(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem := NewMemory()
		mem.Resize(1024)
	}
}

func BenchmarkMemoryGetCopy(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mem.GetCopy(0, 32)
	}
}
