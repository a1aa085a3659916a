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
	"math"

	"github.com/holiman/uint256"
)

const maxUint64 = math.MaxUint64

// calcMemSize64 calculates the required memory size for an (offset, length)
// pair of stack words. The second return is true when the result does not fit
// in uint64.
func calcMemSize64(off, l *uint256.Int) (uint64, bool) {
	if !l.IsUint64() {
		return 0, true
	}
	return calcMemSize64WithUint(off, l.Uint64())
}

// calcMemSize64WithUint is calcMemSize64 with a uint64 length. A zero length
// never requires memory, whatever the offset.
func calcMemSize64WithUint(off *uint256.Int, length64 uint64) (uint64, bool) {
	if length64 == 0 {
		return 0, false
	}
	// Check that offset doesn't overflow
	offset64, overflow := off.Uint64WithOverflow()
	if overflow {
		return 0, true
	}
	val := offset64 + length64
	// if value < either of it's parts, then it overflowed
	return val, val < offset64
}

// getData returns a slice from data based on start and size, padded with
// zeros up to size. This way it always returns exactly size bytes.
func getData(data []byte, start uint64, size uint64) []byte {
	length := uint64(len(data))
	if start > length {
		start = length
	}
	end := start + size
	if end > length {
		end = length
	}
	return rightPadBytes(data[start:end], int(size))
}

// getDataBig is getData with a 256-bit start; any start beyond uint64 reads
// only padding.
func getDataBig(data []byte, start *uint256.Int, size uint64) []byte {
	start64, overflow := start.Uint64WithOverflow()
	if overflow {
		start64 = maxUint64
	}
	return getData(data, start64, size)
}

// rightPadBytes zero-pads slice to the right up to length l.
func rightPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}

	padded := make([]byte, l)
	copy(padded, slice)

	return padded
}

// allZero reports whether every byte of b is zero.
func allZero(b []byte) bool {
	for _, byt := range b {
		if byt != 0 {
			return false
		}
	}
	return true
}
