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

// Package stack provides the machine's 256-bit word stack. The top of the
// stack is the last element of the backing slice; Back(n) addresses the n'th
// word from the top.
package stack

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// Stack is an object for basic stack operations. Pop returns a copy of the
// top word; Peek and Back return views into the stack, not copies.
type Stack struct {
	data []uint256.Int
}

// New returns a stack from the shared pool. Return it with ReturnNormalStack
// once the frame is done with it.
func New() *Stack {
	return stackPool.Get().(*Stack)
}

// ReturnNormalStack resets the stack and hands it back to the pool.
func ReturnNormalStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Data returns the backing slice, bottom first.
func (st *Stack) Data() []uint256.Int {
	return st.data
}

// Push places d on top of the stack.
func (st *Stack) Push(d *uint256.Int) {
	// NOTE push limit (1024) is checked by the step classifier
	st.data = append(st.data, *d)
}

// PushN places ds on the stack in argument order.
func (st *Stack) PushN(ds ...uint256.Int) {
	st.data = append(st.data, ds...)
}

// Pop removes and returns the top word.
func (st *Stack) Pop() (ret uint256.Int) {
	ret = st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return
}

// Cap returns the capacity of the backing slice.
func (st *Stack) Cap() int {
	return cap(st.data)
}

// Swap exchanges the top of the stack with the n'th word from the top.
func (st *Stack) Swap(n int) {
	st.data[st.Len()-n], st.data[st.Len()-1] = st.data[st.Len()-1], st.data[st.Len()-n]
}

// Dup pushes a copy of the n'th word from the top.
func (st *Stack) Dup(n int) {
	st.Push(&st.data[st.Len()-n])
}

// Peek returns the top word without removing it.
func (st *Stack) Peek() *uint256.Int {
	return &st.data[st.Len()-1]
}

// Back returns the n'th word from the top without removing it.
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[st.Len()-n-1]
}

// Len returns the number of words on the stack.
func (st *Stack) Len() int {
	return len(st.data)
}

// Reset empties the stack, keeping the backing slice.
func (st *Stack) Reset() {
	st.data = st.data[:0]
}

// String renders the stack top first, for tracing.
func (st *Stack) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stack[%d]", st.Len())
	for i := st.Len() - 1; i >= 0; i-- {
		fmt.Fprintf(&b, " %s", st.data[i].Hex())
	}
	return b.String()
}
