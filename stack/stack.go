package stack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnderflow is returned by Pop when the stack holds no elements.
var ErrUnderflow = errors.New("stack: underflow")

// cell is one immutable link of the list; next points toward the bottom.
type cell[T comparable] struct {
	val  T
	next *cell[T]
}

// Stack is a persistent LIFO stack. Copying a Stack is cheap and safe.
type Stack[T comparable] struct {
	top  *cell[T]
	size int
}

// Of builds a stack from values listed bottom to top.
func Of[T comparable](bottomToTop ...T) Stack[T] {
	var s Stack[T]

	return s.PushAll(bottomToTop...)
}

// Push returns a new stack with v on top.
func (s Stack[T]) Push(v T) Stack[T] {
	return Stack[T]{top: &cell[T]{val: v, next: s.top}, size: s.size + 1}
}

// PushAll pushes vs in order, so the last value ends up on top.
func (s Stack[T]) PushAll(vs ...T) Stack[T] {
	for _, v := range vs {
		s = s.Push(v)
	}

	return s
}

// Pop returns the stack without its top element and the removed element.
// The receiver is unchanged.
func (s Stack[T]) Pop() (Stack[T], T, error) {
	if s.top == nil {
		var zero T
		return s, zero, ErrUnderflow
	}

	return Stack[T]{top: s.top.next, size: s.size - 1}, s.top.val, nil
}

// Peek returns the top element without removing it.
// ok is false on an empty stack.
func (s Stack[T]) Peek() (v T, ok bool) {
	if s.top == nil {
		return v, false
	}

	return s.top.val, true
}

// Len reports the number of elements.
func (s Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack has no elements.
func (s Stack[T]) IsEmpty() bool { return s.size == 0 }

// Slice returns a fresh slice with the elements bottom to top.
func (s Stack[T]) Slice() []T {
	out := make([]T, s.size)
	i := s.size - 1
	for c := s.top; c != nil; c = c.next {
		out[i] = c.val
		i--
	}

	return out
}

// Equal reports whether both stacks hold the same elements in the same order.
func (s Stack[T]) Equal(o Stack[T]) bool {
	if s.size != o.size {
		return false
	}
	for a, b := s.top, o.top; a != nil; a, b = a.next, b.next {
		if a == b {
			// shared tail: the rest is identical
			return true
		}
		if a.val != b.val {
			return false
		}
	}

	return true
}

// String renders the stack bottom first, e.g. "[EOS 0 1]".
func (s Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.Slice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')

	return b.String()
}
