package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pushy/stack"
)

func TestStack_ZeroValueIsEmpty(t *testing.T) {
	var s stack.Stack[int]
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "[]", s.String())
	assert.Equal(t, []int{}, s.Slice())

	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestStack_PopUnderflow(t *testing.T) {
	var s stack.Stack[string]
	rest, top, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrUnderflow)
	assert.Equal(t, "", top)
	assert.True(t, rest.IsEmpty())
}

func TestStack_PushPopOrder(t *testing.T) {
	s := stack.Of("EOS", "0", "1")
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "[EOS 0 1]", s.String())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "1", top)

	rest, popped, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "1", popped)
	assert.Equal(t, []string{"EOS", "0"}, rest.Slice())

	// receiver untouched
	assert.Equal(t, []string{"EOS", "0", "1"}, s.Slice())
}

func TestStack_PushAllMatchesOf(t *testing.T) {
	a := stack.Of(1, 2, 3)
	var b stack.Stack[int]
	b = b.PushAll(1, 2, 3)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(a.Push(4)))
	assert.False(t, a.Equal(stack.Of(1, 2, 4)))
}

// Two successors of one predecessor must never see each other's changes.
func TestStack_BranchIndependence(t *testing.T) {
	base := stack.Of("EOS", "0", "1")
	left := base.Push("1")
	right, _, err := base.Pop()
	require.NoError(t, err)

	// drive the siblings further apart
	left = left.Push("0")
	for !right.IsEmpty() {
		right, _, err = right.Pop()
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"EOS", "0", "1"}, base.Slice())
	assert.Equal(t, []string{"EOS", "0", "1", "1", "0"}, left.Slice())
	assert.True(t, right.IsEmpty())
}

func TestStack_EqualWithSharedTail(t *testing.T) {
	base := stack.Of(0, 1, 0)
	a := base.Push(7)
	b := base.Push(7)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(base.Push(8)))
}
