package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState(t *testing.T) {
	state := NewState([]string{"-a", "1", "-b"})
	assert.Equal(t, "", state.CurrentArg())

	assert.True(t, state.Advance())
	assert.Equal(t, "-a", state.CurrentArg())

	next, ok := state.Peek()
	assert.True(t, ok)
	assert.Equal(t, "1", next)
	assert.Equal(t, "-a", state.CurrentArg(), "peek does not advance")

	assert.True(t, state.Skip())
	assert.Equal(t, "-a", state.CurrentArg(), "skip does not change the current argument")

	assert.True(t, state.Advance())
	assert.Equal(t, "-b", state.CurrentArg())

	_, ok = state.Peek()
	assert.False(t, ok)
	assert.False(t, state.Skip())
	assert.False(t, state.Advance())
	assert.Equal(t, "", state.CurrentArg())
}

func TestDefaultState_Empty(t *testing.T) {
	state := NewState(nil)
	_, ok := state.Peek()
	assert.False(t, ok)
	assert.False(t, state.Advance())
}
