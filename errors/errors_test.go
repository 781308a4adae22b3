package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.True(t, Is(wrapped, original))
}

func TestSentinels(t *testing.T) {
	err := NewNotFoundError("individual %s", "42")

	assert.True(t, IsNotFoundError(err))
	assert.True(t, Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "individual 42")

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(New("other")))
}

func TestInvalidRequest(t *testing.T) {
	err := NewInvalidRequestError("bad generations value %d", -1)

	assert.True(t, Is(err, ErrInvalidRequest))
	assert.Contains(t, err.Error(), "bad generations value -1")
}
