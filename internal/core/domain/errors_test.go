package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrFeedUnavailable", ErrFeedUnavailable},
		{"ErrFetchFailed", ErrFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

// TestErrAlreadyExists tests ErrAlreadyExists error
func TestErrAlreadyExists(t *testing.T) {
	assert.Equal(t, "already exists", ErrAlreadyExists.Error())
	assert.True(t, errors.Is(ErrAlreadyExists, ErrAlreadyExists))
	assert.False(t, errors.Is(ErrAlreadyExists, ErrNotFound))
}

// TestErrors_Wrapping tests that wrapped domain errors survive errors.Is
func TestErrors_Wrapping(t *testing.T) {
	wrapped := errors.Join(errors.New("downloading article"), ErrFetchFailed)
	assert.True(t, errors.Is(wrapped, ErrFetchFailed))
	assert.False(t, errors.Is(wrapped, ErrFeedUnavailable))
}
