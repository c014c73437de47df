package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	plain := NewError(ErrCodeInvalidInput, "username is required")
	assert.Equal(t, "[INVALID_INPUT] username is required", plain.Error())

	wrapped := WrapError(ErrCodeGitHubAPI, "list repos failed", errors.New("503"))
	assert.Equal(t, "[GITHUB_API_ERROR] list repos failed: 503", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := WrapError(ErrCodeDatabase, "query failed", inner)

	assert.ErrorIs(t, wrapped, inner)
}

func TestIsCode(t *testing.T) {
	err := NewError(ErrCodeNotFound, "no such user")

	assert.True(t, IsCode(err, ErrCodeNotFound))
	assert.False(t, IsCode(err, ErrCodeDatabase))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeNotFound))
	assert.False(t, IsCode(nil, ErrCodeNotFound))

	// Codes survive further wrapping with %w.
	deep := fmt.Errorf("outer: %w", err)
	assert.True(t, IsCode(deep, ErrCodeNotFound))
}
