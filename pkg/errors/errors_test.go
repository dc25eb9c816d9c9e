package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesWrappedAppError(t *testing.T) {
	err := fmt.Errorf("load user: %w", NotFound("User", nil))

	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeForbidden))
	assert.False(t, Is(stderrors.New("plain"), CodeNotFound))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("deadline exceeded")
	err := Unavailable("Store unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "Admin privileges required", Message(Forbidden("Admin privileges required", nil), "x"))
	assert.Equal(t, "x", Message(stderrors.New("boom"), "x"))
}
