package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Item", nil).Status)
	assert.Equal(t, http.StatusBadRequest, Validation("bad", nil).Status)
	assert.Equal(t, http.StatusConflict, InvalidState("stuck", nil).Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("no", nil).Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("who", nil).Status)
}

func TestIsMatchesWrappedErrors(t *testing.T) {
	err := NotFound("Offer", nil)
	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "FORBIDDEN"))

	wrapped := fmt.Errorf("loading: %w", err)
	assert.True(t, Is(wrapped, "NOT_FOUND"))

	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Item not found", NotFound("Item", nil).Message)
}
