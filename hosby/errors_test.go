package hosby

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorShape(t *testing.T) {
	err := newError(http.StatusNotFound, "Resource not found", nil)

	assert.False(t, err.Success)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Resource not found", err.Message)
	assert.Equal(t, "hosby: request failed: status 404: Resource not found", err.Error())
}

func TestErrorJSON(t *testing.T) {
	raw, err := json.Marshal(newError(http.StatusNotFound, "Resource not found", nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"status":404,"message":"Resource not found"}`, string(raw))
}

func TestErrorUnwrap(t *testing.T) {
	err := newError(http.StatusBadRequest, "Method and path are required", ErrValidation)

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestNormalizeError(t *testing.T) {
	t.Run("already normalized passes through verbatim", func(t *testing.T) {
		orig := newError(http.StatusNotFound, "Resource not found", nil)

		assert.Same(t, orig, normalizeError(orig))
	})

	t.Run("wrapped normalized error is recovered", func(t *testing.T) {
		orig := newError(http.StatusNotFound, "Resource not found", nil)
		wrapped := errors.Join(ErrToken, orig)

		assert.Same(t, orig, normalizeError(wrapped))
	})

	t.Run("plain error becomes a 500", func(t *testing.T) {
		got := normalizeError(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "boom", got.Message)
	})
}

func TestErrorFromResponse(t *testing.T) {
	t.Run("message from JSON body", func(t *testing.T) {
		got := errorFromResponse(http.StatusNotFound, []byte(`{"message":"Resource not found"}`))

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, "Resource not found", got.Message)
		assert.False(t, got.Success)
	})

	t.Run("extra fields preserved", func(t *testing.T) {
		got := errorFromResponse(http.StatusUnprocessableEntity, []byte(`{"message":"bad","field":"email","success":false,"status":422}`))

		assert.Equal(t, "bad", got.Message)
		assert.Equal(t, map[string]any{"field": "email"}, got.Extra)
	})

	t.Run("unparsable body falls back to status text", func(t *testing.T) {
		got := errorFromResponse(http.StatusBadGateway, []byte("<html>nope</html>"))

		assert.Equal(t, http.StatusBadGateway, got.Status)
		assert.Equal(t, "Bad Gateway", got.Message)
	})

	t.Run("JSON body without message falls back to status text", func(t *testing.T) {
		got := errorFromResponse(http.StatusForbidden, []byte(`{"detail":"denied"}`))

		assert.Equal(t, "Forbidden", got.Message)
		assert.Equal(t, map[string]any{"detail": "denied"}, got.Extra)
	})
}
