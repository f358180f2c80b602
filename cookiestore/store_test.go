package cookiestore

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(&http.Cookie{Name: "csrf", Value: "tok-1"}))

		got, ok := m.Get("csrf")
		assert.True(t, ok)
		assert.Equal(t, "tok-1", got)
	})

	t.Run("missing cookie", func(t *testing.T) {
		m := NewMemory()

		_, ok := m.Get("nope")
		assert.False(t, ok)
	})

	t.Run("overwrite", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(&http.Cookie{Name: "csrf", Value: "tok-1"}))
		require.NoError(t, m.Set(&http.Cookie{Name: "csrf", Value: "tok-2"}))

		got, _ := m.Get("csrf")
		assert.Equal(t, "tok-2", got)
	})

	t.Run("negative max-age deletes", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(&http.Cookie{Name: "csrf", Value: "tok-1"}))
		require.NoError(t, m.Set(&http.Cookie{Name: "csrf", MaxAge: -1}))

		_, ok := m.Get("csrf")
		assert.False(t, ok)
	})

	t.Run("expired cookie is gone", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(&http.Cookie{
			Name:    "csrf",
			Value:   "tok-1",
			Expires: time.Now().Add(-time.Minute),
		}))

		_, ok := m.Get("csrf")
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(&http.Cookie{Name: "csrf", Value: "tok-1"}))
		require.NoError(t, m.Delete("csrf"))

		_, ok := m.Get("csrf")
		assert.False(t, ok)

		// Deleting again is fine.
		assert.NoError(t, m.Delete("csrf"))
	})
}

func TestJar(t *testing.T) {
	t.Run("invalid site URL", func(t *testing.T) {
		_, err := NewJar("://bad")
		assert.Error(t, err)
	})

	t.Run("relative site URL", func(t *testing.T) {
		_, err := NewJar("/just/a/path")
		assert.Error(t, err)
	})

	t.Run("set get delete", func(t *testing.T) {
		jar, err := NewJar("https://api.hosby.io")
		require.NoError(t, err)

		require.NoError(t, jar.Set(&http.Cookie{
			Name:     "hosby_csrf",
			Value:    "tok-1",
			Path:     "/",
			MaxAge:   604800,
			SameSite: http.SameSiteStrictMode,
		}))

		got, ok := jar.Get("hosby_csrf")
		assert.True(t, ok)
		assert.Equal(t, "tok-1", got)

		require.NoError(t, jar.Delete("hosby_csrf"))

		_, ok = jar.Get("hosby_csrf")
		assert.False(t, ok)
	})
}
