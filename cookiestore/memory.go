package cookiestore

import (
	"net/http"
	"sync"
	"time"
)

type memoryEntry struct {
	value   string
	expires time.Time // zero means session cookie, never expires here
}

// Memory is an in-process Store backed by a map. It honors Max-Age and
// Expires but ignores Path, Domain, and the security attributes, which
// have no meaning inside a single process.
type Memory struct {
	mu      sync.RWMutex
	cookies map[string]memoryEntry
}

// NewMemory creates an empty in-process cookie store.
func NewMemory() *Memory {
	return &Memory{cookies: make(map[string]memoryEntry)}
}

// Get returns the value of the named cookie if present and unexpired.
func (m *Memory) Get(name string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.cookies[name]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}

	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		m.mu.Lock()
		delete(m.cookies, name)
		m.mu.Unlock()

		return "", false
	}

	return entry.value, true
}

// Set stores the cookie. A negative Max-Age removes it.
func (m *Memory) Set(c *http.Cookie) error {
	if c.MaxAge < 0 {
		return m.Delete(c.Name)
	}

	entry := memoryEntry{value: c.Value}
	switch {
	case c.MaxAge > 0:
		entry.expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		entry.expires = c.Expires
	}

	m.mu.Lock()
	m.cookies[c.Name] = entry
	m.mu.Unlock()

	return nil
}

// Delete removes the named cookie.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	delete(m.cookies, name)
	m.mu.Unlock()

	return nil
}
