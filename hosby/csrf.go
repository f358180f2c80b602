package hosby

import (
	"net/http"
	"sync"

	"github.com/hosby/hosby-go/cookiestore"
)

const (
	// DefaultCSRFCookieName is the cookie the CSRF token is mirrored
	// into when a cookie store is injected.
	DefaultCSRFCookieName = "hosby_csrf"

	// csrfTokenPath is the un-scoped bootstrap endpoint the token is
	// fetched from.
	csrfTokenPath = "api/secure/csrf-token"

	// csrfCookieMaxAge is seven days, in seconds.
	csrfCookieMaxAge = 7 * 24 * 60 * 60
)

// tokenManager owns the CSRF token for one client instance.
//
// Once populated, the in-memory value is the source of truth for this
// process and is pushed to the cookie store on every sync. An empty
// in-memory value adopts the cookie instead, which is how a second
// process sharing the store picks up an existing session. Without a
// store the token lives in memory only.
//
// There is deliberately no single-flight on the initial fetch:
// concurrent first requests may each fetch a token, and the last write
// wins. The fetch is idempotent, so this only costs a duplicate round
// trip.
type tokenManager struct {
	mu     sync.Mutex
	token  string
	store  cookiestore.Store
	name   string
	secure bool
}

func newTokenManager(store cookiestore.Store, name string, secure bool) *tokenManager {
	if name == "" {
		name = DefaultCSRFCookieName
	}

	return &tokenManager{store: store, name: name, secure: secure}
}

// current returns the cached token, or "" when uninitialized.
func (m *tokenManager) current() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token
}

// sync reconciles memory and cookie before a request. Memory wins when
// populated; the cookie is only adopted into an empty memory slot.
func (m *tokenManager) sync() {
	if m.store == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.store.Get(m.name)

	if m.token == "" {
		if ok {
			m.token = stored
		}

		return
	}

	if !ok || stored != m.token {
		m.store.Set(m.cookie(m.token))
	}
}

// set stores a freshly fetched token in memory and mirrors it to the
// cookie store.
func (m *tokenManager) set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	if m.store != nil {
		m.store.Set(m.cookie(token))
	}
}

// rotate replaces the token when a response carried a rotation header
// with a different value.
func (m *tokenManager) rotate(token string) {
	if token == "" {
		return
	}

	m.mu.Lock()
	changed := token != m.token
	m.mu.Unlock()

	if changed {
		m.set(token)
	}
}

func (m *tokenManager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		MaxAge:   csrfCookieMaxAge,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
