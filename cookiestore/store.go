// Package cookiestore defines the cookie capability injected into the
// Hosby client.
//
// The client never sniffs its runtime environment for an ambient cookie
// facility. Hosts that want the CSRF token mirrored into cookies (so
// separate processes or tabs sharing the store can adopt it) inject a
// Store at construction time; hosts that do not simply leave it nil and
// the token lives in client memory only.
package cookiestore

import "net/http"

// Store persists named cookies. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value of the named cookie and whether it exists
	// and has not expired.
	Get(name string) (value string, ok bool)

	// Set stores the cookie, overwriting any cookie with the same name.
	// A negative Max-Age removes the cookie.
	Set(c *http.Cookie) error

	// Delete removes the named cookie. Deleting a cookie that does not
	// exist is not an error.
	Delete(name string) error
}
