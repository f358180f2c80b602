package hosby

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hosby/hosby-go/cookiestore"
	"github.com/hosby/hosby-go/httpsign"
)

// Option configures a Client. Collaborators are injected through
// options rather than discovered from the environment, so substitution
// in tests happens through the public contract.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. The caller owns
// timeout and retry behavior of an injected client; Config.Timeout is
// only applied to the default one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = hc
	}
}

// WithCookieStore injects the cookie capability used to mirror the CSRF
// token. Without one, the token lives in client memory only.
func WithCookieStore(store cookiestore.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithSigner replaces the RSA signer built from Config.PrivateKey.
func WithSigner(s httpsign.Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithClock sets the clock used for signature timestamps.
func WithClock(clock Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithLogger sets the structured logger. The default discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
