package hosby

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/hosby/hosby-go/cookiestore"
	"github.com/hosby/hosby-go/httpsign"
	"github.com/hosby/hosby-go/pemutil"
)

// Client dispatches authenticated requests to the Hosby API.
//
// A Client is safe for concurrent use. All state shared between requests
// (the CSRF token and the captured bearer token) is guarded internally.
type Client struct {
	cfg    Config
	base   string // BaseURL without trailing slash
	httpc  *http.Client
	signer httpsign.Signer
	store  cookiestore.Store
	csrf   *tokenManager
	clock  Clock
	logger zerolog.Logger

	bearerMu sync.RWMutex
	bearer   string
}

// New validates the configuration, evaluates the HTTPS policy, and
// builds a client. Construction failures wrap ErrConfig and are fatal;
// the caller must reconstruct with corrected configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.HTTPSMode == "" {
		cfg.HTTPSMode = ModeStrict
	}

	if cfg.CSRFCookieName == "" {
		cfg.CSRFCookieName = DefaultCSRFCookieName
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:    cfg,
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		clock:  SystemClock{},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := cfg.validateConfig(); err != nil {
		return nil, err
	}

	if err := checkPolicy(cfg.BaseURL, cfg.HTTPSMode, cfg.HTTPSExemptHosts, c.logger); err != nil {
		return nil, err
	}

	if c.signer == nil {
		key, err := pemutil.ParseRSAPrivateKey(cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}

		signer, err := httpsign.NewRSASigner(cfg.APIKeyID, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}

		c.signer = signer
	}

	if c.httpc == nil {
		c.httpc = defaultHTTPClient(cfg.Timeout)
	}

	c.csrf = newTokenManager(c.store, cfg.CSRFCookieName, strings.HasPrefix(c.base, "https://"))

	return c, nil
}

// defaultHTTPClient returns a tuned client in case the host application
// does not inject one.
func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Init makes the CSRF token available before the first data request.
// When a cookie store holds a token from an earlier session it is
// adopted without a network call; otherwise the token is fetched from
// the bootstrap endpoint.
//
// Calling Init is optional: the first Request performs the same steps
// lazily.
func (c *Client) Init(ctx context.Context) error {
	if err := c.ensureToken(ctx); err != nil {
		return normalizeError(err)
	}

	return nil
}

// ensureToken adopts or fetches the CSRF token when memory has none.
// There is no single-flight here; see tokenManager.
func (c *Client) ensureToken(ctx context.Context) error {
	if c.csrf.current() != "" {
		return nil
	}

	c.csrf.sync()
	if c.csrf.current() != "" {
		return nil
	}

	return c.fetchToken(ctx)
}

// fetchToken performs the bootstrap call. The request goes through the
// normal dispatch path but is un-scoped and carries no CSRF header, only
// the signature and API-key headers.
func (c *Client) fetchToken(ctx context.Context) error {
	resp, raw, err := c.do(ctx, http.MethodGet, csrfTokenPath, nil, nil, true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrToken, err)
	}

	if !resp.Success {
		return newError(http.StatusInternalServerError, "CSRF token fetch was not successful", ErrToken)
	}

	token := gjson.GetBytes(raw, "data.token")
	if !token.Exists() || token.String() == "" {
		return newError(http.StatusInternalServerError, "CSRF token missing from response data", ErrToken)
	}

	c.csrf.set(token.String())

	return nil
}

// Request dispatches one authenticated API call and returns the decoded
// response envelope. Every failure is returned as a normalized *Error
// wrapping one of the package's sentinel categories.
//
// body is JSON-encoded for non-GET methods when non-nil.
func (c *Client) Request(ctx context.Context, method, path string, params *Params, body any) (*Response, error) {
	if method == "" || path == "" {
		return nil, newError(http.StatusBadRequest, "Method and path are required", ErrValidation)
	}

	if err := c.ensureToken(ctx); err != nil {
		return nil, normalizeError(err)
	}

	c.csrf.sync()

	resp, _, err := c.do(ctx, method, path, params, body, false)
	if err != nil {
		return nil, normalizeError(err)
	}

	return resp, nil
}

// do performs the transport call and normalizes the outcome. bootstrap
// marks the CSRF fetch: un-scoped URL, no CSRF header.
func (c *Client) do(ctx context.Context, method, path string, params *Params, body any, bootstrap bool) (*Response, []byte, error) {
	target := c.buildURL(path, params, bootstrap)

	token := ""
	if !bootstrap {
		token = c.csrf.current()
	}

	var opts *QueryOptions
	if params != nil {
		opts = params.Options
	}

	headers, err := c.buildHeaders(token, c.bearerToken(), opts)
	if err != nil {
		return nil, nil, err
	}

	var reqBody io.Reader
	if body != nil && method != http.MethodGet {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: encode request body: %v", ErrValidation, err)
		}

		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	req.Header = headers

	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, nil, newError(http.StatusInternalServerError, transportMessage(err), errors.Join(ErrTransport, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, newError(http.StatusInternalServerError, err.Error(), errors.Join(ErrTransport, err))
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Str("request_id", headers.Get(HeaderRequestID)).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	// Session-scoped bearer capture: replayed on subsequent calls.
	if auth := resp.Header.Get("Authorization"); auth != "" {
		c.setBearerToken(strings.TrimPrefix(auth, "Bearer "))
	}

	if !bootstrap && !c.cfg.UseSameToken {
		if rotated := resp.Header.Get(HeaderCSRFToken); rotated != "" {
			c.csrf.rotate(rotated)
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, nil, errorFromResponse(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil, newError(http.StatusInternalServerError, "Empty response received", nil)
	}

	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil, newError(http.StatusInternalServerError, fmt.Sprintf("decode response: %v", err), err)
	}

	return &envelope, raw, nil
}

// transportMessage unwraps the url.Error layer the HTTP client adds, so
// the normalized message is the underlying cause ("Network error"), not
// the full operation prefix.
func transportMessage(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err.Error()
	}

	return err.Error()
}

// buildURL assembles the target URL. All paths except the CSRF bootstrap
// are scoped under the project name, and a trailing slash is enforced.
func (c *Client) buildURL(path string, params *Params, bootstrap bool) string {
	var sb strings.Builder
	sb.WriteString(c.base)

	if !bootstrap {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(c.cfg.ProjectName))
	}

	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" {
			continue
		}

		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(segment))
	}

	sb.WriteByte('/')

	if params != nil {
		if query := encodeFilters(params.Filters); query != "" {
			sb.WriteByte('?')
			sb.WriteString(query)
		}
	}

	return sb.String()
}

func (c *Client) bearerToken() string {
	c.bearerMu.RLock()
	defer c.bearerMu.RUnlock()

	return c.bearer
}

func (c *Client) setBearerToken(token string) {
	c.bearerMu.Lock()
	c.bearer = token
	c.bearerMu.Unlock()
}

// Token returns the currently cached CSRF token, or "" before the first
// successful fetch.
func (c *Client) Token() string {
	return c.csrf.current()
}
