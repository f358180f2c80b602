package cookiestore

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// Jar is a Store backed by net/http/cookiejar, scoped to a single site
// URL. It applies standard cookie domain semantics via the public suffix
// list, so it can be shared with an *http.Client pointed at the same
// site.
type Jar struct {
	jar  *cookiejar.Jar
	site *url.URL
}

// NewJar creates a Jar scoped to siteURL.
func NewJar(siteURL string) (*Jar, error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("cookiestore: invalid site URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("cookiestore: site URL must be absolute: %q", siteURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	return &Jar{jar: jar, site: u}, nil
}

// Get returns the value of the named cookie for the jar's site.
func (j *Jar) Get(name string) (string, bool) {
	for _, c := range j.jar.Cookies(j.site) {
		if c.Name == name {
			return c.Value, true
		}
	}

	return "", false
}

// Set stores the cookie under the jar's site.
func (j *Jar) Set(c *http.Cookie) error {
	j.jar.SetCookies(j.site, []*http.Cookie{c})

	return nil
}

// Delete removes the named cookie by storing an expired replacement.
func (j *Jar) Delete(name string) error {
	j.jar.SetCookies(j.site, []*http.Cookie{{Name: name, MaxAge: -1}})

	return nil
}
