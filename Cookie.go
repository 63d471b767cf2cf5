package rmvc

import (
	"net/http"
	"time"
)

// SameSiteMode represents the SameSite cookie attribute for CSRF protection.
// It decides whether a browser attaches the cookie to cross-site requests.
type SameSiteMode int

const (
	// SameSiteDefaultMode leaves the SameSite attribute unset (browser-dependent behavior)
	SameSiteDefaultMode SameSiteMode = iota + 1
	// SameSiteLaxMode allows cookies on top-level navigation (recommended default)
	SameSiteLaxMode
	// SameSiteStrictMode prevents cookies on all cross-site requests
	SameSiteStrictMode
	// SameSiteNoneMode allows cookies on all cross-site requests (requires Secure=true)
	SameSiteNoneMode
)

// Cookie represents an HTTP cookie with all standard attributes.
// Handlers set it on a Response; it converts to a net/http.Cookie for the header value.
type Cookie struct {
	// Name is the cookie name (required)
	Name string

	// Value is the cookie value and may be empty
	Value string

	// Path is the URL prefix the cookie is sent for (empty leaves the browser default)
	Path string

	// Domain is the host the cookie is scoped to (empty means the request host)
	Domain string

	// Expires is the absolute expiry. The zero value makes a session cookie.
	Expires time.Time

	// MaxAge is the lifetime in seconds (0 = unspecified, <0 = delete now)
	MaxAge int

	// Secure restricts the cookie to HTTPS
	Secure bool

	// HttpOnly hides the cookie from scripts
	HttpOnly bool

	// SameSite controls cross-site sending
	SameSite SameSiteMode
}

// ToStdCookie converts the Cookie to a standard net/http.Cookie.
func (c *Cookie) ToStdCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}

	switch c.SameSite {
	case SameSiteLaxMode:
		cookie.SameSite = http.SameSiteLaxMode
	case SameSiteStrictMode:
		cookie.SameSite = http.SameSiteStrictMode
	case SameSiteNoneMode:
		cookie.SameSite = http.SameSiteNoneMode
	default:
		cookie.SameSite = http.SameSiteDefaultMode
	}

	return cookie
}

// newCookieFromStd creates a Cookie from a standard net/http.Cookie.
// Used internally for parsing cookies from request headers.
func newCookieFromStd(c *http.Cookie) *Cookie {
	cookie := &Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}

	switch c.SameSite {
	case http.SameSiteLaxMode:
		cookie.SameSite = SameSiteLaxMode
	case http.SameSiteStrictMode:
		cookie.SameSite = SameSiteStrictMode
	case http.SameSiteNoneMode:
		cookie.SameSite = SameSiteNoneMode
	default:
		cookie.SameSite = SameSiteDefaultMode
	}

	return cookie
}
