package rmvc

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rohanthewiz/rmvc/consts"
)

// Request is the read side of an exchange as seen by handler mappings,
// handlers and views.
type Request interface {
	Body() []byte
	Cookie(name string) (*Cookie, bool)
	Header(string) string
	Host() string
	Method() string
	Path() string
	Query() string
	QueryParam(string) string
	Scheme() string
}

// request represents the HTTP request of one exchange.
type request struct {
	scheme string
	host   string
	method string
	path   string
	query  string

	headers []Header
	body    []byte

	queryArgs   url.Values
	parsedQuery bool
}

// NewRequest builds an in-memory request, parsing rawURL the same way the server does.
func NewRequest(method string, rawURL string, headers []Header, body []byte) Request {
	req := &request{
		method:  strings.ToUpper(method),
		headers: headers,
		body:    body,
	}
	req.scheme, req.host, req.path, req.query = parseURL(rawURL, URLOptions{})
	return req
}

// Body returns the raw request body.
func (req *request) Body() []byte {
	return req.body
}

// Cookie returns the named cookie sent with the request.
func (req *request) Cookie(name string) (*Cookie, bool) {
	line := req.Header(consts.HeaderCookie)
	if line == "" {
		return nil, false
	}

	cookies, err := http.ParseCookie(line)
	if err != nil {
		return nil, false
	}

	for _, c := range cookies {
		if c.Name == name {
			return newCookieFromStd(c), true
		}
	}
	return nil, false
}

// Header returns the header value for the given key.
// Keys are matched case-insensitively.
func (req *request) Header(key string) string {
	for _, header := range req.headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value
		}
	}

	return ""
}

// Host returns the requested host.
func (req *request) Host() string {
	return req.host
}

// Method returns the request method.
func (req *request) Method() string {
	return req.method
}

// Path returns the requested path.
func (req *request) Path() string {
	return req.path
}

// Query returns the raw query string, without the question mark.
func (req *request) Query() string {
	return req.query
}

// QueryParam returns the first value of the named query parameter.
func (req *request) QueryParam(name string) string {
	if !req.parsedQuery {
		req.parsedQuery = true
		req.queryArgs, _ = url.ParseQuery(req.query)
	}
	return req.queryArgs.Get(name)
}

// Scheme returns either `http`, `https` or an empty string.
func (req *request) Scheme() string {
	return req.scheme
}

// reset clears the request for reuse on a kept-alive connection.
func (req *request) reset() {
	req.scheme, req.host, req.method, req.path, req.query = "", "", "", "", ""
	req.headers = req.headers[:0]
	req.body = req.body[:0]
	req.queryArgs = nil
	req.parsedQuery = false
}
