package rmvc

import (
	"io"
	"net/http"
	"strings"

	"github.com/rohanthewiz/rmvc/consts"
)

// Response is the sink a view renders into.
type Response interface {
	io.Writer
	io.StringWriter
	AddHeader(key string, value string)
	Body() []byte
	Header(string) string
	Headers() []Header
	SetBody([]byte)
	SetCookie(*Cookie)
	SetHeader(key string, value string)
	SetStatus(int)
	Status() int
}

// response represents the HTTP response of one exchange.
type response struct {
	body    []byte
	headers []Header
	status  uint16
}

// NewResponse creates an empty in-memory response with status 200.
func NewResponse() Response {
	return &response{
		body:    make([]byte, 0, 1024),
		headers: make([]Header, 0, 8),
		status:  http.StatusOK,
	}
}

// AddHeader appends a header even if one with the same key exists.
func (res *response) AddHeader(key string, value string) {
	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// Body returns the response body.
func (res *response) Body() []byte {
	return res.body
}

// Header returns the first header value for the given key.
func (res *response) Header(key string) string {
	for _, header := range res.headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value
		}
	}

	return ""
}

// Headers returns all headers in the order they were set.
func (res *response) Headers() []Header {
	return res.headers
}

// SetBody replaces the response body with the new contents.
func (res *response) SetBody(body []byte) {
	res.body = body
}

// SetCookie adds a Set-Cookie header for the cookie.
func (res *response) SetCookie(c *Cookie) {
	res.AddHeader(consts.HeaderSetCookie, c.ToStdCookie().String())
}

// SetHeader sets the header value for the given key.
func (res *response) SetHeader(key string, value string) {
	for i, header := range res.headers {
		if strings.EqualFold(header.Key, key) {
			res.headers[i].Value = value
			return
		}
	}

	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// SetStatus sets the HTTP status code.
func (res *response) SetStatus(status int) {
	res.status = uint16(status)
}

// Status returns the HTTP status code.
func (res *response) Status() int {
	return int(res.status)
}

// Write implements the io.Writer interface.
func (res *response) Write(body []byte) (int, error) {
	res.body = append(res.body, body...)
	return len(body), nil
}

// WriteString implements the io.StringWriter interface.
func (res *response) WriteString(body string) (int, error) {
	res.body = append(res.body, body...)
	return len(body), nil
}

// reset discards everything written so far.
func (res *response) reset() {
	res.body = res.body[:0]
	res.headers = res.headers[:0]
	res.status = http.StatusOK
}
