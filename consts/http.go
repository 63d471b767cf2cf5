package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

// Methods lists every request method a route may be declared for.
var Methods = []string{
	MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete,
	MethodHead, MethodOptions, MethodConnect, MethodTrace,
}

const (
	HTTP  = "http"
	HTTPS = "https"
	HTTP1 = "HTTP/1.1"

	ProtocolTCP = "tcp"

	HTTPBadRequest      = "HTTP/1.1 400 Bad Request\r\n\r\n"
	HTTPBadMethod       = "HTTP/1.1 405 Method Not Allowed\r\n\r\n"
	HTTPPayloadTooLarge = "HTTP/1.1 413 Request Entity Too Large\r\nConnection: close\r\n\r\n"

	CRLF            = "\r\n"
	SchemeDelimiter = "://"
	Localhost       = "localhost"
)

const (
	RuneColon       = ':'
	RuneNewLine     = '\n'
	RuneSingleSpace = ' '
	RuneFwdSlash    = '/'
	RuneQuestion    = '?'
)
