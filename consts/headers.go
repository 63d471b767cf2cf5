package consts

const (
	HeaderContentType      = "Content-Type"
	HeaderContentLength    = "Content-Length"
	HeaderTransferEncoding = "Transfer-Encoding"
	HeaderLocation         = "Location"
	HeaderCookie           = "Cookie"
	HeaderSetCookie        = "Set-Cookie"
	HeaderHost             = "Host"
	HeaderUserAgent        = "User-Agent"
)
