package consts

const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
	MIMEJSON        = "application/json"
	MIMEHTML        = "text/html"

	// MIMEJSONUTF8 is the content type written by JSON views.
	MIMEJSONUTF8      = "application/json;charset=UTF-8"
	MIMETextPlainUTF8 = "text/plain; charset=utf-8"
	MIMEHTMLUTF8      = "text/html; charset=utf-8"
)
