package rmvc

import (
	"strings"

	"github.com/rohanthewiz/rmvc/consts"
)

// URLOptions controls how request URLs are normalised before route lookup.
type URLOptions struct {
	// KeepTrailingSlashes stops "/users/" from being looked up as "/users".
	KeepTrailingSlashes bool
}

// parseURL parses a URL and returns the scheme, host, path and query.
// The URL is expected to be in the format "scheme://host/path?query"
// Though we could have used the standard URL package we wanted to maintain fine control.
func parseURL(url string, urlOpts URLOptions) (scheme string, host string, path string, query string) {
	schemeEndPos := strings.Index(url, consts.SchemeDelimiter)
	if schemeEndPos != -1 {
		scheme = url[:schemeEndPos]
		url = url[schemeEndPos+len(consts.SchemeDelimiter):]

		pathStartPos := strings.IndexByte(url, consts.RuneFwdSlash)
		if pathStartPos != -1 {
			host = url[:pathStartPos]
			url = url[pathStartPos:]
		} else {
			host, url = url, ""
		}
	}

	queryPos := strings.IndexByte(url, consts.RuneQuestion)
	if queryPos != -1 {
		path = url[:queryPos]
		query = url[queryPos+1:]
	} else {
		path = url
	}

	// FIXUPS

	if lnPath := len(path); lnPath == 0 {
		path = "/"
	} else if !urlOpts.KeepTrailingSlashes && lnPath > 1 && strings.HasSuffix(path, "/") {
		path = path[:lnPath-1]
	}

	if host == "" {
		host = consts.Localhost
	}

	return
}
