package rmvc

import (
	"io"
	"net/http"
	"strings"

	"github.com/rohanthewiz/rmvc/consts"
)

// HTTPHandler exposes the dispatcher as a net/http Handler, so it can sit
// behind the standard library server, otelhttp or an HTTP/3 listener.
func HTTPHandler(d *Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req := &request{
			method: r.Method,
			host:   r.Host,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   body,
			scheme: consts.HTTP,
		}
		if r.TLS != nil {
			req.scheme = consts.HTTPS
		}
		if req.path == "" {
			req.path = "/"
		} else if len(req.path) > 1 && strings.HasSuffix(req.path, "/") {
			req.path = req.path[:len(req.path)-1]
		}

		for key, values := range r.Header {
			for _, v := range values {
				req.headers = append(req.headers, Header{Key: key, Value: v})
			}
		}

		res := &response{status: http.StatusOK}

		if err = d.Dispatch(req, res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for _, h := range res.headers {
			w.Header().Add(h.Key, h.Value)
		}
		w.WriteHeader(res.Status())
		_, _ = w.Write(res.body)
	})
}
