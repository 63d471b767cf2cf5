package rmvc_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/mapping"
)

func TestHTTPHandler(t *testing.T) {
	h := rmvc.HTTPHandler(newDispatcher(t, func(m *mapping.ManualHandlerMapping) {
		routes(m)
		m.Get("/cookie", func(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
			res.SetCookie(&rmvc.Cookie{Name: "a", Value: "1"})
			res.SetCookie(&rmvc.Cookie{Name: "b", Value: "2"})
			c, _ := req.Cookie("session")
			return text(c.Value + " " + req.QueryParam("q")), nil
		})
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/", nil))
	assert.Equal(t, rec.Code, 200)
	assert.Equal(t, rec.Header().Get(consts.HeaderContentType), "application/json;charset=UTF-8")
	assert.Equal(t, rec.Body.String(), `{"id":1}`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ping")))
	assert.Equal(t, rec.Body.String(), "ping")

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cookie?q=search", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "xyz"})
	h.ServeHTTP(rec, req)
	assert.Equal(t, rec.Body.String(), "xyz search")
	assert.Equal(t, len(rec.Header().Values(consts.HeaderSetCookie)), 2)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, rec.Code, 500)
	assert.Equal(t, rec.Body.String(), "lookup failed\n")
	assert.Equal(t, rec.Header().Get("X-Partial"), "")
}
