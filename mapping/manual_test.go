package mapping_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/core/rtr"
	"github.com/rohanthewiz/rmvc/mapping"
)

func named(name string) rmvc.HandlerFunc {
	return func(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
		return rmvc.NewModelAndView(nopView{}).AddObject("name", name), nil
	}
}

// call resolves and invokes the manual handler for method and url.
func call(t *testing.T, m *mapping.ManualHandlerMapping, method, url string) (string, bool) {
	t.Helper()

	req := rmvc.NewRequest(method, url, nil, nil)
	h, ok := m.Handler(req)
	if !ok {
		return "", false
	}

	fn, ok := h.(rmvc.HandlerFunc)
	assert.True(t, ok)
	mav, err := fn(req, rmvc.NewResponse())
	assert.Nil(t, err)
	return mav.Object("name").(string), true
}

func TestManualRegister(t *testing.T) {
	m := mapping.NewManual().WithLogger(quiet)
	m.Get("/users", named("list"))
	m.Post("/users", named("create"))
	m.Put("/user", named("replace"))
	m.Patch("/user", named("update"))
	m.Delete("/user", named("delete"))
	m.Register(rtr.NewHandlerKey("/raw", "options"), named("raw"))
	assert.Nil(t, m.Initialize())

	tests := []struct {
		method string
		url    string
		name   string
	}{
		{consts.MethodGet, "/users", "list"},
		{consts.MethodPost, "/users", "create"},
		{consts.MethodPut, "/user", "replace"},
		{consts.MethodPatch, "/user", "update"},
		{consts.MethodDelete, "/user", "delete"},
		{consts.MethodOptions, "/raw", "raw"},
	}

	for _, tt := range tests {
		name, ok := call(t, m, tt.method, tt.url)
		assert.True(t, ok)
		assert.Equal(t, name, tt.name)
	}

	_, ok := call(t, m, consts.MethodGet, "/user")
	assert.False(t, ok)
	assert.Equal(t, len(m.Routes()), 6)
}

func TestManualLastWriterWins(t *testing.T) {
	m := mapping.NewManual().WithLogger(quiet)
	m.Get("/users", named("first"))
	m.Get("/users", named("second"))

	name, ok := call(t, m, consts.MethodGet, "/users")
	assert.True(t, ok)
	assert.Equal(t, name, "second")
	assert.Equal(t, len(m.Routes()), 1)
}

func TestManualRegisterNormalizesMethod(t *testing.T) {
	m := mapping.NewManual().WithLogger(quiet)
	m.Register(rtr.HandlerKey{Path: "/x", Method: "get"}, named("x"))

	name, ok := call(t, m, consts.MethodGet, "/x")
	assert.True(t, ok)
	assert.Equal(t, name, "x")
	assert.Equal(t, m.Routes()[0].Method, consts.MethodGet)
}

func TestManualFrozenAfterInitialize(t *testing.T) {
	m := mapping.NewManual().WithLogger(quiet)
	m.Get("/users", named("list"))
	assert.Nil(t, m.Initialize())
	assert.Nil(t, m.Initialize())

	defer func() {
		r := recover()
		assert.True(t, r != nil)
		assert.Contains(t, r.(string), "GET /late")
	}()

	m.Get("/late", named("late"))
}
