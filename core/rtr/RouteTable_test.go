package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/core/rtr"
)

func TestHandlerKeyEquality(t *testing.T) {
	a := rtr.NewHandlerKey("/users", "get")
	b := rtr.HandlerKey{Path: "/users", Method: consts.MethodGet}

	assert.Equal(t, a, b)
	assert.Equal(t, a.String(), "GET /users")
	assert.NotEqual(t, a, rtr.NewHandlerKey("/users", consts.MethodPost))
	assert.NotEqual(t, a, rtr.NewHandlerKey("/users/", consts.MethodGet))

	seen := map[rtr.HandlerKey]int{a: 1}
	assert.Equal(t, seen[b], 1)
}

func TestStatic(t *testing.T) {
	r := rtr.NewRouteTable[string]()
	r.Add(rtr.NewHandlerKey("/hello", consts.MethodGet), "Hello")
	r.Add(rtr.NewHandlerKey("/world", consts.MethodGet), "World")
	r.Add(rtr.NewHandlerKey("/world", consts.MethodPost), "Post World")

	data, ok := r.Lookup(rtr.NewHandlerKey("/hello", consts.MethodGet))
	assert.True(t, ok)
	assert.Equal(t, data, "Hello")

	data, ok = r.Lookup(rtr.NewHandlerKey("/world", consts.MethodPost))
	assert.True(t, ok)
	assert.Equal(t, data, "Post World")

	notFound := []rtr.HandlerKey{
		rtr.NewHandlerKey("", consts.MethodGet),
		rtr.NewHandlerKey("/404", consts.MethodGet),
		rtr.NewHandlerKey("/hell", consts.MethodGet),
		rtr.NewHandlerKey("/helloo", consts.MethodGet),
		rtr.NewHandlerKey("/hello", consts.MethodPost),
		rtr.NewHandlerKey("/hello", consts.MethodDelete),
	}

	for _, key := range notFound {
		data, ok = r.Lookup(key)
		assert.False(t, ok)
		assert.Equal(t, data, "")
	}
}

func TestAddOverwrites(t *testing.T) {
	r := rtr.NewRouteTable[string]()
	key := rtr.NewHandlerKey("/blog", consts.MethodGet)

	assert.False(t, r.Add(key, "first"))
	assert.True(t, r.Add(key, "second"))
	assert.Equal(t, r.Len(), 1)

	data, _ := r.Lookup(key)
	assert.Equal(t, data, "second")
}

func TestRoutesSorted(t *testing.T) {
	r := rtr.NewRouteTable[string]()
	r.Add(rtr.NewHandlerKey("/b", consts.MethodPost), "b-post")
	r.Add(rtr.NewHandlerKey("/a", consts.MethodPut), "a-put")
	r.Add(rtr.NewHandlerKey("/b", consts.MethodGet), "b-get")

	routes := r.Routes()
	assert.Equal(t, len(routes), 3)
	assert.Equal(t, routes[0].Path, "/a")
	assert.Equal(t, routes[1].Method, consts.MethodGet)
	assert.Equal(t, routes[2].Method, consts.MethodPost)
	assert.Equal(t, routes[0].HandlerRef, "string")
}

func TestIsValidMethod(t *testing.T) {
	for _, m := range consts.Methods {
		assert.True(t, rtr.IsValidMethod(m))
	}
	assert.False(t, rtr.IsValidMethod("get"))
	assert.False(t, rtr.IsValidMethod("BAD-METHOD"))
	assert.False(t, rtr.IsValidMethod(""))
}
