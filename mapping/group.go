package mapping

import (
	"path"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
)

// Group registers routes on a manual mapping under a common prefix (e.g. /api/v1).
// Groups can be nested.
type Group struct {
	prefix  string
	mapping *ManualHandlerMapping
}

// Group creates a group whose routes are prefixed with prefix.
func (m *ManualHandlerMapping) Group(prefix string) *Group {
	return &Group{
		prefix:  path.Join("/", prefix),
		mapping: m,
	}
}

// Group creates a sub-group with an additional prefix.
func (g *Group) Group(prefix string) *Group {
	return &Group{
		prefix:  path.Join(g.prefix, prefix),
		mapping: g.mapping,
	}
}

// Prefix returns the full prefix of the group.
func (g *Group) Prefix() string {
	return g.prefix
}

// Get registers a GET route with the group prefix
func (g *Group) Get(route string, fn rmvc.HandlerFunc) {
	g.addRoute(consts.MethodGet, route, fn)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(route string, fn rmvc.HandlerFunc) {
	g.addRoute(consts.MethodPost, route, fn)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(route string, fn rmvc.HandlerFunc) {
	g.addRoute(consts.MethodPut, route, fn)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(route string, fn rmvc.HandlerFunc) {
	g.addRoute(consts.MethodPatch, route, fn)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(route string, fn rmvc.HandlerFunc) {
	g.addRoute(consts.MethodDelete, route, fn)
}

func (g *Group) addRoute(method string, route string, fn rmvc.HandlerFunc) {
	g.mapping.Handle(method, path.Join(g.prefix, route), fn)
}
