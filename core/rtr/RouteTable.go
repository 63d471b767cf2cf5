package rtr

import (
	"fmt"
	"sort"
)

// RouteTable maps handler keys to handlers.
// It is filled during setup and only read afterwards, so lookups take no lock.
type RouteTable[T any] struct {
	routes map[HandlerKey]T
}

// NewRouteTable creates an empty route table.
// It is important to use this function when a new table is needed
func NewRouteTable[T any]() *RouteTable[T] {
	return &RouteTable[T]{
		routes: make(map[HandlerKey]T, 16),
	}
}

// Add registers a handler for the given key.
// An existing entry for the key is overwritten and replaced reports it.
func (rt *RouteTable[T]) Add(key HandlerKey, handler T) (replaced bool) {
	_, replaced = rt.routes[key]
	rt.routes[key] = handler
	return replaced
}

// Lookup finds the handler for the given key.
func (rt *RouteTable[T]) Lookup(key HandlerKey) (T, bool) {
	handler, ok := rt.routes[key]
	return handler, ok
}

// Len returns the number of registered keys.
func (rt *RouteTable[T]) Len() int {
	return len(rt.routes)
}

// Routes lists the table ordered by path, then method.
func (rt *RouteTable[T]) Routes() (routes []RouteList) {
	routes = make([]RouteList, 0, len(rt.routes))
	for k, h := range rt.routes {
		routes = append(routes, RouteList{Method: k.Method, Path: k.Path, HandlerRef: handlerRef(h)})
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return
}

func handlerRef(h any) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}
