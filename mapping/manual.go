package mapping

import (
	"fmt"
	"log/slog"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/core/rtr"
)

// ManualHandlerMapping holds handlers registered in code, by key.
// Registration must finish before Initialize; the table is read-only afterwards.
type ManualHandlerMapping struct {
	routes *rtr.RouteTable[any]
	frozen bool
	logger *slog.Logger
}

// NewManual creates an empty manual mapping.
func NewManual() *ManualHandlerMapping {
	return &ManualHandlerMapping{
		routes: rtr.NewRouteTable[any](),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for registration records.
func (m *ManualHandlerMapping) WithLogger(logger *slog.Logger) *ManualHandlerMapping {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Register maps key to handler, replacing any earlier handler for the key.
// The key method is upper-cased to match request methods.
// Registering after Initialize is a programming error and panics.
func (m *ManualHandlerMapping) Register(key rtr.HandlerKey, handler any) {
	key = rtr.NewHandlerKey(key.Path, key.Method)
	if m.frozen {
		panic(fmt.Sprintf("mapping: register %s after initialize", key))
	}

	if m.routes.Add(key, handler) {
		m.logger.Warn("route overwritten", "path", key.Path, "method", key.Method)
	}
	m.logger.Debug("route registered", "path", key.Path, "method", key.Method, "handler", fmt.Sprintf("%T", handler))
}

// Handle registers fn for the given method and path.
func (m *ManualHandlerMapping) Handle(method string, path string, fn rmvc.HandlerFunc) {
	m.Register(rtr.NewHandlerKey(path, method), fn)
}

// Get registers fn for GET requests to path.
func (m *ManualHandlerMapping) Get(path string, fn rmvc.HandlerFunc) {
	m.Handle(consts.MethodGet, path, fn)
}

// Post registers fn for POST requests to path.
func (m *ManualHandlerMapping) Post(path string, fn rmvc.HandlerFunc) {
	m.Handle(consts.MethodPost, path, fn)
}

// Put registers fn for PUT requests to path.
func (m *ManualHandlerMapping) Put(path string, fn rmvc.HandlerFunc) {
	m.Handle(consts.MethodPut, path, fn)
}

// Patch registers fn for PATCH requests to path.
func (m *ManualHandlerMapping) Patch(path string, fn rmvc.HandlerFunc) {
	m.Handle(consts.MethodPatch, path, fn)
}

// Delete registers fn for DELETE requests to path.
func (m *ManualHandlerMapping) Delete(path string, fn rmvc.HandlerFunc) {
	m.Handle(consts.MethodDelete, path, fn)
}

// Initialize ends registration. Calling it again has no effect.
func (m *ManualHandlerMapping) Initialize() error {
	if !m.frozen {
		m.frozen = true
		m.logger.Info("manual handler mapping initialized", "routes", m.routes.Len())
	}
	return nil
}

// Handler returns the handler registered for the request's path and method.
func (m *ManualHandlerMapping) Handler(req rmvc.Request) (any, bool) {
	return m.routes.Lookup(rtr.NewHandlerKey(req.Path(), req.Method()))
}

// Routes lists the registered keys, ordered by path then method.
func (m *ManualHandlerMapping) Routes() []rtr.RouteList {
	return m.routes.Routes()
}
