package mapping

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/core/rtr"
)

// DeclarativeHandlerMapping serves the routes of every controller found in a
// catalog under its root namespaces.
type DeclarativeHandlerMapping struct {
	catalog *Catalog
	roots   []string
	logger  *slog.Logger

	routes      *rtr.RouteTable[*HandlerExecution]
	initialized bool
}

// NewDeclarative creates a mapping over the controllers of catalog beneath roots.
// A nil catalog means DefaultCatalog.
func NewDeclarative(catalog *Catalog, roots ...string) *DeclarativeHandlerMapping {
	if catalog == nil {
		catalog = DefaultCatalog
	}

	return &DeclarativeHandlerMapping{
		catalog: catalog,
		roots:   roots,
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for registration records.
func (m *DeclarativeHandlerMapping) WithLogger(logger *slog.Logger) *DeclarativeHandlerMapping {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Initialize scans the catalog, constructs one instance per controller type
// and builds the route table. The table is published only if every
// controller and route is valid.
func (m *DeclarativeHandlerMapping) Initialize() error {
	if m.initialized {
		return fmt.Errorf("declarative handler mapping: %w", rmvc.ErrAlreadyInitialized)
	}

	routes := rtr.NewRouteTable[*HandlerExecution]()
	owners := make(map[reflect.Type]any)
	seen := make(map[*Controller]bool)

	for _, root := range m.roots {
		for _, ctrl := range m.catalog.Scan(root) {
			if seen[ctrl] {
				continue
			}
			seen[ctrl] = true

			if err := m.register(routes, owners, ctrl); err != nil {
				return err
			}
		}
	}

	m.routes = routes
	m.initialized = true
	return nil
}

func (m *DeclarativeHandlerMapping) register(routes *rtr.RouteTable[*HandlerExecution], owners map[reflect.Type]any, ctrl *Controller) error {
	if ctrl.Type == nil {
		return fmt.Errorf("%w: controller in %q has no type", rmvc.ErrInvalidRouteDeclaration, ctrl.Namespace)
	}

	// Validate every route before constructing anything
	for _, route := range ctrl.Routes {
		if err := validateRoute(ctrl, route); err != nil {
			return err
		}
	}

	owner, ok := owners[ctrl.Type]
	if !ok {
		var err error
		if owner, err = construct(ctrl); err != nil {
			return err
		}
		owners[ctrl.Type] = owner
	}

	for _, route := range ctrl.Routes {
		exec := &HandlerExecution{
			ownerType: ctrl.Type,
			owner:     owner,
			method:    route.invoke,
			name:      route.Name,
		}

		for _, method := range route.Methods {
			key := rtr.NewHandlerKey(route.Path, method)
			if routes.Add(key, exec) {
				m.logger.Warn("route overwritten", "path", key.Path, "method", key.Method, "controller", ctrl.Type.String())
			}
			m.logger.Info("route registered", "path", key.Path, "method", key.Method,
				"controller", ctrl.Type.String(), "handler", route.Name)
		}
	}
	return nil
}

func validateRoute(ctrl *Controller, route Route) error {
	switch {
	case route.invoke == nil:
		return fmt.Errorf("%w: %s %q has no handler", rmvc.ErrInvalidRouteDeclaration, ctrl.Type, route.Path)
	case route.Path == "":
		return fmt.Errorf("%w: %s %s has an empty path", rmvc.ErrInvalidRouteDeclaration, ctrl.Type, route.Name)
	case len(route.Methods) == 0:
		return fmt.Errorf("%w: %s %q declares no HTTP methods", rmvc.ErrInvalidRouteDeclaration, ctrl.Type, route.Path)
	case route.ownerType != ctrl.Type:
		return fmt.Errorf("%w: route %q belongs to %s, not %s", rmvc.ErrInvalidRouteDeclaration, route.Path, route.ownerType, ctrl.Type)
	}

	for _, method := range route.Methods {
		if key := rtr.NewHandlerKey(route.Path, method); !rtr.IsValidMethod(key.Method) {
			return fmt.Errorf("%w: %s %q has unknown method %q", rmvc.ErrInvalidRouteDeclaration, ctrl.Type, route.Path, method)
		}
	}
	return nil
}

// construct builds the controller instance.
func construct(ctrl *Controller) (owner any, err error) {
	defer func() {
		if r := recover(); r != nil {
			owner = nil
			err = fmt.Errorf("%w: %s: constructor panicked: %v", rmvc.ErrHandlerConstruction, ctrl.Type, r)
		}
	}()

	switch {
	case ctrl.New != nil:
		owner, err = ctrl.New()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", rmvc.ErrHandlerConstruction, ctrl.Type, err)
		}
		if isNil(owner) {
			return nil, fmt.Errorf("%w: %s: constructor returned nil", rmvc.ErrHandlerConstruction, ctrl.Type)
		}

	case ctrl.Type.Kind() == reflect.Pointer && ctrl.Type.Elem().Kind() == reflect.Struct:
		owner = reflect.New(ctrl.Type.Elem()).Interface()

	case ctrl.Type.Kind() == reflect.Struct:
		owner = reflect.New(ctrl.Type).Elem().Interface()

	default:
		return nil, fmt.Errorf("%w: %s cannot be built without a constructor", rmvc.ErrHandlerConstruction, ctrl.Type)
	}

	if initializer, ok := owner.(Initializer); ok {
		if err = initializer.Init(); err != nil {
			return nil, fmt.Errorf("%w: %s: init: %w", rmvc.ErrHandlerConstruction, ctrl.Type, err)
		}
	}
	return owner, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Handler returns the *HandlerExecution registered for the request's path and method.
func (m *DeclarativeHandlerMapping) Handler(req rmvc.Request) (any, bool) {
	if !m.initialized {
		return nil, false
	}

	exec, ok := m.routes.Lookup(rtr.NewHandlerKey(req.Path(), req.Method()))
	if !ok {
		return nil, false
	}
	return exec, true
}

// Routes lists the registered keys, ordered by path then method.
func (m *DeclarativeHandlerMapping) Routes() []rtr.RouteList {
	if m.routes == nil {
		return nil
	}
	return m.routes.Routes()
}
