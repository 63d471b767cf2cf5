package mapping

import (
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/rohanthewiz/rmvc"
)

// Route declares one handler method of a controller and the HTTP methods it answers.
type Route struct {
	Path    string
	Methods []string
	Name    string

	ownerType reflect.Type
	invoke    MethodFunc
}

// Handle declares a route served by fn, usually a method expression such as
// (*UserController).List. At least one HTTP method is required; a route
// without methods fails setup rather than matching everything.
func Handle[T any](path string, fn func(T, rmvc.Request, rmvc.Response) (*rmvc.ModelAndView, error), methods ...string) Route {
	r := Route{
		Path:      path,
		Methods:   methods,
		ownerType: reflect.TypeFor[T](),
	}

	if fn != nil {
		r.Name = funcName(fn)
		r.invoke = func(owner any, req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
			return fn(owner.(T), req, res)
		}
	}
	return r
}

// funcName returns the short name of a function, e.g. "app.(*UserController).List".
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if slash := strings.LastIndexByte(name, '/'); slash >= 0 {
		name = name[slash+1:]
	}
	return name
}

// Controller marks a type as a handler owner within a namespace.
type Controller struct {
	// Namespace is the scan unit, by convention the Go import path of the
	// package declaring the controller.
	Namespace string

	Type reflect.Type

	// New constructs the instance. When nil, a zero value of Type is used.
	New func() (any, error)

	Routes []Route
}

// Declare marks T as a controller constructed from its zero value.
func Declare[T any](namespace string, routes ...Route) Controller {
	return DeclareWith[T](namespace, nil, routes...)
}

// DeclareWith marks T as a controller built by ctor.
func DeclareWith[T any](namespace string, ctor func() (T, error), routes ...Route) Controller {
	c := Controller{
		Namespace: namespace,
		Type:      reflect.TypeFor[T](),
		Routes:    routes,
	}

	if ctor != nil {
		c.New = func() (any, error) {
			owner, err := ctor()
			return owner, err
		}
	}
	return c
}

// Initializer is implemented by controllers needing work after construction.
type Initializer interface {
	Init() error
}

// Catalog is the set of declared controllers a DeclarativeHandlerMapping scans.
type Catalog struct {
	lock        sync.Mutex
	controllers []*Controller
}

// DefaultCatalog receives the controllers passed to the package level Register.
var DefaultCatalog = NewCatalog()

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Register adds controllers to the catalog.
// Each controller gets a single instance that serves all of its routes
// concurrently.
func (c *Catalog) Register(controllers ...Controller) {
	c.lock.Lock()
	defer c.lock.Unlock()

	for i := range controllers {
		ctrl := controllers[i]
		c.controllers = append(c.controllers, &ctrl)
	}
}

// Scan returns, in registration order, the controllers whose namespace is
// root or lies beneath it. An empty root matches every controller.
func (c *Catalog) Scan(root string) []*Controller {
	c.lock.Lock()
	defer c.lock.Unlock()

	root = strings.TrimSuffix(root, "/")

	var found []*Controller
	for _, ctrl := range c.controllers {
		if root == "" || ctrl.Namespace == root || strings.HasPrefix(ctrl.Namespace, root+"/") {
			found = append(found, ctrl)
		}
	}
	return found
}

// Register adds controllers to DefaultCatalog, typically from an init function.
func Register(controllers ...Controller) {
	DefaultCatalog.Register(controllers...)
}
