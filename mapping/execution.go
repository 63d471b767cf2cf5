package mapping

import (
	"reflect"

	"github.com/rohanthewiz/rmvc"
)

// MethodFunc invokes a declared handler method on its owner instance.
type MethodFunc func(owner any, req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error)

// HandlerExecution binds a handler method to the controller instance that owns it.
// All keys of one controller share the same instance, so controllers must be
// safe for concurrent use.
type HandlerExecution struct {
	ownerType reflect.Type
	owner     any
	method    MethodFunc
	name      string
}

// NewHandlerExecution binds method to owner.
func NewHandlerExecution(owner any, name string, method MethodFunc) *HandlerExecution {
	return &HandlerExecution{
		ownerType: reflect.TypeOf(owner),
		owner:     owner,
		method:    method,
		name:      name,
	}
}

// Invoke calls the bound method. Errors are returned as the method produced them.
func (h *HandlerExecution) Invoke(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	return h.method(h.owner, req, res)
}

// Owner returns the controller instance.
func (h *HandlerExecution) Owner() any {
	return h.owner
}

// OwnerType returns the controller type.
func (h *HandlerExecution) OwnerType() reflect.Type {
	return h.ownerType
}

// Name returns the handler method name, e.g. "app.(*UserController).List".
func (h *HandlerExecution) Name() string {
	return h.name
}

func (h *HandlerExecution) String() string {
	return h.name
}
