package rmvc

import "errors"

// Dispatch errors.
var (
	// ErrRouteNotFound indicates no handler mapping resolved the request.
	ErrRouteNotFound = errors.New("rmvc: no handler for request")

	// ErrAdapterNotFound indicates no handler adapter supports the resolved handler.
	ErrAdapterNotFound = errors.New("rmvc: no handler adapter for handler")

	// ErrNilModelAndView indicates a handler returned neither a result nor an error.
	ErrNilModelAndView = errors.New("rmvc: handler returned a nil ModelAndView")

	// ErrNilView indicates a result carried no view to render it.
	ErrNilView = errors.New("rmvc: ModelAndView has no view")

	// ErrHandlerPanic indicates the handler panicked.
	ErrHandlerPanic = errors.New("rmvc: handler panic")
)

// Setup errors.
var (
	// ErrInvalidRouteDeclaration indicates a declared route is unusable,
	// most commonly because it declares no HTTP methods.
	ErrInvalidRouteDeclaration = errors.New("rmvc: invalid route declaration")

	// ErrHandlerConstruction indicates a controller could not be constructed.
	ErrHandlerConstruction = errors.New("rmvc: handler construction failed")

	// ErrAlreadyInitialized indicates setup was attempted a second time.
	ErrAlreadyInitialized = errors.New("rmvc: already initialized")

	// ErrNotInitialized indicates a request arrived before setup completed.
	ErrNotInitialized = errors.New("rmvc: dispatcher not initialized")
)

// DispatchError is the single failure shape the Dispatcher returns to its host.
// It carries the message of whatever failed, and nothing else: hosts that need
// to tell failures apart can only inspect the message.
type DispatchError struct {
	Message string
}

func (e *DispatchError) Error() string {
	return e.Message
}
