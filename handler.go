package rmvc

// HandlerFunc is the handler shape registered by hand: a plain function
// producing a result for the request.
type HandlerFunc func(req Request, res Response) (*ModelAndView, error)

// HandlerMapping resolves a request to a handler.
// Initialize runs once during setup; Handler must be safe for concurrent use afterwards.
type HandlerMapping interface {
	Initialize() error
	Handler(req Request) (handler any, ok bool)
}

// HandlerAdapter invokes one shape of handler.
// Supports must be a side-effect free test of the handler's type.
type HandlerAdapter interface {
	Supports(handler any) bool
	Handle(handler any, req Request, res Response) (*ModelAndView, error)
}

// View renders a model into the response.
// A view sets the response content type before writing the body.
type View interface {
	Render(model map[string]any, req Request, res Response) error
}
