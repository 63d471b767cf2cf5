package rtr

// RouteList represents a registered route for debugging and inspection purposes.
//
// Fields:
//   - Method: HTTP method (GET, POST, etc.) from consts package
//   - Path: The exact request path (e.g., "/api/users")
//   - HandlerRef: String representation of the handler (for debugging)
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}
