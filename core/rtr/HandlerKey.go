package rtr

import (
	"strings"

	"github.com/rohanthewiz/rmvc/consts"
)

// HandlerKey is the identity of a route: a request path and an HTTP method.
// It is comparable, so two keys are equal exactly when both fields are equal.
type HandlerKey struct {
	Path   string
	Method string
}

// NewHandlerKey builds a key, upper-casing the method.
func NewHandlerKey(path string, method string) HandlerKey {
	return HandlerKey{Path: path, Method: strings.ToUpper(method)}
}

func (k HandlerKey) String() string {
	return k.Method + " " + k.Path
}

// IsValidMethod returns true if the given string is a valid HTTP request method.
func IsValidMethod(method string) bool {
	switch method {
	case consts.MethodGet, consts.MethodHead, consts.MethodPost, consts.MethodPut,
		consts.MethodDelete, consts.MethodConnect, consts.MethodOptions, consts.MethodTrace, consts.MethodPatch:
		return true
	default:
		return false
	}
}
