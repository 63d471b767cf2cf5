// Package adapter holds the handler adapters for the handler shapes the
// mapping package produces.
package adapter

import (
	"fmt"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/mapping"
)

// ManualHandlerAdapter invokes handlers registered as plain functions.
type ManualHandlerAdapter struct{}

// NewManual creates a ManualHandlerAdapter.
func NewManual() *ManualHandlerAdapter {
	return &ManualHandlerAdapter{}
}

// Supports reports whether handler is a function handler.
func (a *ManualHandlerAdapter) Supports(handler any) bool {
	switch handler.(type) {
	case rmvc.HandlerFunc, func(rmvc.Request, rmvc.Response) (*rmvc.ModelAndView, error):
		return true
	}
	return false
}

// Handle calls the function handler.
func (a *ManualHandlerAdapter) Handle(handler any, req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	var fn rmvc.HandlerFunc

	switch h := handler.(type) {
	case rmvc.HandlerFunc:
		fn = h
	case func(rmvc.Request, rmvc.Response) (*rmvc.ModelAndView, error):
		fn = h
	default:
		return nil, fmt.Errorf("%w: manual adapter cannot handle %T", rmvc.ErrAdapterNotFound, handler)
	}

	if fn == nil {
		return nil, fmt.Errorf("%w: nil handler function", rmvc.ErrAdapterNotFound)
	}
	return result(fn(req, res))
}

// ExecutionHandlerAdapter invokes declared controller methods.
type ExecutionHandlerAdapter struct{}

// NewExecution creates an ExecutionHandlerAdapter.
func NewExecution() *ExecutionHandlerAdapter {
	return &ExecutionHandlerAdapter{}
}

// Supports reports whether handler is a *mapping.HandlerExecution.
func (a *ExecutionHandlerAdapter) Supports(handler any) bool {
	_, ok := handler.(*mapping.HandlerExecution)
	return ok
}

// Handle invokes the bound controller method.
func (a *ExecutionHandlerAdapter) Handle(handler any, req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	exec, ok := handler.(*mapping.HandlerExecution)
	if !ok || exec == nil {
		return nil, fmt.Errorf("%w: execution adapter cannot handle %T", rmvc.ErrAdapterNotFound, handler)
	}
	return result(exec.Invoke(req, res))
}

// result turns a (nil, nil) handler return into ErrNilModelAndView.
func result(mav *rmvc.ModelAndView, err error) (*rmvc.ModelAndView, error) {
	if err != nil {
		return nil, err
	}
	if mav == nil {
		return nil, rmvc.ErrNilModelAndView
	}
	return mav, nil
}
