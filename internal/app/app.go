// Package app is the users demo: a SQLite backed user API served through
// manually registered handlers and declared controllers.
package app

import (
	"log/slog"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/adapter"
	"github.com/rohanthewiz/rmvc/mapping"
)

// NewDispatcher builds and initializes the demo dispatcher.
// Manual handlers are consulted before declared ones.
func NewDispatcher(store *UserStore, logger *slog.Logger, opts ...rmvc.Option) (*rmvc.Dispatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	manual := mapping.NewManual().WithLogger(logger)
	registerManual(manual)

	catalog := mapping.NewCatalog()
	catalog.Register(Controllers(store)...)
	declarative := mapping.NewDeclarative(catalog, Namespace).WithLogger(logger)

	d := rmvc.NewDispatcher(append([]rmvc.Option{rmvc.WithLogger(logger)}, opts...)...)
	if err := d.AddHandlerMapping(manual, declarative); err != nil {
		return nil, err
	}
	if err := d.AddHandlerAdapter(adapter.NewManual(), adapter.NewExecution()); err != nil {
		return nil, err
	}
	if err := d.Initialize(); err != nil {
		return nil, err
	}
	return d, nil
}
