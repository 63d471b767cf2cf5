package rmvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// Dispatch outcomes, recorded as the "outcome" metric attribute.
const (
	OutcomeOK              = "ok"
	OutcomeNotInitialized  = "not_initialized"
	OutcomeRouteNotFound   = "route_not_found"
	OutcomeAdapterNotFound = "adapter_not_found"
	OutcomeHandlerFailed   = "handler_failed"
	OutcomeRenderFailed    = "render_failed"
	OutcomePanic           = "panic"
)

// Dispatcher is the front controller. It owns an ordered list of handler
// mappings and an ordered list of handler adapters.
//
// Setup (AddHandlerMapping, AddHandlerAdapter, Initialize) happens once on a
// single goroutine. After Initialize returns nil, Dispatch may be called from
// any number of goroutines.
type Dispatcher struct {
	mappings []HandlerMapping
	adapters []HandlerAdapter

	setupDone   bool
	initialized bool

	logger        *slog.Logger
	recoverPanics bool
	tracer        trace.Tracer
	requests      metric.Int64Counter
	duration      metric.Float64Histogram
}

// NewDispatcher creates a dispatcher in its setup phase.
func NewDispatcher(opts ...Option) *Dispatcher {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dispatcher{
		logger:        o.Logger,
		recoverPanics: o.RecoverPanics,
		tracer:        o.TracerProvider.Tracer(InstrumentationName),
	}

	meter := o.MeterProvider.Meter(InstrumentationName)

	var err error
	d.requests, err = meter.Int64Counter("rmvc.dispatch.requests",
		metric.WithDescription("Dispatched requests by outcome"),
		metric.WithUnit("{request}"))
	if err != nil {
		d.logger.Warn("dispatch counter unavailable", "error", err)
		d.requests = noop.Int64Counter{}
	}

	d.duration, err = meter.Float64Histogram("rmvc.dispatch.duration",
		metric.WithDescription("Time spent resolving, invoking and rendering a request"),
		metric.WithUnit("ms"))
	if err != nil {
		d.logger.Warn("dispatch histogram unavailable", "error", err)
		d.duration = noop.Float64Histogram{}
	}

	return d
}

// AddHandlerMapping appends mappings. Mappings are consulted in the order added.
func (d *Dispatcher) AddHandlerMapping(mappings ...HandlerMapping) error {
	if d.setupDone {
		return fmt.Errorf("add handler mapping: %w", ErrAlreadyInitialized)
	}
	d.mappings = append(d.mappings, mappings...)
	return nil
}

// AddHandlerAdapter appends adapters. Adapters are consulted in the order added.
func (d *Dispatcher) AddHandlerAdapter(adapters ...HandlerAdapter) error {
	if d.setupDone {
		return fmt.Errorf("add handler adapter: %w", ErrAlreadyInitialized)
	}
	d.adapters = append(d.adapters, adapters...)
	return nil
}

// Initialize initializes every handler mapping in order and ends setup.
// The first failure aborts setup; the dispatcher then never serves.
func (d *Dispatcher) Initialize() error {
	if d.setupDone {
		return fmt.Errorf("initialize dispatcher: %w", ErrAlreadyInitialized)
	}
	d.setupDone = true

	for i, m := range d.mappings {
		if err := m.Initialize(); err != nil {
			return fmt.Errorf("initialize handler mapping %d (%T): %w", i, m, err)
		}
	}

	d.initialized = true
	d.logger.Info("dispatcher initialized", "mappings", len(d.mappings), "adapters", len(d.adapters))
	return nil
}

// Dispatch resolves, invokes and renders one request.
// Any failure is logged once and returned as a *DispatchError.
func (d *Dispatcher) Dispatch(req Request, res Response) error {
	start := time.Now()
	dispatchID := uuid.NewString()

	ctx, span := d.tracer.Start(context.Background(), "rmvc.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method()),
			attribute.String("url.path", req.Path()),
			attribute.String("rmvc.dispatch_id", dispatchID),
		))
	defer span.End()

	outcome, err := d.dispatch(req, res)

	outcomeAttr := metric.WithAttributes(attribute.String("outcome", outcome))
	d.requests.Add(ctx, 1, outcomeAttr)
	d.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, outcomeAttr)

	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	attrs := []any{
		"dispatch_id", dispatchID,
		"method", req.Method(),
		"path", req.Path(),
		"outcome", outcome,
		"error", err.Error(),
	}
	if cause := rootCause(err); cause != err {
		attrs = append(attrs, "cause", cause.Error())
	}
	d.logger.ErrorContext(ctx, "dispatch failed", attrs...)

	return &DispatchError{Message: err.Error()}
}

func (d *Dispatcher) dispatch(req Request, res Response) (outcome string, err error) {
	if d.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				outcome = OutcomePanic
				err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
			}
		}()
	}

	if !d.initialized {
		return OutcomeNotInitialized, ErrNotInitialized
	}

	handler, ok := d.handler(req)
	if !ok {
		return OutcomeRouteNotFound, fmt.Errorf("%w: %s %s", ErrRouteNotFound, req.Method(), req.Path())
	}

	adapter, ok := d.handlerAdapter(handler)
	if !ok {
		return OutcomeAdapterNotFound, fmt.Errorf("%w: %T", ErrAdapterNotFound, handler)
	}

	mav, err := adapter.Handle(handler, req, res)
	if err != nil {
		return OutcomeHandlerFailed, err
	}
	if mav == nil {
		return OutcomeHandlerFailed, ErrNilModelAndView
	}
	if mav.View == nil {
		return OutcomeRenderFailed, ErrNilView
	}

	if err = mav.View.Render(mav.Model, req, res); err != nil {
		return OutcomeRenderFailed, err
	}
	return OutcomeOK, nil
}

// handler returns the first handler any mapping resolves for the request.
func (d *Dispatcher) handler(req Request) (any, bool) {
	for _, m := range d.mappings {
		if h, ok := m.Handler(req); ok {
			return h, true
		}
	}
	return nil, false
}

// handlerAdapter returns the first adapter supporting the handler.
func (d *Dispatcher) handlerAdapter(handler any) (HandlerAdapter, bool) {
	for _, a := range d.adapters {
		if a.Supports(handler) {
			return a, true
		}
	}
	return nil, false
}

// rootCause follows the wrap chain to the innermost error.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
