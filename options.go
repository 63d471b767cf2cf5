package rmvc

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the logger, tracer and meter used by rmvc.
const InstrumentationName = "github.com/rohanthewiz/rmvc"

// Options holds Dispatcher configuration.
type Options struct {
	// Logger receives setup information and one error record per failed dispatch.
	Logger *slog.Logger

	// RecoverPanics turns a panicking handler or view into a dispatch failure.
	RecoverPanics bool

	// TracerProvider supplies the tracer for dispatch spans.
	TracerProvider trace.TracerProvider

	// MeterProvider supplies the meter for dispatch counters.
	MeterProvider metric.MeterProvider
}

// Option modifies Options.
type Option func(*Options)

// DefaultOptions returns the configuration used by NewDispatcher.
// Telemetry goes to the global OpenTelemetry providers, which are no-ops
// until the process installs real ones.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.Default(),
		RecoverPanics:  true,
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithOTelLogger sends dispatcher logs to the global OpenTelemetry LoggerProvider.
func WithOTelLogger() Option {
	return func(o *Options) {
		o.Logger = otelslog.NewLogger(InstrumentationName)
	}
}

// WithRecoverPanics sets whether handler panics are recovered.
func WithRecoverPanics(enabled bool) Option {
	return func(o *Options) {
		o.RecoverPanics = enabled
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider sets the meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}
