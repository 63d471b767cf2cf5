// Package telemetry installs the OpenTelemetry SDK with OTLP gRPC exporters.
package telemetry

import (
	"context"
	"errors"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// EndpointEnv is the standard exporter endpoint variable. Telemetry is off when it is unset.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// ShutdownFunc flushes and stops whatever Setup started.
type ShutdownFunc func(context.Context) error

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(EndpointEnv) != ""
}

// Setup installs global tracer, meter and logger providers exporting over OTLP gRPC.
// When no endpoint is configured it installs nothing and returns a no-op shutdown.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	var shutdownFuncs []ShutdownFunc

	shutdown := func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	if !Enabled() {
		return shutdown, nil
	}

	// Undo what was started if a later step fails
	fail := func(err error) (ShutdownFunc, error) {
		return shutdown, errors.Join(err, shutdown(ctx))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return fail(err)
	}
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExporter))
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return fail(err)
	}
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(
		sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(15*time.Second)),
	))
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	logExporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return fail(err)
	}
	loggerProvider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)))
	shutdownFuncs = append(shutdownFuncs, loggerProvider.Shutdown)
	global.SetLoggerProvider(loggerProvider)

	return shutdown, nil
}
