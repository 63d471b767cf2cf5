package rmvc_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/adapter"
	"github.com/rohanthewiz/rmvc/mapping"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// newServer builds an initialized dispatcher over a manual mapping filled by
// routes and wraps it in a Server.
func newServer(t *testing.T, routes func(m *mapping.ManualHandlerMapping), opts ...rmvc.Option) *rmvc.Server {
	t.Helper()
	return rmvc.NewServer(newDispatcher(t, routes, opts...), rmvc.ServerOptions{Logger: quiet})
}

func newDispatcher(t *testing.T, routes func(m *mapping.ManualHandlerMapping), opts ...rmvc.Option) *rmvc.Dispatcher {
	t.Helper()

	manual := mapping.NewManual().WithLogger(quiet)
	routes(manual)

	d := rmvc.NewDispatcher(append([]rmvc.Option{rmvc.WithLogger(quiet)}, opts...)...)
	assert.Nil(t, d.AddHandlerMapping(manual))
	assert.Nil(t, d.AddHandlerAdapter(adapter.NewManual(), adapter.NewExecution()))
	assert.Nil(t, d.Initialize())
	return d
}

// recordingHandler keeps every log record so tests can count them.
type recordingHandler struct {
	lock    sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

// errors returns the error level records.
func (h *recordingHandler) errors() []slog.Record {
	h.lock.Lock()
	defer h.lock.Unlock()

	var out []slog.Record
	for _, r := range h.records {
		if r.Level >= slog.LevelError {
			out = append(out, r)
		}
	}
	return out
}

// attr returns the string form of the named attribute of a record.
func attr(r slog.Record, key string) string {
	var value string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}
