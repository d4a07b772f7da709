// Package x_recover turns panics in handlers and background goroutines into
// logged errors.
package x_recover

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"

	"github.com/nats-io/nats.go/micro"
	"github.com/rs/zerolog"
	"github.com/rskv-p/xtrie/pkg/x_log"
)

// OnPanic, when set, is called after every recovered panic.
var OnPanic func(label string, recovered any)

var (
	mu     sync.RWMutex
	custom *zerolog.Logger
)

// SetLogger replaces the logger used for recovered panics. nil restores
// the global one.
func SetLogger(l *zerolog.Logger) {
	mu.Lock()
	custom = l
	mu.Unlock()
}

func logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if custom != nil {
		return *custom
	}
	return x_log.New("recover")
}

func report(label string, recovered any, data any) {
	l := logger()

	ev := l.Error().Str("label", label).Interface("panic", recovered)
	if data != nil {
		ev = ev.Str("context", fmt.Sprintf("%+v", data))
	}
	ev.Str("stack", string(debug.Stack())).Msg("panic recovered")

	if OnPanic != nil {
		OnPanic(label, recovered)
	}
}

// Safe runs fn and reports a panic instead of propagating it.
// It returns true when fn panicked.
func Safe(label string, fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			report(label, r, nil)
			panicked = true
		}
	}()
	fn()
	return false
}

// Go runs fn on a new goroutine under Safe.
func Go(label string, fn func()) {
	go Safe(label, fn)
}

// Func is a context-aware function that may panic.
type Func func(ctx context.Context) error

// Wrap converts a panic inside f into an error.
func Wrap(label string, f Func) Func {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				report(label, r, nil)
				err = fmt.Errorf("panic recovered in %s: %v", label, r)
			}
		}()
		return f(ctx)
	}
}

// Handler wraps a NATS micro handler. A panic is answered with a 500
// service error so the caller does not wait for its timeout.
func Handler(label string, next micro.Handler) micro.Handler {
	return micro.HandlerFunc(func(req micro.Request) {
		defer func() {
			if r := recover(); r != nil {
				report(label, r, req.Subject())
				_ = req.Error(strconv.Itoa(http.StatusInternalServerError), "internal error", nil)
			}
		}()
		next.Handle(req)
	})
}
