package testing

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// Background returns a plain context for helpers that have no *testing.T.
func Background() context.Context {
	return context.Background()
}

// LogRecorder collects formatted log lines.
type LogRecorder struct {
	mu    sync.Mutex
	lines []string
}

// NewLogRecorder returns a recorder and a logger writing to it at the given
// verbosity.
func NewLogRecorder(verbosity int) (*LogRecorder, logr.Logger) {
	r := &LogRecorder{}
	logger := funcr.New(func(prefix, args string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.lines = append(r.lines, strings.TrimSpace(prefix+" "+args))
	}, funcr.Options{Verbosity: verbosity})
	return r, logger
}

// Lines returns a copy of the recorded lines.
func (r *LogRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Contains reports whether any recorded line contains substr.
func (r *LogRecorder) Contains(substr string) bool {
	for _, l := range r.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
