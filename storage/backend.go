package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

// defaultHTTPTimeout bounds backend network calls that were not given a
// tighter deadline by the caller's context.
const defaultHTTPTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func ensureLogger(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}

// wrapNetErr surfaces context-deadline failures as the distinct timeout
// kind so callers can tell a slow service from a broken one. Backends
// are not idempotent-safe to retry silently, so the classification is
// the caller's signal, not a retry trigger.
func wrapNetErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, interfaces.ErrRequestTimeout, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
