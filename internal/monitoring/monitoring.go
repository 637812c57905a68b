// Package monitoring reports upstream failures to error tracking.
// Without a DSN the Sentry hub is a no-op and Alert only logs.
package monitoring

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Init configures the global Sentry client. An empty dsn leaves tracking disabled.
func Init(dsn, environment, release string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
}

// Flush waits for buffered events before shutdown.
func Flush() {
	sentry.Flush(5 * time.Second)
}

// Alert logs err and captures it to error tracking.
func Alert(message string, err error, args ...any) {
	evID := sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	attrs := append([]any{"error", err, "event_id", evID}, args...)
	slog.Error(message, attrs...)
}

// RecoverAndAlert reports a recovered panic value.
func RecoverAndAlert(message string, recovered any, args ...any) {
	evID := sentry.CurrentHub().Recover(recovered)
	attrs := append([]any{"panic", recovered, "event_id", evID}, args...)
	slog.Error(message, attrs...)
}
