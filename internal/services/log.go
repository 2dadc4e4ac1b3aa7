package services

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/store"
)

// storeErrorEvent attaches the error and, for store failures, its
// classification to e.
func storeErrorEvent(e *zerolog.Event, err error) *zerolog.Event {
	e = e.Err(err)

	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		e = e.Str("kind", storeErr.Kind.String()).
			Bool("retryable", storeErr.Retryable())
		if code := storeErr.SQLState(); code != "" {
			e = e.Str("sqlstate", code)
		}
	}
	return e
}
