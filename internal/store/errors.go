package store

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindTransport covers lost connections, timeouts and server-side
	// aborts. The same statement may succeed if sent again.
	KindTransport
	// KindConstraint is an integrity constraint violation (SQLSTATE 23).
	KindConstraint
	// KindQuery is any other error reported by the server.
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindConstraint:
		return "constraint"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Error is returned by Handle for every failed execution.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func newError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: Classify(err),
		Err:  err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Retryable() bool {
	return e.Kind == KindTransport
}

// SQLState returns the server error code, or "" when the failure never
// reached the server.
func (e *Error) SQLState() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return KindConstraint
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code),
			pgerrcode.IsTransactionRollback(pgErr.Code):
			return KindTransport
		default:
			return KindQuery
		}
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) ||
		pgconn.SafeToRetry(err) {
		return KindTransport
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransport
	}

	return KindUnknown
}
