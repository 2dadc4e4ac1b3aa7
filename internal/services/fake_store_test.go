package services

import (
	"context"

	"github.com/adanyl0v/go-tarefas/internal/store"
)

type execCall struct {
	statement string
	args      []any
}

type fakeStore struct {
	result *store.Result
	err    error
	calls  []execCall
}

func (f *fakeStore) Execute(_ context.Context, statement string, args ...any) (*store.Result, error) {
	f.calls = append(f.calls, execCall{statement: statement, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeStore) Ping(context.Context) error { return f.err }

func ptr[T any](v T) *T { return &v }
