package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/adanyl0v/go-tarefas/internal/store"
)

// memoryStore understands the statements issued by the task and user
// services and keeps rows per table, assigning ids like SERIAL does.
type memoryStore struct {
	mu     sync.Mutex
	nextID map[string]int64
	tables map[string]map[int64]store.Record
}

var errNotNull = &store.Error{Op: "query", Kind: store.KindConstraint, Err: errors.New("null value violates not-null constraint")}

var tableColumns = map[string][]string{
	"tb_task": {"title", "description", "status", "user_id"},
	"tb_user": {"name", "email"},
}

var requiredColumns = map[string]string{
	"title": "tb_task",
	"name":  "tb_user",
	"email": "tb_user",
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID: make(map[string]int64),
		tables: map[string]map[int64]store.Record{
			"tb_task": {},
			"tb_user": {},
		},
	}
}

func (m *memoryStore) Execute(_ context.Context, statement string, args ...any) (*store.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stmt := strings.TrimSpace(statement)
	table := tableOf(stmt)
	rows := m.tables[table]
	columns := tableColumns[table]

	switch {
	case strings.HasPrefix(stmt, "SELECT"):
		ids := make([]int64, 0, len(rows))
		for id := range rows {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		out := make([]store.Record, 0, len(ids))
		for _, id := range ids {
			out = append(out, copyRecord(rows[id]))
		}
		return &store.Result{Rows: out, RowCount: int64(len(out))}, nil

	case strings.HasPrefix(stmt, "INSERT"):
		rec, err := recordFromArgs(columns, args)
		if err != nil {
			return nil, err
		}
		m.nextID[table]++
		rec["id"] = int32(m.nextID[table])
		rows[m.nextID[table]] = rec
		return &store.Result{Rows: []store.Record{copyRecord(rec)}, RowCount: 1}, nil

	case strings.HasPrefix(stmt, "UPDATE"):
		id := args[len(args)-1].(int64)
		if _, ok := rows[id]; !ok {
			return &store.Result{Rows: []store.Record{}}, nil
		}
		rec, err := recordFromArgs(columns, args[:len(args)-1])
		if err != nil {
			return nil, err
		}
		rec["id"] = int32(id)
		rows[id] = rec
		return &store.Result{Rows: []store.Record{copyRecord(rec)}, RowCount: 1}, nil

	case strings.HasPrefix(stmt, "DELETE"):
		id := args[0].(int64)
		if _, ok := rows[id]; !ok {
			return &store.Result{Rows: []store.Record{}}, nil
		}
		delete(rows, id)
		return &store.Result{Rows: []store.Record{{"id": int32(id)}}, RowCount: 1}, nil
	}

	return nil, &store.Error{Op: "query", Kind: store.KindQuery, Err: errors.New("unsupported statement")}
}

func (m *memoryStore) Ping(context.Context) error { return nil }

func tableOf(stmt string) string {
	for table := range tableColumns {
		if strings.Contains(stmt, table) {
			return table
		}
	}
	return ""
}

// recordFromArgs dereferences pointer args the way pgx encodes them:
// nil pointers become NULL.
func recordFromArgs(columns []string, args []any) (store.Record, error) {
	rec := make(store.Record, len(columns))
	for i, column := range columns {
		var v any
		switch a := args[i].(type) {
		case *string:
			if a != nil {
				v = *a
			}
		case *int64:
			if a != nil {
				v = *a
			}
		default:
			v = a
		}
		if _, required := requiredColumns[column]; required && v == nil {
			return nil, errNotNull
		}
		rec[column] = v
	}
	return rec, nil
}

func copyRecord(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
