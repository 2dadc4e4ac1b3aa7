package models

import (
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed record")

func int64Field(rec map[string]any, column string) (int64, error) {
	v, err := nullInt64Field(rec, column)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%w: column %q is null", ErrMalformedRecord, column)
	}
	return *v, nil
}

func nullInt64Field(rec map[string]any, column string) (*int64, error) {
	raw, ok := rec[column]
	if !ok {
		return nil, fmt.Errorf("%w: column %q missing", ErrMalformedRecord, column)
	}

	var v int64
	switch n := raw.(type) {
	case nil:
		return nil, nil
	case int64:
		v = n
	case int32:
		v = int64(n)
	case int16:
		v = int64(n)
	case int:
		v = int64(n)
	default:
		return nil, fmt.Errorf("%w: column %q has type %T", ErrMalformedRecord, column, raw)
	}
	return &v, nil
}

func stringField(rec map[string]any, column string) (string, error) {
	v, err := nullStringField(rec, column)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func nullStringField(rec map[string]any, column string) (*string, error) {
	raw, ok := rec[column]
	if !ok {
		return nil, fmt.Errorf("%w: column %q missing", ErrMalformedRecord, column)
	}

	switch s := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: column %q has type %T", ErrMalformedRecord, column, raw)
	}
}
