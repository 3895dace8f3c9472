// Package kv is the durable key-value store behind the counter and settings
// modules. Values are strings; typed helpers encode ints and bools.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	apperrors "pushpal/internal/platform/errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = fmt.Errorf("key %w", apperrors.ErrNotFound)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all values or none of them.
	SetMany(ctx context.Context, values map[string]string) error
	Close() error
}

// IntOr reads key as an int. It always returns a usable value: def when the
// key is missing or unreadable. The error is nil for a missing key and
// describes the fallback otherwise.
func IntOr(ctx context.Context, s Store, key string, def int) (int, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}

// BoolOr is IntOr for booleans.
func BoolOr(ctx context.Context, s Store, key string, def bool) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func SetInt(ctx context.Context, s Store, key string, v int) error {
	return s.Set(ctx, key, strconv.Itoa(v))
}

func SetBool(ctx context.Context, s Store, key string, v bool) error {
	return s.Set(ctx, key, strconv.FormatBool(v))
}

// Batch collects encoded values for one SetMany call.
type Batch map[string]string

func (b Batch) Int(key string, v int) Batch {
	b[key] = strconv.Itoa(v)
	return b
}

func (b Batch) Bool(key string, v bool) Batch {
	b[key] = strconv.FormatBool(v)
	return b
}
