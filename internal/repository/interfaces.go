package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SessionValue is one persisted client-side setting.
type SessionValue struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// SessionValueRepo is the local key/value store that survives between runs.
type SessionValueRepo interface {
	Get(ctx context.Context, key string) (*SessionValue, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*SessionValue, error)
}
