// Package store provides the durable key-value persistence layer. Each
// collection of application state lives in its own named slot; values
// round-trip through JSON. A missing or unreadable slot is not an error
// for callers: the typed Load helper falls back to the supplied default.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"pos-service/pkg/config"
)

// Adapter is the contract the engine persists through. Load reports
// whether the key was present; Save overwrites the slot wholesale.
type Adapter interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Open builds the adapter selected by the store configuration.
func Open(cfg *config.Config) (Adapter, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return NewPostgres(cfg)
	case "redis":
		return NewRedis(cfg)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Load reads key through a and decodes it into a value of type T. A
// missing key, a read failure or a corrupt payload all fall back to def.
func Load[T any](ctx context.Context, a Adapter, key string, def T) T {
	raw, ok, err := a.Load(ctx, key)
	if err != nil || !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Save encodes value as JSON and writes it under key.
func Save[T any](ctx context.Context, a Adapter, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	return a.Save(ctx, key, raw)
}
