package kv

import (
	"context"
	"encoding/json"
)

// Store is the key-value port all persistent state goes through. Backends
// are interchangeable per deployment (memory, bolt file, sqlite, redis); the
// stores built on top never see which one is wired in.
//
// Get reports absence as (nil, false, nil); an error means the backend
// itself failed, not that the key is missing.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON reads key and unmarshals it into out. A missing key or a corrupt
// payload both report (false, nil): readers treat undecodable state the same
// as absent state.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

// PutJSON marshals v and writes it under key.
func PutJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, raw)
}
