package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"stylehive/internal/storage"
)

// loadDocument decodes the JSON document under key into dst.
// It returns false without touching dst when the key is absent.
func loadDocument(ctx context.Context, store storage.Store, key string, dst any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// saveDocument replaces the document under key with the JSON encoding of src.
func saveDocument(ctx context.Context, store storage.Store, key string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
