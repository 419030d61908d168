// internal/store/codec.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// GetJSON decodes the value at key into v. Malformed content is treated
// the same as an absent key: the pages of the storefront are the only
// writers, so a decode failure means a stale or hand-edited record, and
// every reader recovers by falling back to an empty collection. The
// corruption is logged here once instead of at every read site.
func GetJSON(ctx context.Context, kv KVStore, key string, v interface{}) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("store get %q: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Discarding malformed store value")
		return false, nil
	}

	return true, nil
}

// SetJSON encodes v and replaces the value at key.
func SetJSON(ctx context.Context, kv KVStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store encode %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}
	return nil
}
