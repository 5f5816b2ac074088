package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// CachedRender is a rendered flag image held for a limited time.
type CachedRender struct {
	PNG      []byte `json:"png"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BlurHash string `json:"blurhash"`
}

// GetRender returns the cached render for key, or ErrNotFound on a miss or
// after the entry's TTL has elapsed.
func (s *Store) GetRender(ctx context.Context, key string) (*CachedRender, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cached CachedRender
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(renderPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get render: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// PutRender caches r under key. A ttl <= 0 stores the entry without expiry.
func (s *Store) PutRender(ctx context.Context, key string, r *CachedRender, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal render: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(renderPrefix+key), data)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}
