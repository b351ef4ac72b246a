package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/cephalon/ordis/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ItemIndex implements domain.ItemIndex on a single Redis hash. The item and
// riven catalogs each get their own namespace so a weapon that appears in both
// resolves independently.
//
// Key schema:
//
//	index:{namespace} - hash of normalized name -> marketplace slug
type ItemIndex struct {
	rdb *redis.Client
	key string
}

// NewItemIndex creates an ItemIndex in the given namespace ("item" or
// "riven") backed by the given Client.
func NewItemIndex(c *Client, namespace string) *ItemIndex {
	return &ItemIndex{
		rdb: c.Underlying(),
		key: "index:" + namespace,
	}
}

// Get resolves a normalized name to its marketplace slug. It returns
// domain.ErrNotFound when the name is not in the index.
func (ix *ItemIndex) Get(ctx context.Context, name string) (string, error) {
	slug, err := ix.rdb.HGet(ctx, ix.key, name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("redis: get %s from %s: %w", name, ix.key, err)
	}
	return slug, nil
}

// Put stores a batch of entries in one HSET, overwriting existing mappings.
func (ix *ItemIndex) Put(ctx context.Context, entries []domain.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	fields := make([]any, 0, len(entries)*2)
	for _, e := range entries {
		fields = append(fields, e.Name, e.Slug)
	}

	if err := ix.rdb.HSet(ctx, ix.key, fields...).Err(); err != nil {
		return fmt.Errorf("redis: put %d entries into %s: %w", len(entries), ix.key, err)
	}
	return nil
}

// Count returns the number of entries in the index.
func (ix *ItemIndex) Count(ctx context.Context) (int64, error) {
	n, err := ix.rdb.HLen(ctx, ix.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis: count %s: %w", ix.key, err)
	}
	return n, nil
}

// Compile-time interface check.
var _ domain.ItemIndex = (*ItemIndex)(nil)
