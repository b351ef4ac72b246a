package domain

import (
	"context"
	"strings"
)

// NormalizeName canonicalizes an item name for index keys: lowercase with all
// spaces stripped, so "Maiming Strike" and "maimingstrike" hit the same entry.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// IndexEntry is one normalized-name → marketplace-slug mapping.
type IndexEntry struct {
	Name string // lowercased, spaces stripped
	Slug string // marketplace url_name
}

// ItemIndex is the local lookup store mapping normalized item names to
// marketplace identifiers. Writes are last-write-wins; no transactional
// guarantees are required.
type ItemIndex interface {
	// Get resolves a normalized name to its marketplace slug. Returns
	// ErrNotFound when the name has never been synced.
	Get(ctx context.Context, name string) (string, error)
	// Put stores a batch of entries, overwriting existing mappings.
	Put(ctx context.Context, entries []IndexEntry) error
	// Count returns the number of entries currently stored.
	Count(ctx context.Context) (int64, error)
}
