package output

import (
	"context"

	"ecm-connector/internal/domain"
)

// VersionFetcher resolves the version ids of a base document.
type VersionFetcher func(ctx context.Context, id string) ([]string, error)

// DocumentCache interface - Output port
// Document snapshots and version lists fetched during one bulk enumeration.
// Entries are never invalidated individually; callers clear the whole cache
// at the start of each enumeration. Implementations must be thread-safe.
type DocumentCache interface {
	// Clear empties both the snapshot map and the version-list map.
	Clear()

	// Get returns the cached snapshot for id.
	Get(id string) (*domain.Document, bool)

	// Put stores a snapshot, overwriting any previous one for id.
	Put(id string, doc *domain.Document)

	// GetOrFetchVersions returns the cached version list for id, calling
	// fetch and storing its result on a miss. A failed fetch is not cached.
	GetOrFetchVersions(ctx context.Context, id string, fetch VersionFetcher) ([]string, error)
}
