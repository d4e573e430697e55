package memory

import (
	"context"
	"fmt"
	"sync"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Compile-time check to ensure DocumentCache implements DocumentCache interface
var _ output.DocumentCache = (*DocumentCache)(nil)

// DocumentCache struct - Output adapter for the in-memory document cache.
// Holds the snapshots and version lists of one cache epoch. Concurrent misses
// for the same id share a single fetch.
type DocumentCache struct {
	mu        sync.RWMutex
	documents map[string]*domain.Document
	versions  map[string][]string
	epoch     uint64

	fetches singleflight.Group
}

// NewDocumentCache creates an empty document cache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		documents: make(map[string]*domain.Document),
		versions:  make(map[string][]string),
	}
}

// Clear starts a new epoch by dropping all snapshots and version lists.
func (c *DocumentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.documents = make(map[string]*domain.Document)
	c.versions = make(map[string][]string)
	c.epoch++
}

// Get returns the cached snapshot for id.
func (c *DocumentCache) Get(id string) (*domain.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.documents[id]
	return doc, ok
}

// Put stores a snapshot, overwriting any previous one for id.
func (c *DocumentCache) Put(id string, doc *domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.documents[id] = doc
}

// GetOrFetchVersions returns the cached version list for id, calling fetch on
// a miss. Misses are coalesced per epoch and the fetch does not inherit the
// cancellation of the caller that started it, since other callers may join.
// The result is stored only if the epoch did not change while the fetch was
// running.
func (c *DocumentCache) GetOrFetchVersions(ctx context.Context, id string, fetch output.VersionFetcher) ([]string, error) {
	c.mu.RLock()
	versions, ok := c.versions[id]
	epoch := c.epoch
	c.mu.RUnlock()
	if ok {
		return versions, nil
	}

	key := fmt.Sprintf("%d/%s", epoch, id)
	value, err, _ := c.fetches.Do(key, func() (interface{}, error) {
		// another caller may have filled the entry while we waited
		c.mu.RLock()
		cached, ok := c.versions[id]
		current := c.epoch
		c.mu.RUnlock()
		if ok && current == epoch {
			return cached, nil
		}

		fetched, err := fetch(context.WithoutCancel(ctx), id)
		if err != nil {
			return nil, err
		}
		if fetched == nil {
			fetched = []string{}
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.epoch != epoch {
			logrus.Debugf("Cache cleared while fetching versions of %s, not storing", id)
			return fetched, nil
		}
		if cached, ok := c.versions[id]; ok {
			return cached, nil
		}
		c.versions[id] = fetched
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]string), nil
}

// Len returns the number of cached snapshots and version lists.
func (c *DocumentCache) Len() (documents int, versionLists int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.documents), len(c.versions)
}
