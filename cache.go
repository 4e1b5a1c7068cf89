package folio

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

// DocumentCache is an in-memory copy of the reconciled portfolio document with TTL.
type DocumentCache struct {
	mu       sync.RWMutex
	doc      content.Document
	loaded   bool
	fetched  time.Time
	ttl      time.Duration
	store    *Store
	id       string
	defaults content.Document
	logger   echo.Logger
}

// NewDocumentCache creates a DocumentCache for document id backed by s.
// Missing documents resolve to defaults.
func NewDocumentCache(s *Store, id string, defaults content.Document, ttl time.Duration, logger echo.Logger) *DocumentCache {
	return &DocumentCache{store: s, id: id, defaults: content.Clone(defaults), ttl: ttl, logger: logger}
}

func (c *DocumentCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *DocumentCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

// Set replaces the cached document, typically right after a save.
func (c *DocumentCache) Set(d content.Document) {
	c.mu.Lock()
	c.doc = content.Clone(d)
	c.loaded = true
	c.fetched = time.Now()
	c.mu.Unlock()
}

func (c *DocumentCache) load(ctx context.Context) error {
	if c.valid() {
		return nil
	}
	raw, err := c.store.GetDocument(ctx, c.id)
	switch {
	case errors.Is(err, ErrNotFound):
		c.logger.Infof("document %q not found, serving defaults", c.id)
		raw = nil
	case err != nil:
		return err
	}
	c.doc = content.ReconcileJSON(raw, c.defaults)
	c.loaded = true
	c.fetched = time.Now()
	return nil
}

// Document returns the reconciled document, loading it from the store when the
// cached copy is missing or stale. Store errors are returned and not cached.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *DocumentCache) Document(ctx context.Context) (content.Document, error) {
	c.mu.RLock()
	if c.valid() {
		d := content.Clone(c.doc)
		c.mu.RUnlock()
		return d, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return content.Document{}, err
	}
	return content.Clone(c.doc), nil
}

// Defaults returns a copy of the default document.
func (c *DocumentCache) Defaults() content.Document {
	return content.Clone(c.defaults)
}
