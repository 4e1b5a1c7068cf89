package folio

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

func TestDocumentCacheServesDefaultsOnFirstRun(t *testing.T) {
	s := setupTestStore(t)
	c := NewDocumentCache(s, "portfolio", content.Default(), time.Minute, echo.New().Logger)

	doc, err := c.Document(context.Background())
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if doc.Name != content.Default().Name {
		t.Errorf("Name = %q, want default", doc.Name)
	}
}

func TestDocumentCacheReconcilesStoredDocument(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	if err := s.PutDocument(ctx, "portfolio", []byte(`{"userName":"Jane","heroRoles":"oops"}`)); err != nil {
		t.Fatal(err)
	}
	c := NewDocumentCache(s, "portfolio", content.Default(), time.Minute, echo.New().Logger)

	doc, err := c.Document(ctx)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if doc.Name != "Jane" {
		t.Errorf("Name = %q, want Jane", doc.Name)
	}
	if len(doc.HeroRoles) != len(content.Default().HeroRoles) {
		t.Errorf("HeroRoles = %v, want defaults", doc.HeroRoles)
	}
}

func TestDocumentCacheTTLAndInvalidate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := NewDocumentCache(s, "portfolio", content.Default(), time.Hour, echo.New().Logger)

	if _, err := c.Document(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.PutDocument(ctx, "portfolio", []byte(`{"userName":"Jane"}`)); err != nil {
		t.Fatal(err)
	}
	doc, _ := c.Document(ctx)
	if doc.Name == "Jane" {
		t.Fatal("expected the cached copy before invalidation")
	}
	c.Invalidate()
	doc, _ = c.Document(ctx)
	if doc.Name != "Jane" {
		t.Errorf("Name = %q after Invalidate, want Jane", doc.Name)
	}
}

func TestDocumentCacheExpires(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := NewDocumentCache(s, "portfolio", content.Default(), 50*time.Millisecond, echo.New().Logger)

	if _, err := c.Document(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.PutDocument(ctx, "portfolio", []byte(`{"userName":"Jane"}`)); err != nil {
		t.Fatal(err)
	}
	time.Sleep(80 * time.Millisecond)
	doc, _ := c.Document(ctx)
	if doc.Name != "Jane" {
		t.Errorf("Name = %q after TTL, want Jane", doc.Name)
	}
}

func TestDocumentCacheSetAndIsolation(t *testing.T) {
	s := setupTestStore(t)
	c := NewDocumentCache(s, "portfolio", content.Default(), time.Hour, echo.New().Logger)

	d := content.Default()
	d.Name = "Set"
	c.Set(d)
	d.HeroRoles[0] = "mutated"

	got, err := c.Document(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Set" {
		t.Errorf("Name = %q, want Set", got.Name)
	}
	if got.HeroRoles[0] == "mutated" {
		t.Error("cache shares slices with the caller")
	}
	got.HeroRoles[0] = "mutated again"
	again, _ := c.Document(context.Background())
	if again.HeroRoles[0] == "mutated again" {
		t.Error("cache shares slices with readers")
	}
}

func TestDocumentCacheStoreErrorNotCached(t *testing.T) {
	s := setupTestStore(t)
	c := NewDocumentCache(s, "portfolio", content.Default(), time.Hour, echo.New().Logger)
	s.Close()

	if _, err := c.Document(context.Background()); err == nil {
		t.Fatal("expected an error from a closed store")
	}
	if c.loaded {
		t.Error("a failed load must not be cached")
	}
}
