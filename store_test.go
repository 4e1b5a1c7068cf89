package folio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.GetDocument(context.Background(), "portfolio")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetDocument err = %v, want ErrNotFound", err)
	}
	if _, err := s.DocumentUpdatedAt(context.Background(), "portfolio"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DocumentUpdatedAt err = %v, want ErrNotFound", err)
	}
}

func TestPutAndGetDocument(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if err := s.PutDocument(ctx, "portfolio", []byte(`{"userName":"A"}`)); err != nil {
		t.Fatalf("PutDocument failed: %v", err)
	}
	if err := s.PutDocument(ctx, "portfolio", []byte(`{"userName":"B"}`)); err != nil {
		t.Fatalf("second PutDocument failed: %v", err)
	}
	got, err := s.GetDocument(ctx, "portfolio")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if string(got) != `{"userName":"B"}` {
		t.Errorf("GetDocument = %s, want the latest body", got)
	}

	ts, err := s.DocumentUpdatedAt(ctx, "portfolio")
	if err != nil {
		t.Fatalf("DocumentUpdatedAt failed: %v", err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("updated_at = %v, want recent", ts)
	}

	if _, err := s.GetDocument(ctx, "other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("documents should be keyed by id, got %v", err)
	}
}

func TestImages(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	older := Image{Filename: "a.jpg", OriginalName: "a.png", Width: 10, Height: 20, Size: 300, UploadedAt: "2024-01-01T00:00:00Z"}
	newer := Image{Filename: "b.jpg", OriginalName: "b.png", Width: 30, Height: 40, Size: 500, UploadedAt: "2024-02-01T00:00:00Z"}
	for _, img := range []Image{older, newer} {
		if err := s.SaveImage(ctx, img); err != nil {
			t.Fatalf("SaveImage(%s) failed: %v", img.Filename, err)
		}
	}

	list, err := s.ListImages(ctx)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(list) != 2 || list[0].Filename != "b.jpg" {
		t.Fatalf("ListImages = %+v, want newest first", list)
	}

	got, err := s.GetImage(ctx, "a.jpg")
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}
	if got != older {
		t.Errorf("GetImage = %+v, want %+v", got, older)
	}

	if err := s.DeleteImage(ctx, "a.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	if _, err := s.GetImage(ctx, "a.jpg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetImage after delete err = %v, want ErrNotFound", err)
	}
}
