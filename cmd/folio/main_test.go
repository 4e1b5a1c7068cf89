package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.db")
	t.Setenv("DATABASE_PATH", path)
	t.Setenv("DOCUMENT_ID", "")
	return path
}

func TestSeedStoresDefaults(t *testing.T) {
	path := setupEnv(t)

	var out bytes.Buffer
	if err := runSeed(nil, &out); err != nil {
		t.Fatalf("runSeed failed: %v", err)
	}
	if !strings.Contains(out.String(), `seeded document "portfolio"`) {
		t.Errorf("output = %q", out.String())
	}

	store, err := folio.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	raw, err := store.GetDocument(context.Background(), "portfolio")
	if err != nil {
		t.Fatalf("document not stored: %v", err)
	}
	if err := content.Validate(raw); err != nil {
		t.Errorf("seeded document fails the schema: %v", err)
	}
}

func TestSeedKeepsExistingUnlessForced(t *testing.T) {
	path := setupEnv(t)
	store, err := folio.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.PutDocument(context.Background(), "portfolio", []byte(`{"userName":"Jane"}`)); err != nil {
		t.Fatal(err)
	}
	store.Close()

	var out bytes.Buffer
	if err := runSeed(nil, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q, want a refusal", out.String())
	}

	out.Reset()
	if err := runSeed([]string{"--force"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "seeded") {
		t.Errorf("output = %q after --force", out.String())
	}
}

func TestDumpReconcilesStoredDocument(t *testing.T) {
	path := setupEnv(t)
	store, err := folio.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.PutDocument(context.Background(), "portfolio", []byte(`{"userName":"Jane","extra":1}`)); err != nil {
		t.Fatal(err)
	}
	store.Close()

	var out bytes.Buffer
	if err := runDump(&out); err != nil {
		t.Fatalf("runDump failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("dump is not JSON: %v", err)
	}
	if got["userName"] != "Jane" {
		t.Errorf("userName = %v", got["userName"])
	}
	if got["userEmail"] != content.Default().Email {
		t.Errorf("userEmail = %v, want the default", got["userEmail"])
	}
	if _, ok := got["extra"]; ok {
		t.Error("unknown keys should be dropped")
	}
}

func TestDumpWithoutDocument(t *testing.T) {
	setupEnv(t)
	var out bytes.Buffer
	if err := runDump(&out); err != nil {
		t.Fatalf("runDump failed: %v", err)
	}
	if !strings.Contains(out.String(), content.Default().Name) {
		t.Error("dump should print the defaults on first run")
	}
}
