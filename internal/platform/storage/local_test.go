package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/api/v1/media/files")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	size, err := store.Write(ctx, "guide.png", "image/png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if size != int64(len("fake-png-bytes")) {
		t.Fatalf("unexpected size %d", size)
	}

	r, contentType, err := store.Open(ctx, "guide.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if contentType != "image/png" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "fake-png-bytes" {
		t.Fatalf("unexpected body %q", body)
	}

	if got := store.URL("guide.png"); got != "/api/v1/media/files/guide.png" {
		t.Fatalf("unexpected URL %q", got)
	}
}

func TestLocalStoreRejectsOverwrite(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Write(ctx, "dup.txt", "text/plain", strings.NewReader("one")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := store.Write(ctx, "dup.txt", "text/plain", strings.NewReader("two")); !errors.Is(err, ErrObjectExists) {
		t.Fatalf("expected ErrObjectExists, got %v", err)
	}
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{"", "../escape", "a/b.png", `a\b.png`, ".hidden"} {
		if _, err := store.Write(ctx, name, "image/png", strings.NewReader("x")); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestLocalStoreDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Write(ctx, "gone.txt", "text/plain", strings.NewReader("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Delete(ctx, "gone.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "gone.txt"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
	if _, _, err := store.Open(ctx, "gone.txt"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound on open, got %v", err)
	}
}
