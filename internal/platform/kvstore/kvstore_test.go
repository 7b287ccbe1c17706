package kvstore

import (
	"path/filepath"
	"testing"
)

type settings struct {
	Speed    float64 `json:"speed"`
	Muted    bool    `json:"muted"`
	Language string  `json:"language"`
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()

	if found, err := store.Get("missing", &settings{}); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	want := settings{Speed: 1.25, Muted: true, Language: "hi-IN"}
	if err := store.Put("audio", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got settings
	found, err := store.Get("audio", &got)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if err := store.Delete("audio"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if found, _ := store.Get("audio", &got); found {
		t.Fatal("expected key to be gone")
	}
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := store.Put("audio", settings{Speed: 0.75, Language: "ne-NP"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var got settings
	found, err := reopened.Get("audio", &got)
	if err != nil || !found {
		t.Fatalf("Get after reopen: found=%v err=%v", found, err)
	}
	if got.Speed != 0.75 || got.Language != "ne-NP" {
		t.Fatalf("unexpected settings %+v", got)
	}
}

func TestFileDeleteMissingKeyIsNoop(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := store.Delete("never-set"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
