package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return NewStore(db)
}

func TestSetGetRoundTrip(t *testing.T) {
	store := testStore(t)

	if err := store.Set(KeyTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, err := store.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(raw) != `"dark"` {
		t.Fatalf("got %q, want %q", raw, `"dark"`)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := testStore(t)

	if _, err := store.Get(KeyProfile); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetReplacesValue(t *testing.T) {
	store := testStore(t)

	if err := store.SetJSON(KeyTotalPraises, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetJSON(KeyTotalPraises, 2); err != nil {
		t.Fatalf("set again: %v", err)
	}

	var count int
	if !store.GetJSON(KeyTotalPraises, &count) {
		t.Fatal("expected value present")
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestGetJSONFallsBackOnMissing(t *testing.T) {
	store := testStore(t)

	theme := "purple"
	if store.GetJSON(KeyTheme, &theme) {
		t.Fatal("expected false for missing key")
	}
	if theme != "purple" {
		t.Fatalf("default clobbered: %q", theme)
	}
}

func TestGetJSONFallsBackOnCorruptValue(t *testing.T) {
	store := testStore(t)

	if err := store.Set(KeyFavorites, []byte(`{not json`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	favorites := []string{"kept"}
	if store.GetJSON(KeyFavorites, &favorites) {
		t.Fatal("expected false for corrupt value")
	}
	if len(favorites) != 1 || favorites[0] != "kept" {
		t.Fatalf("default clobbered: %v", favorites)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := testStore(t)

	if err := store.SetJSON(KeyTotalShares, 3); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(KeyTotalShares); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(KeyTotalShares); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
	if _, err := store.Get(KeyTotalShares); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestResetClearsEveryKey(t *testing.T) {
	store := testStore(t)

	for _, key := range AllKeys {
		if err := store.SetJSON(key, "x"); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, key := range AllKeys {
		if _, err := store.Get(key); !errors.Is(err, ErrNotFound) {
			t.Fatalf("key %s survived reset: %v", key, err)
		}
	}
}
