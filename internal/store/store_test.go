package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestGetMissingKey(t *testing.T) {
	st := openTestStore(t)

	_, ok, err := st.Get("absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected missing key to report ok=false")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	st := openTestStore(t)

	if err := st.Set("dmv_prep_seen_hashes", `["abc","def"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok, err := st.Get("dmv_prep_seen_hashes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != `["abc","def"]` {
		t.Errorf("Get = (%q, %t), want (%q, true)", v, ok, `["abc","def"]`)
	}
}

func TestSetOverwrites(t *testing.T) {
	st := openTestStore(t)

	if err := st.Set("k", "old"); err != nil {
		t.Fatal(err)
	}
	if err := st.Set("k", "new"); err != nil {
		t.Fatal(err)
	}

	v, _, err := st.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if v != "new" {
		t.Errorf("Get = %q, want %q", v, "new")
	}
}

func TestDelete(t *testing.T) {
	st := openTestStore(t)

	if err := st.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete("k"); err != nil {
		t.Fatal(err)
	}

	_, ok, err := st.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected key to be gone after Delete")
	}
}
