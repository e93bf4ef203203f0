package store

import (
	"context"
	"errors"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	st, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer st.Close()

	type payload struct {
		Name  string   `json:"name"`
		Slots []string `json:"slots"`
	}

	in := payload{Name: "monday", Slots: []string{"09:00", "09:30"}}
	if err := st.Set(ctx, "k1", in); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out payload
	if err := st.Get(ctx, "k1", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != in.Name || len(out.Slots) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSQLiteStore_SetReplaces(t *testing.T) {
	ctx := context.Background()

	st, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer st.Close()

	if err := st.Set(ctx, "k", []string{"a", "b"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Set(ctx, "k", []string{"c"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	var got []string
	if err := st.Get(ctx, "k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected whole-value replacement, got %v", got)
	}
}

func TestSQLiteStore_NotFoundAndDelete(t *testing.T) {
	ctx := context.Background()

	st, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer st.Close()

	var dest any
	if err := st.Get(ctx, "missing", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := st.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var s string
	if err := st.Get(ctx, "k", &s); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_MatchesContract(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	var dest int
	if err := st.Get(ctx, "missing", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := st.Set(ctx, "n", 42); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Get(ctx, "n", &dest); err != nil {
		t.Fatalf("get: %v", err)
	}
	if dest != 42 {
		t.Fatalf("expected 42, got %d", dest)
	}

	if err := st.Delete(ctx, "n"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.Get(ctx, "n", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
