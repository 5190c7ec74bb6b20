package bigcache

import (
	"context"
	"testing"
	"time"
)

func TestRegionRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, err := New(Config{Name: "Item", LifeWindow: time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close(ctx)

	if r.Name() != "Item" {
		t.Fatalf("Name = %q", r.Name())
	}

	if ok, err := r.Contains(ctx, "k"); err != nil || ok {
		t.Fatalf("Contains on empty: ok=%v err=%v", ok, err)
	}
	if _, ok, err := r.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("Get on empty: ok=%v err=%v", ok, err)
	}

	if applied, err := r.Put(ctx, "k", []byte("v1")); err != nil || !applied {
		t.Fatalf("Put: applied=%v err=%v", applied, err)
	}
	if b, ok, err := r.Get(ctx, "k"); err != nil || !ok || string(b) != "v1" {
		t.Fatalf("Get: %q ok=%v err=%v", b, ok, err)
	}
	if ok, err := r.Contains(ctx, "k"); err != nil || !ok {
		t.Fatalf("Contains after put: ok=%v err=%v", ok, err)
	}

	// overwrite is allowed; entries are whole values, never merged
	if _, err := r.Put(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if b, _, _ := r.Get(ctx, "k"); string(b) != "v2" {
		t.Fatalf("overwrite not visible: %q", b)
	}

	if err := r.Evict(ctx, "k"); err != nil {
		t.Fatalf("Evict: %v", err)
	}
	if ok, _ := r.Contains(ctx, "k"); ok {
		t.Fatalf("entry survived eviction")
	}
	// evicting an absent key is not an error
	if err := r.Evict(ctx, "k"); err != nil {
		t.Fatalf("Evict absent: %v", err)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(Config{LifeWindow: time.Minute}); err == nil {
		t.Fatalf("missing name accepted")
	}
}
