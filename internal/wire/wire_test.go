package wire

import (
	"errors"
	"testing"
)

func roundTrip(t *testing.T, e Entry) Entry {
	t.Helper()
	b, err := EncodeEntry(e)
	if err != nil {
		t.Fatalf("EncodeEntry: %v", err)
	}
	got, err := DecodeEntry(b)
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	e := Entry{Ordered: true, Identifiers: []string{"1", "2", "3"}, Keys: []string{"a", "b", ""}}
	got := roundTrip(t, e)
	if !got.Ordered || len(got.Identifiers) != 3 || len(got.Keys) != 3 {
		t.Fatalf("got %+v", got)
	}
	for i := range e.Identifiers {
		if got.Identifiers[i] != e.Identifiers[i] || got.Keys[i] != e.Keys[i] {
			t.Fatalf("position %d mismatch: %+v", i, got)
		}
	}
}

func TestRoundTripDense(t *testing.T) {
	got := roundTrip(t, Entry{Identifiers: []string{"x", "y"}})
	if got.Ordered || got.Keys != nil {
		t.Fatalf("dense entry grew metadata: %+v", got)
	}
	if len(got.Identifiers) != 2 || got.Identifiers[0] != "x" {
		t.Fatalf("got %+v", got)
	}
}

// An empty collection is a valid entry, distinct from having no entry.
func TestRoundTripEmpty(t *testing.T) {
	got := roundTrip(t, Entry{})
	if len(got.Identifiers) != 0 || got.Keys != nil || got.Ordered {
		t.Fatalf("got %+v", got)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := EncodeEntry(Entry{Identifiers: []string{""}}); err == nil {
		t.Fatalf("empty identifier accepted")
	}
	if _, err := EncodeEntry(Entry{Identifiers: []string{"1"}, Keys: []string{"a", "b"}}); err == nil {
		t.Fatalf("misaligned keys accepted")
	}
}

func TestDecodeRejectsCorrupt(t *testing.T) {
	good, err := EncodeEntry(Entry{Identifiers: []string{"1", "2"}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cases := map[string][]byte{
		"empty":       {},
		"no magic":    []byte("XXXXXXXXXXXXXXXX"),
		"short":       good[:6],
		"truncated":   good[:len(good)-1],
		"trailing":    append(append([]byte(nil), good...), 0x00),
		"bad version": append([]byte{'C', 'O', 'L', 'L', 99}, good[5:]...),
	}
	for name, b := range cases {
		if _, err := DecodeEntry(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}
