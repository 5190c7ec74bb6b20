package util

import (
	"strings"
	"testing"
)

func TestJoinInjective(t *testing.T) {
	// without escaping these two tuples would render identically
	a := Join("coll", "Order:items", "42")
	b := Join("coll", "Order", "items:42")
	if a == b {
		t.Fatalf("collision: %q", a)
	}
	if Join("a", "b") != "a:b" {
		t.Fatalf("got %q", Join("a", "b"))
	}
}

func TestJoinStable(t *testing.T) {
	if Join("coll", "Order", "items", "42") != Join("coll", "Order", "items", "42") {
		t.Fatalf("Join not deterministic")
	}
}

func TestJoinLongKeysHashed(t *testing.T) {
	long := strings.Repeat("x", 4096)
	k := Join("coll", long)
	if len(k) > maxKeyLen {
		t.Fatalf("long key not collapsed: %d bytes", len(k))
	}
	if !strings.HasPrefix(k, "coll:") {
		t.Fatalf("hashed key lost its prefix: %q", k)
	}
	if k == Join("coll", long+"y") {
		t.Fatalf("distinct long keys collided")
	}
}
