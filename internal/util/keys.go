package util

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// maxKeyLen caps rendered storage keys; anything longer collapses to a hash
// so backends with key-size limits stay usable.
const maxKeyLen = 256

var escaper = strings.NewReplacer("%", "%25", ":", "%3A")

// Join renders a composite storage key as colon-separated escaped parts.
// Escaping keeps the rendering injective: distinct part tuples never collide.
func Join(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = escaper.Replace(p)
	}
	key := strings.Join(escaped, ":")
	if len(key) <= maxKeyLen {
		return key
	}
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%s:%x", escaped[0], sum[:16])
}
