package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey generates a key for a rendered artifact. kitHash
// identifies the kit definition (see Hash); the remaining arguments are
// the generation parameters that change the output bytes.
func ArtifactKey(kitHash, format, paper, scale string, margin float64) string {
	return hashKey("artifact", kitHash, format, paper, scale, margin)
}

// LayoutKey generates a key for a packed layout, which depends on the
// definition and the page geometry but not on the output format.
func LayoutKey(kitHash, paper, scale string, margin float64) string {
	return hashKey("layout", kitHash, paper, scale, margin)
}
