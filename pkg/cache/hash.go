package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ResultKey builds the cache key for one parse result: the ruleset
// fingerprint (typically [Hash] of the raw ruleset document) combined with
// a hash of the input string, so arbitrary inputs cannot produce colliding
// or unstorable keys.
func ResultKey(fingerprint, input string) string {
	return fmt.Sprintf("result:%s:%s", fingerprint, Hash([]byte(input)))
}
