// Package cache stores LLM summary responses so re-analyzing an unchanged
// document skips the provider call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// SummaryKey generates a cache key from the provider, model, and prompt.
// Any change to the document head or the instruction text changes the key.
func SummaryKey(provider, model, prompt string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + prompt))
	return "actscan:v1:" + hex.EncodeToString(hash[:])
}
