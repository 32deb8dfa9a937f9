// Package cache stores model analysis results and job status records so
// repeated runs over the same document do not repeat model calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TTLs for the cached record kinds.
const (
	ChunkTTL  = 24 * time.Hour
	FocusTTL  = 24 * time.Hour
	StatusTTL = time.Hour
)

// Cache is the storage interface shared by the memory, disk, and layered
// implementations. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

const keyPrefix = "redline:v1:"

func contentKey(kind, content string) string {
	hash := sha256.Sum256([]byte(content))
	return keyPrefix + kind + ":" + hex.EncodeToString(hash[:])
}

// ChunkKey identifies a chunk analysis by the chunk's exact text.
func ChunkKey(text string) string { return contentKey("chunk", text) }

// FocusKey identifies a focus-excerpt analysis by the joined excerpt text.
func FocusKey(text string) string { return contentKey("focus", text) }

// StatusKey identifies a job status record by its job id.
func StatusKey(id string) string { return keyPrefix + "status:" + id }
