package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Cache is a keyed store for computed values
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)
	Size() int
}

// Cleaner is implemented by caches whose entries expire
type Cleaner interface {
	CleanExpired() int
	Size() int
}

// SnapshotKey identifies a log snapshot by bearer token and vehicle filter.
// The token is hashed so it never sits in memory as a map key.
func SnapshotKey(token string, vehicleIDs []int) string {
	ids := append([]int(nil), vehicleIDs...)
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	sum := sha256.Sum256([]byte(token + "|" + strings.Join(parts, ",")))
	return hex.EncodeToString(sum[:])
}
