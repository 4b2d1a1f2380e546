// Package guard reduces load on the upstream model service: a TTL+LRU
// cache for repeated requests and a single-flight deduplicator that
// collapses concurrent identical requests into one upstream call.
package guard

import "strings"

// NormalizeKey canonicalizes a cache or dedup key: case-fold, trim, and
// collapse runs of internal whitespace to a single space. Cache and
// Deduplicator both normalize through this function so the same logical
// request always maps to the same key in both structures.
func NormalizeKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), " ")
}
