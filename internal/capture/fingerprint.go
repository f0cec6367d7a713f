package capture

import "hash/fnv"

// fingerprint returns the FNV-1a 64-bit hash of s, used to deduplicate
// emitted transcript lines. Not cryptographic: spec explicitly does not
// need collision resistance against an adversary, only cheap dedup.
func fingerprint(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
