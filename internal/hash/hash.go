package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Combine folds v into seed, producing a new 64-bit hash. The mixing constant
// is the 64-bit golden ratio, same construction as boost::hash_combine.
func Combine(v, seed uint64) uint64 {
	return seed ^ (v + 0x9e3779b97f4a7c15 + (seed << 12) + (seed >> 4))
}
