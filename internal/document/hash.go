package document

import "math"

// Per-variant seeds keep values of different types from colliding trivially.
const (
	hashSeedNull   uint64 = 0x9e3779b97f4a7c15
	hashSeedBool   uint64 = 0xb492b66fbe98f273
	hashSeedString uint64 = 0x1b873593c2b2ae35
	hashSeedNumber uint64 = 0xcc9e2d51ff51afd7
	hashSeedArray  uint64 = 0xd6e8feb86659fd93
	hashSeedObject uint64 = 0xa0761d6478bd642f
)

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// Hash returns a structural hash consistent with Equal: equal Values always
// hash identically. In particular, numbers hash by mathematical value (4,
// uint 4, and 4.0 share a hash) and object entries combine commutatively so
// insertion order does not matter, while the key-value pairing still does.
//
// Used to back uniqueItems set membership; collisions are tolerated there
// (candidates are confirmed with Equal) but equality must never split.
func Hash(v Value) uint64 {
	switch val := v.(type) {
	case Null:
		return hashSeedNull
	case Bool:
		if val {
			return mix(hashSeedBool, 1)
		}
		return mix(hashSeedBool, 0)
	case String:
		return mix(hashSeedString, hashString(string(val)))
	case Number:
		return mix(hashSeedNumber, hashNumber(val))
	case Array:
		h := hashSeedArray
		for _, elem := range val {
			h = mix(h, Hash(elem))
		}
		return mix(h, uint64(len(val)))
	case *Object:
		// Commutative accumulation: each entry hashes on its own and the
		// results combine with XOR, so two Objects with the same entries in
		// different insertion orders hash the same.
		var acc uint64
		for _, k := range val.Keys() {
			entry, _ := val.Get(k)
			acc ^= mix(hashString(k), Hash(entry))
		}
		return mix(hashSeedObject, acc^uint64(val.Len()))
	default:
		return 0
	}
}

// hashNumber hashes by mathematical value. All encodings route through
// float64 bits so that integer and float encodings of one quantity agree;
// negative zero is folded into zero for the same reason.
func hashNumber(n Number) uint64 {
	f := n.Float64()
	if f == 0 {
		f = 0 // fold -0.0
	}
	return math.Float64bits(f)
}

// hashString is FNV-1a over the raw bytes.
func hashString(s string) uint64 {
	h := fnvOffset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// mix folds b into a with an FNV-style step. Not commutative; order of
// arguments matters, which is what array hashing relies on.
func mix(a, b uint64) uint64 {
	h := a
	for i := 0; i < 8; i++ {
		h ^= (b >> (8 * i)) & 0xff
		h *= fnvPrime
	}
	return h
}
