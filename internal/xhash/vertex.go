package xhash

import "fmt"

// Of hashes an arbitrary vertex value. Built-in integer and string kinds are
// hashed directly and cheaply; anything else falls back to its %v
// formatting, which is still deterministic across calls within a process
// (spec.md's determinism requirement binds the temporal-adjacency seeded
// draws, not general vertex hashing, so this fallback is adequate here).
func Of[V comparable](v V) uint64 {
	switch x := any(v).(type) {
	case string:
		return String(x)
	case int:
		return Uint64(uint64(x))
	case int8:
		return Uint64(uint64(x))
	case int16:
		return Uint64(uint64(x))
	case int32:
		return Uint64(uint64(x))
	case int64:
		return Uint64(uint64(x))
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint64(uint64(x))
	case uint16:
		return Uint64(uint64(x))
	case uint32:
		return Uint64(uint64(x))
	case uint64:
		return Uint64(x)
	default:
		return String(fmt.Sprintf("%v", x))
	}
}
