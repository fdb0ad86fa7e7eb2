// Package tnum declares the numeric constraints used for the temporal time
// type threaded through edge, interval, adjacency, and event-graph types.
//
// The teacher library (lvlath) predates generics in its own design and never
// parameterizes over a numeric type; every constraint here is new, written to
// satisfy spec.md's requirement that the time type T be "arithmetic, totally
// ordered" without committing the rest of the module to any one concrete type.
package tnum

import "math"

// Integer is the set of built-in signed and unsigned integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Real is a time type: it supports +, -, <, <=, >, >= directly, which is all
// interval.Set, adjacency policies, and the event graph's lifetime/linger
// arithmetic need.
type Real interface {
	Integer | Float
}

// MaxValue returns the largest finite value representable by T. It is used
// as the conventional "+∞" stand-in for time types with no literal infinity
// (spec.md §4.3: Simple.maximum_linger is "type max").
//
// The switch dispatches on the runtime type of T's zero value rather than on
// T itself, since Go forbids type-switching a type parameter directly; every
// case assigns a concretely-typed local before converting to T, which keeps
// the conversion valid for every instantiation of Real regardless of which
// case actually executes.
func MaxValue[T Real]() T {
	var zero T
	switch any(zero).(type) {
	case int:
		v := int(math.MaxInt)
		return T(v)
	case int8:
		var v int8 = math.MaxInt8
		return T(v)
	case int16:
		var v int16 = math.MaxInt16
		return T(v)
	case int32:
		var v int32 = math.MaxInt32
		return T(v)
	case int64:
		var v int64 = math.MaxInt64
		return T(v)
	case uint:
		v := uint(math.MaxUint)
		return T(v)
	case uint8:
		var v uint8 = math.MaxUint8
		return T(v)
	case uint16:
		var v uint16 = math.MaxUint16
		return T(v)
	case uint32:
		var v uint32 = math.MaxUint32
		return T(v)
	case uint64:
		var v uint64 = math.MaxUint64
		return T(v)
	case uintptr:
		var v uintptr = math.MaxUint64
		return T(v)
	case float32:
		var v float32 = math.MaxFloat32
		return T(v)
	case float64:
		var v float64 = math.MaxFloat64
		return T(v)
	default:
		var v int64 = math.MaxInt64
		return T(v)
	}
}

// IsInf reports whether t is the floating-point infinity for T's underlying
// kind. Integer instantiations of T have no representable infinity and
// always report false, matching the `if constexpr (has_infinity<T>)` guard
// in the original C++ source's limited_waiting_time::infinite_linger.
func IsInf[T Real](t T) bool {
	switch v := any(t).(type) {
	case float32:
		return math.IsInf(float64(v), 0)
	case float64:
		return math.IsInf(v, 0)
	default:
		return false
	}
}

// IsFloatKind reports whether T's underlying kind is float32 or float64.
// interval.Set uses this to decide whether touching integer intervals
// (end of one == start of next - 1) should merge the way adjacent integer
// closed intervals semantically do, versus floating intervals which only
// merge on an actual point of intersection.
func IsFloatKind[T Real]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// ToFloat64 widens t to a float64, used by the policies that must feed a
// time value into a floating-point distribution (e.g. gonum/stat/distuv) or
// quantise it against a resolution dt.
func ToFloat64[T Real](t T) float64 {
	switch v := any(t).(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case uintptr:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
