// Package interval implements Set, a compact union-of-closed-intervals
// structure over an arithmetic, totally ordered time type. component's
// temporal clusters use a Set per vertex to record the windows during which
// that vertex is "active" — covered by some event's effect plus its linger.
//
// Stored as a sorted slice of non-overlapping, non-touching (for integer
// time types; see Set.Insert) closed intervals. There is no teacher
// analogue for this package — it is grounded directly on the semantics of
// the reference temporal-network library's interval implementation, coded
// in this module's prevailing receiver/doc-comment idiom.
package interval
