// Package component implements the four container shapes spec.md §3.4
// builds reachability results out of: Component, an exact vertex set;
// ComponentSketch, its HyperLogLog-estimated mirror; TemporalCluster, an
// exact event set with per-vertex interval coverage and lifetime/volume/
// mass measures; and TemporalClusterSketch, the cardinality-estimated
// counterpart used to keep all-pairs temporal reachability feasible on
// large event sequences.
//
// None of these have a teacher analogue — the teacher library has no
// temporal or probabilistic component concept at all — so they are coded
// fresh in this module's prevailing style, built on internal/hll for the
// estimated forms and the interval package for exact coverage tracking.
package component
