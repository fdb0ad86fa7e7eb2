package edge

import "errors"

// ErrDelayedEdgeBackwards is returned when constructing a delayed-temporal
// edge whose effect time precedes its cause time. Every delayed-temporal
// edge must satisfy effect_time >= cause_time.
var ErrDelayedEdgeBackwards = errors.New("edge: effect time precedes cause time")
