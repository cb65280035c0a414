// Package kinematics defines time-parameterized bodies, the inputs of the
// time-of-impact search.
package kinematics

import "github.com/sarchlab/ccd/geometry"

// A Body is a shape whose placement is a function of time.
//
// A body is treated as immutable for the duration of one query.
type Body interface {
	// IsComplete tells if the body has both a shape and a motion. Incomplete
	// bodies never collide.
	IsComplete() bool

	// StartTime returns the first instant at which the motion is defined.
	StartTime() float32

	// InstantShape returns the shape placed at time t.
	InstantShape(t float32) geometry.Shape

	// MaxDistanceTraveled returns an upper bound on how far any point of the
	// body moves during the interval. The bound must tend to zero as the
	// interval length tends to zero.
	MaxDistanceTraveled(iv geometry.ClosedInterval) float32
}
