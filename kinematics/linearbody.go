package kinematics

import (
	"math"

	"github.com/sarchlab/ccd/geometry"
)

// LinearBody is a circle moving at constant velocity between its start and
// end times. Before the start time and after the end time it stays still.
type LinearBody struct {
	shape     *geometry.Circle
	startTime float32
	endTime   float32
	velocity  geometry.Vec2
}

// IsComplete returns true if the body has been given a shape.
func (b *LinearBody) IsComplete() bool {
	return b.shape != nil
}

// StartTime returns the time at which the body is at its initial position.
func (b *LinearBody) StartTime() float32 {
	return b.startTime
}

// EndTime returns the time at which the body stops moving.
func (b *LinearBody) EndTime() float32 {
	return b.endTime
}

// Velocity returns the body velocity while it moves.
func (b *LinearBody) Velocity() geometry.Vec2 {
	return b.velocity
}

// InstantShape returns the circle placed at time t.
func (b *LinearBody) InstantShape(t float32) geometry.Shape {
	if b.shape == nil {
		panic("kinematics: incomplete body has no shape")
	}

	elapsed := b.clamp(t) - b.startTime

	return b.shape.Translate(b.velocity.Scale(elapsed))
}

// MaxDistanceTraveled returns speed times the part of the interval during
// which the body moves.
func (b *LinearBody) MaxDistanceTraveled(iv geometry.ClosedInterval) float32 {
	moving := b.clamp(iv.Max) - b.clamp(iv.Min)
	if moving <= 0 {
		return 0
	}

	return b.velocity.Length() * moving
}

func (b *LinearBody) clamp(t float32) float32 {
	if t < b.startTime {
		return b.startTime
	}

	if t > b.endTime {
		return b.endTime
	}

	return t
}

// LinearBodyBuilder builds LinearBody objects.
type LinearBodyBuilder struct {
	shape     *geometry.Circle
	startTime float32
	endTime   float32
	velocity  geometry.Vec2
}

// MakeLinearBodyBuilder creates a builder with a body that starts at time 0,
// never stops, and does not move.
func MakeLinearBodyBuilder() LinearBodyBuilder {
	return LinearBodyBuilder{
		endTime: float32(math.Inf(1)),
	}
}

// WithShape sets the circle placed at the start time. A builder without a
// shape builds an incomplete body.
func (b LinearBodyBuilder) WithShape(c geometry.Circle) LinearBodyBuilder {
	b.shape = &c
	return b
}

// WithStartTime sets the start time.
func (b LinearBodyBuilder) WithStartTime(t float32) LinearBodyBuilder {
	b.startTime = t
	return b
}

// WithEndTime sets the time after which the body stays still.
func (b LinearBodyBuilder) WithEndTime(t float32) LinearBodyBuilder {
	b.endTime = t
	return b
}

// WithVelocity sets the velocity.
func (b LinearBodyBuilder) WithVelocity(v geometry.Vec2) LinearBodyBuilder {
	b.velocity = v
	return b
}

// Build creates the body.
func (b LinearBodyBuilder) Build() *LinearBody {
	if b.endTime < b.startTime {
		panic("kinematics: end time is earlier than start time")
	}

	body := &LinearBody{
		startTime: b.startTime,
		endTime:   b.endTime,
		velocity:  b.velocity,
	}

	if b.shape != nil {
		shape := *b.shape
		body.shape = &shape
	}

	return body
}
