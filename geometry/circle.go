package geometry

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShape is the panic value when a distance between two kinds of
// shapes cannot be measured.
var ErrUnsupportedShape = errors.New("geometry: unsupported shape")

// Circle is a disc placed in the plane.
type Circle struct {
	Center Vec2
	Radius float32
}

// NewCircle creates a circle. The radius must be positive.
func NewCircle(center Vec2, radius float32) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("geometry: circle radius %v must be positive", radius)
	}

	return Circle{Center: center, Radius: radius}, nil
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Vec2) Circle {
	c.Center = c.Center.Add(d)
	return c
}

// PerimeterDistance returns the distance between the centers minus both
// radii. Only circles are supported as the other shape.
func (c Circle) PerimeterDistance(other Shape) float32 {
	switch o := other.(type) {
	case Circle:
		return c.Center.Distance(o.Center) - c.Radius - o.Radius
	case *Circle:
		if o != nil {
			return c.Center.Distance(o.Center) - c.Radius - o.Radius
		}
	}

	panic(fmt.Errorf("%w: perimeter distance between Circle and %T",
		ErrUnsupportedShape, other))
}
