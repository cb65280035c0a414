package geometry

// A Shape is a placed planar shape.
type Shape interface {
	// PerimeterDistance returns the gap between the boundaries of the two
	// shapes. A non-positive value means the shapes overlap.
	PerimeterDistance(other Shape) float32
}
