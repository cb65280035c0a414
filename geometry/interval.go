// Package geometry provides the planar value types consumed by the collision
// search: closed intervals over single-precision floats, vectors, and the
// shape contract.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is returned when an interval would have min > max or a
// NaN bound.
var ErrInvalidInterval = errors.New("geometry: invalid interval")

// ClosedInterval is the set of values x with Min <= x <= Max.
type ClosedInterval struct {
	Min float32
	Max float32
}

// NewClosedInterval creates a validated interval.
func NewClosedInterval(min, max float32) (ClosedInterval, error) {
	if isNaN(min) || isNaN(max) {
		return ClosedInterval{}, fmt.Errorf(
			"%w: NaN bound [%v, %v]", ErrInvalidInterval, min, max)
	}

	if min > max {
		return ClosedInterval{}, fmt.Errorf(
			"%w: min %v is greater than max %v", ErrInvalidInterval, min, max)
	}

	return ClosedInterval{Min: min, Max: max}, nil
}

// MustNewClosedInterval is like NewClosedInterval but panics on error.
func MustNewClosedInterval(min, max float32) ClosedInterval {
	iv, err := NewClosedInterval(min, max)
	if err != nil {
		panic(err)
	}

	return iv
}

// Contains tells if x lies in the interval, both ends included.
func (iv ClosedInterval) Contains(x float32) bool {
	return iv.Min <= x && x <= iv.Max
}

// Length returns Max - Min.
func (iv ClosedInterval) Length() float32 {
	return iv.Max - iv.Min
}

// IsValid reports whether Min <= Max holds.
func (iv ClosedInterval) IsValid() bool {
	return !isNaN(iv.Min) && !isNaN(iv.Max) && iv.Min <= iv.Max
}

func (iv ClosedInterval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}

func isNaN(x float32) bool {
	return math.IsNaN(float64(x))
}
