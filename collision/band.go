package collision

import (
	"fmt"

	"github.com/sarchlab/ccd/expr"
	"github.com/sarchlab/ccd/geometry"
)

const distanceBandName = "DistanceBand"

// A DistanceBand is the range of perimeter-to-perimeter separations that
// counts as being in contact.
type DistanceBand struct {
	interval geometry.ClosedInterval
}

// NewDistanceBand validates the interval and wraps it in a band. The minimum
// must be strictly positive.
func NewDistanceBand(iv *geometry.ClosedInterval) (*DistanceBand, error) {
	if iv == nil {
		return nil, fmt.Errorf("%w: interval is nil", ErrInvalidBand)
	}

	if !iv.IsValid() {
		return nil, fmt.Errorf("%w: %s is not an interval", ErrInvalidBand, iv)
	}

	if !(iv.Min > 0) {
		return nil, fmt.Errorf("%w: minimum %v must be positive",
			ErrInvalidBand, iv.Min)
	}

	return &DistanceBand{interval: *iv}, nil
}

// MustNewDistanceBand creates a band from its bounds and panics if they are
// invalid.
func MustNewDistanceBand(min, max float32) *DistanceBand {
	iv := geometry.ClosedInterval{Min: min, Max: max}

	b, err := NewDistanceBand(&iv)
	if err != nil {
		panic(err)
	}

	return b
}

// Interval returns the accepted separations.
func (b *DistanceBand) Interval() geometry.ClosedInterval {
	return b.interval
}

// Min returns the smallest accepted separation.
func (b *DistanceBand) Min() float32 {
	return b.interval.Min
}

// Max returns the largest accepted separation.
func (b *DistanceBand) Max() float32 {
	return b.interval.Max
}

// Contains tells if the separation d is in contact range.
func (b *DistanceBand) Contains(d float32) bool {
	return b.interval.Contains(d)
}

// String renders the band as DistanceBand(min, max).
func (b *DistanceBand) String() string {
	return expr.NewCall(distanceBandName,
		expr.Float32(b.interval.Min),
		expr.Float32(b.interval.Max),
	).String()
}

// ParseDistanceBand reads a band written by String.
func ParseDistanceBand(s string) (*DistanceBand, error) {
	call, err := expr.Parse(s)
	if err != nil {
		return nil, err
	}

	return distanceBandFromCall(call)
}

func distanceBandFromCall(call *expr.Call) (*DistanceBand, error) {
	if err := call.ExpectName(distanceBandName, 2); err != nil {
		return nil, err
	}

	min, err := call.Float32Arg(0)
	if err != nil {
		return nil, err
	}

	max, err := call.Float32Arg(1)
	if err != nil {
		return nil, err
	}

	return NewDistanceBand(&geometry.ClosedInterval{Min: min, Max: max})
}

// MarshalText implements encoding.TextMarshaler.
func (b *DistanceBand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *DistanceBand) UnmarshalText(text []byte) error {
	parsed, err := ParseDistanceBand(string(text))
	if err != nil {
		return err
	}

	*b = *parsed

	return nil
}
