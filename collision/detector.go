// Package collision finds when two moving bodies first come within a
// distance band of each other.
package collision

import (
	"fmt"

	"github.com/sarchlab/ccd/expr"
	"github.com/sarchlab/ccd/geometry"
	"github.com/sarchlab/ccd/kinematics"
)

//go:generate mockgen -destination "mock_kinematics_test.go" -package $GOPACKAGE -write_package_comment=false github.com/sarchlab/ccd/kinematics Body
//go:generate mockgen -destination "mock_geometry_test.go" -package $GOPACKAGE -write_package_comment=false github.com/sarchlab/ccd/geometry Shape

// DetectorKind enumerates the available pair detectors.
type DetectorKind int

const (
	// KindDistance is the conservative-advancement detector.
	KindDistance DetectorKind = iota
)

var detectorKindNames = map[DetectorKind]string{
	KindDistance: "DistancePairCollisionDetector",
}

// String returns the stable name used in serialized configurations.
func (k DetectorKind) String() string {
	name, ok := detectorKindNames[k]
	if !ok {
		return fmt.Sprintf("DetectorKind(%d)", int(k))
	}

	return name
}

// ParseDetectorKind returns the kind with the given stable name.
func ParseDetectorKind(name string) (DetectorKind, error) {
	for k, n := range detectorKindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDetector, name)
}

// A PairDetector decides when two bodies collide.
type PairDetector interface {
	fmt.Stringer

	// Kind returns the detector variant.
	Kind() DetectorKind

	// TestCollision returns the first time in the interval at which the
	// separation of the bodies is inside the band. If inclusive is false, it
	// instead returns the latest instant known to be before contact. The
	// second return value is false if there is no such time.
	TestCollision(
		interval geometry.ClosedInterval,
		band *DistanceBand,
		inclusive bool,
		body1, body2 kinematics.Body,
	) (float32, bool)
}

// NewDetector creates a detector of the given kind with default settings.
func NewDetector(kind DetectorKind) (PairDetector, error) {
	switch kind {
	case KindDistance:
		return NewDistancePairDetector(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDetector, kind)
	}
}

// FormatDetector renders a detector as Name().
func FormatDetector(d PairDetector) string {
	return expr.NewCall(d.Kind().String()).String()
}

// ParseDetector reads a detector written by FormatDetector.
func ParseDetector(s string) (PairDetector, error) {
	call, err := expr.Parse(s)
	if err != nil {
		return nil, err
	}

	kind, err := ParseDetectorKind(call.Name)
	if err != nil {
		return nil, err
	}

	if err := call.ExpectName(call.Name, 0); err != nil {
		return nil, err
	}

	return NewDetector(kind)
}

// searcher is the search run on the clipped interval.
type searcher interface {
	Search(
		window geometry.ClosedInterval,
		band *DistanceBand,
		inclusive bool,
		body1, body2 kinematics.Body,
	) (float32, bool)
}

// clipAndSearch applies the checks shared by all detectors before running
// the detector-specific search.
func clipAndSearch(
	s searcher,
	interval geometry.ClosedInterval,
	band *DistanceBand,
	inclusive bool,
	body1, body2 kinematics.Body,
) (float32, bool) {
	mustNotBeNil(band, body1, body2)
	mustBeValidInterval(interval)

	if !body1.IsComplete() || !body2.IsComplete() {
		return 0, false
	}

	lower := interval.Min
	if start := body1.StartTime(); start > lower {
		lower = start
	}

	if start := body2.StartTime(); start > lower {
		lower = start
	}

	if lower >= interval.Max {
		return 0, false
	}

	return s.Search(
		geometry.ClosedInterval{Min: lower, Max: interval.Max},
		band, inclusive, body1, body2,
	)
}

func mustBeValidInterval(iv geometry.ClosedInterval) {
	if !iv.IsValid() {
		panic(fmt.Errorf("%w: %s", geometry.ErrInvalidInterval, iv))
	}
}

func mustNotBeNil(band *DistanceBand, body1, body2 kinematics.Body) {
	switch {
	case band == nil:
		panic(fmt.Errorf("%w: band", ErrNilArgument))
	case body1 == nil:
		panic(fmt.Errorf("%w: body1", ErrNilArgument))
	case body2 == nil:
		panic(fmt.Errorf("%w: body2", ErrNilArgument))
	}
}
