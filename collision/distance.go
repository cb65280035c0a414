package collision

import (
	"math"

	"github.com/sarchlab/ccd/geometry"
	"github.com/sarchlab/ccd/kinematics"
)

// DefaultMaxIterations bounds the number of advancement steps of a search.
const DefaultMaxIterations = 100000

// A Probe observes the separations sampled by a search.
type Probe interface {
	Sample(t, separation float32)
}

// DistancePairDetector finds the time of impact by conservative advancement.
// Starting at the beginning of the window, it repeatedly samples the
// separation and advances by the largest step, found by bisection, over which
// the bodies cannot travel far enough to enter the band.
type DistancePairDetector struct {
	maxIterations int
	probe         Probe
}

// NewDistancePairDetector creates a detector with default settings.
func NewDistancePairDetector() *DistancePairDetector {
	return &DistancePairDetector{
		maxIterations: DefaultMaxIterations,
	}
}

// WithMaxIterations returns a copy of the detector that gives up after n
// advancement steps.
func (d *DistancePairDetector) WithMaxIterations(n int) *DistancePairDetector {
	if n <= 0 {
		panic("collision: max iterations must be positive")
	}

	c := *d
	c.maxIterations = n

	return &c
}

// WithProbe returns a copy of the detector that reports every sample to p.
func (d *DistancePairDetector) WithProbe(p Probe) *DistancePairDetector {
	c := *d
	c.probe = p

	return &c
}

// Kind returns KindDistance.
func (d *DistancePairDetector) Kind() DetectorKind {
	return KindDistance
}

func (d *DistancePairDetector) String() string {
	return FormatDetector(d)
}

// TestCollision clips the interval to the bodies' start times and searches
// the result.
func (d *DistancePairDetector) TestCollision(
	interval geometry.ClosedInterval,
	band *DistanceBand,
	inclusive bool,
	body1, body2 kinematics.Body,
) (float32, bool) {
	return clipAndSearch(d, interval, band, inclusive, body1, body2)
}

// Search runs the time-of-impact search on the window without clipping.
func (d *DistancePairDetector) Search(
	window geometry.ClosedInterval,
	band *DistanceBand,
	inclusive bool,
	body1, body2 kinematics.Body,
) (float32, bool) {
	mustNotBeNil(band, body1, body2)
	mustBeValidInterval(window)

	hit, first, found := d.advance(window, band, body1, body2)
	if !found {
		return 0, false
	}

	if inclusive || !(first > band.Max()) {
		return hit, true
	}

	return d.refine(window.Min, hit, first, band, body1, body2)
}

func (d *DistancePairDetector) advance(
	window geometry.ClosedInterval,
	band *DistanceBand,
	body1, body2 kinematics.Body,
) (hit, first float32, found bool) {
	now := window.Min
	candidate := window.Length()

	for i := 0; i < d.maxIterations; i++ {
		dist := d.sample(now, body1, body2)
		if i == 0 {
			first = dist
		}

		if band.Contains(dist) {
			return now, first, true
		}

		remaining := window.Max - now
		if remaining <= 0 || isNaN(dist) {
			return 0, first, false
		}

		maxAccepted := band.Min() - dist
		if dist > band.Max() {
			maxAccepted = dist - band.Max()
		}

		step, firstTry := safeStep(
			now, min(candidate, remaining), maxAccepted, body1, body2)

		candidate = step
		if firstTry {
			candidate = 2 * step
		}

		now = advanceTo(now, step, window.Max)
	}

	return 0, first, false
}

// safeStep halves delta until the bodies cannot cover maxAccepted within it.
// firstTry tells if delta was accepted without halving.
func safeStep(
	now, delta, maxAccepted float32,
	body1, body2 kinematics.Body,
) (step float32, firstTry bool) {
	firstTry = true

	for delta > 0 && sweptDistance(body1, body2, now, now+delta) >= maxAccepted {
		delta /= 2
		firstTry = false
	}

	return delta, firstTry
}

// advanceTo moves now forward by step without passing end. When the step is
// too small to change now in single precision, it moves by one ULP instead.
func advanceTo(now, step, end float32) float32 {
	next := now + step
	if next <= now {
		next = math.Nextafter32(now, end)
	}

	if next > end {
		next = end
	}

	return next
}

// refine looks for an instant strictly before hit that is provably outside
// the band, halving the distance from start until the motion bound says the
// bodies cannot have reached the band yet.
func (d *DistancePairDetector) refine(
	start, hit, first float32,
	band *DistanceBand,
	body1, body2 kinematics.Body,
) (float32, bool) {
	delta := hit - start

	for i := 0; i < d.maxIterations; i++ {
		at := start + delta
		if delta <= 0 || at <= start {
			return 0, false
		}

		if at >= hit || first-sweptDistance(body1, body2, start, at) <= band.Max() {
			delta /= 2
			continue
		}

		return at, true
	}

	return 0, false
}

func (d *DistancePairDetector) sample(
	t float32,
	body1, body2 kinematics.Body,
) float32 {
	dist := body1.InstantShape(t).PerimeterDistance(body2.InstantShape(t))

	if d.probe != nil {
		d.probe.Sample(t, dist)
	}

	return dist
}

func sweptDistance(body1, body2 kinematics.Body, from, to float32) float32 {
	iv := geometry.ClosedInterval{Min: from, Max: to}

	return body1.MaxDistanceTraveled(iv) + body2.MaxDistanceTraveled(iv)
}

func isNaN(x float32) bool {
	return x != x
}
