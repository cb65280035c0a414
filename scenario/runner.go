package scenario

import (
	"errors"
	"fmt"

	"github.com/sarchlab/ccd/collision"
	"github.com/sarchlab/ccd/datarecording"
	"github.com/sarchlab/ccd/geometry"
	"github.com/sarchlab/ccd/kinematics"
	"github.com/sarchlab/ccd/timing"
	"github.com/sarchlab/ccd/tracing"
	"go.uber.org/zap"
)

// ErrAlreadyRan is returned when a Runner is run a second time.
var ErrAlreadyRan = errors.New("scenario: runner already ran")

// Pair names two bodies that are checked against each other.
type Pair struct {
	A, B string
}

func (p Pair) String() string {
	return p.A + "-" + p.B
}

// Impact is a time of impact found by a check.
type Impact struct {
	Pair Pair

	// Time is the collision clock time of the impact.
	Time timing.VTimeInSec

	// ExteriorTime is the time of the root engine when the impact is
	// dispatched.
	ExteriorTime timing.VTimeInSec
}

// Report summarizes a run.
type Report struct {
	Impacts    []Impact
	Checks     int
	Dispatches map[string]uint64

	// EndTime is the root engine time when the run stops.
	EndTime timing.VTimeInSec

	// ClockTime is the collision clock time when the run stops.
	ClockTime timing.VTimeInSec
}

// A Runner runs a scenario. The collision clock is a nested engine inside a
// root engine. Each pair is checked periodically on the collision clock, and
// pauses stop the collision clock from root engine events.
type Runner struct {
	config    *Config
	logger    *zap.Logger
	recorder  datarecording.DataRecorder
	band      *collision.DistanceBand
	detector  collision.PairDetector
	inclusive bool
	bodies    map[string]kinematics.Body
	pairs     []Pair

	root  *timing.RootEngine
	clock *timing.NestedEngine

	counter *tracing.DispatchCounter
	events  *tracing.EventRecorder
	samples *tracing.SampleRecorder

	report Report
	ran    bool
}

// Run runs the scenario until the collision clock reaches the horizon.
func (r *Runner) Run() (*Report, error) {
	if r.ran {
		return nil, ErrAlreadyRan
	}

	r.ran = true

	r.root.Run()

	r.report.EndTime = r.root.CurrentTime()
	r.report.ClockTime = r.clock.CurrentTime()
	r.report.Dispatches = make(map[string]uint64)

	for _, name := range r.counter.EngineNames() {
		r.report.Dispatches[name] = r.counter.Count(name)
	}

	if err := r.finishRecording(); err != nil {
		return nil, err
	}

	return &r.report, nil
}

func (r *Runner) finishRecording() error {
	if r.recorder == nil {
		return nil
	}

	if err := r.events.Err(); err != nil {
		return err
	}

	if err := r.samples.Err(); err != nil {
		return err
	}

	return r.recorder.Flush()
}

func (r *Runner) schedule() {
	r.root.AddEvent(timing.MustNewTemporalEvent(0,
		timing.ActionFunc(func(timing.Manager) { r.clock.Start() })))

	for _, p := range r.pairs {
		r.clock.AddEvent(timing.MustNewTemporalEvent(0, r.checkAction(p)))
	}

	for _, p := range r.config.sortedPauses() {
		r.root.AddEvent(timing.MustNewTemporalEvent(p.At,
			timing.ActionFunc(func(timing.Manager) { r.clock.Stop() })))
		r.root.AddEvent(timing.MustNewTemporalEvent(p.At+p.Duration,
			timing.ActionFunc(func(timing.Manager) { r.clock.Start() })))
	}

	r.root.AddEvent(timing.MustNewTemporalEvent(r.config.exteriorHorizon(),
		timing.ActionFunc(func(timing.Manager) { r.root.Stop() })))
}

// checkAction searches for an impact of the pair over the lookahead window.
// A pair stops being checked once an impact is found.
func (r *Runner) checkAction(p Pair) timing.Action {
	return timing.ActionFunc(func(m timing.Manager) {
		now := m.CurrentTime()
		horizon := r.config.Horizon

		if now >= horizon {
			return
		}

		window := geometry.MustNewClosedInterval(
			now, min(now+r.config.Lookahead, horizon))

		r.report.Checks++

		if r.samples != nil {
			r.samples.BeginQuery(fmt.Sprintf("%s@%g", p, now))
		}

		toi, ok := r.detector.TestCollision(
			window, r.band, r.inclusive, r.bodies[p.A], r.bodies[p.B])
		if ok {
			if toi < horizon {
				m.AddEvent(timing.MustNewTemporalEvent(toi, r.impactAction(p)))
			}

			return
		}

		next := now + r.config.CheckPeriod
		if next < horizon {
			m.AddEvent(timing.MustNewTemporalEvent(next, r.checkAction(p)))
		}
	})
}

func (r *Runner) impactAction(p Pair) timing.Action {
	return timing.ActionFunc(func(m timing.Manager) {
		impact := Impact{
			Pair:         p,
			Time:         m.CurrentTime(),
			ExteriorTime: r.root.CurrentTime(),
		}

		r.report.Impacts = append(r.report.Impacts, impact)

		r.logger.Info("impact",
			zap.String("pair", p.String()),
			zap.Float32("time", impact.Time),
			zap.Float32("exterior_time", impact.ExteriorTime),
		)
	})
}
