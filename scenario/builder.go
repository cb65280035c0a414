package scenario

import (
	"fmt"

	"github.com/sarchlab/ccd/collision"
	"github.com/sarchlab/ccd/datarecording"
	"github.com/sarchlab/ccd/geometry"
	"github.com/sarchlab/ccd/kinematics"
	"github.com/sarchlab/ccd/timing"
	"github.com/sarchlab/ccd/tracing"
	"go.uber.org/zap"
)

// Builder builds Runners.
type Builder struct {
	logger   *zap.Logger
	recorder datarecording.DataRecorder
}

// MakeBuilder creates a builder that neither logs nor records.
func MakeBuilder() Builder {
	return Builder{
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger that receives impacts and, at debug level,
// every event dispatch.
func (b Builder) WithLogger(logger *zap.Logger) Builder {
	b.logger = logger
	return b
}

// WithRecorder sets the recorder that receives the event dispatches and the
// separations sampled by the checks.
func (b Builder) WithRecorder(recorder datarecording.DataRecorder) Builder {
	b.recorder = recorder
	return b
}

// Build creates a Runner for the scenario.
func (b Builder) Build(c *Config) (*Runner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		config:    c,
		logger:    b.logger,
		recorder:  b.recorder,
		bodies:    make(map[string]kinematics.Body),
		counter:   tracing.NewDispatchCounter(),
		inclusive: c.IsInclusive(),
	}

	if err := b.buildDetector(r); err != nil {
		return nil, err
	}

	if err := b.buildRecorders(r); err != nil {
		return nil, err
	}

	for _, bc := range c.Bodies {
		r.bodies[bc.Name] = buildBody(bc)
	}

	for _, p := range c.Pairs {
		r.pairs = append(r.pairs, Pair{A: p[0], B: p[1]})
	}

	b.buildEngines(r)
	r.schedule()

	return r, nil
}

func (b Builder) buildDetector(r *Runner) error {
	band, err := collision.ParseDistanceBand(r.config.Band)
	if err != nil {
		return fmt.Errorf("%w: band: %v", ErrInvalidConfig, err)
	}

	r.band = band

	detector, err := r.config.detector()
	if err != nil {
		return fmt.Errorf("%w: detector: %v", ErrInvalidConfig, err)
	}

	r.detector = detector

	return nil
}

func (b Builder) buildRecorders(r *Runner) error {
	if b.recorder == nil {
		b.configureDistanceDetector(r, nil)
		return nil
	}

	events, err := tracing.NewEventRecorder(b.recorder)
	if err != nil {
		return err
	}

	samples, err := tracing.NewSampleRecorder(b.recorder)
	if err != nil {
		return err
	}

	r.events = events
	r.samples = samples
	b.configureDistanceDetector(r, samples)

	return nil
}

func (b Builder) configureDistanceDetector(r *Runner, probe collision.Probe) {
	d, ok := r.detector.(*collision.DistancePairDetector)
	if !ok {
		return
	}

	if r.config.MaxIterations > 0 {
		d = d.WithMaxIterations(r.config.MaxIterations)
	}

	if probe != nil {
		d = d.WithProbe(probe)
	}

	r.detector = d
}

func (b Builder) buildEngines(r *Runner) {
	r.root = timing.NewRootEngine("Root")
	r.clock = timing.NewNestedEngine("CollisionClock", r.root, 0)

	logger := tracing.NewEventLogger(b.logger)

	for _, e := range []timing.Engine{r.root, r.clock} {
		e.AcceptHook(r.counter)
		e.AcceptHook(logger)

		if r.events != nil {
			e.AcceptHook(r.events)
		}
	}
}

func buildBody(c BodyConfig) kinematics.Body {
	builder := kinematics.MakeLinearBodyBuilder().
		WithShape(geometry.Circle{
			Center: geometry.Vec2{X: c.Position[0], Y: c.Position[1]},
			Radius: c.Radius,
		}).
		WithVelocity(geometry.Vec2{X: c.Velocity[0], Y: c.Velocity[1]}).
		WithStartTime(c.Start)

	if c.End != nil {
		builder = builder.WithEndTime(*c.End)
	}

	return builder.Build()
}
