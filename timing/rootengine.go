package timing

import (
	"fmt"
	"math"
)

// A RootEngine dispatches its events one after another, setting its clock to
// the launch time of each event before firing it. Run blocks until an action
// calls Stop.
type RootEngine struct {
	*engineBase

	time    VTimeInSec
	running bool
}

// NewRootEngine creates an idle RootEngine whose clock reads -Inf until the
// first dispatch.
func NewRootEngine(name string) *RootEngine {
	e := &RootEngine{
		time: VTimeInSec(math.Inf(-1)),
	}
	e.engineBase = newEngineBase(name, e, e.CurrentTime, nil)

	return e
}

// CurrentTime returns the launch time of the event dispatched most recently.
func (e *RootEngine) CurrentTime() VTimeInSec {
	return e.time
}

// IsRunning tells if Run is in progress and Stop has not been called.
func (e *RootEngine) IsRunning() bool {
	return e.running
}

// Run dispatches events in launch time order until Stop is called. The engine
// must be idle and have at least one pending event. Running out of events
// before Stop is called is a fatal error of the simulation that drives the
// engine.
func (e *RootEngine) Run() {
	if e.running {
		panic(fmt.Errorf("%w: %s", ErrAlreadyRunning, e.name))
	}

	if !e.RemainingEvents() {
		panic(fmt.Errorf("%w: %s cannot run", ErrNoPendingEvent, e.name))
	}

	e.running = true

	for e.running {
		if !e.RemainingEvents() {
			panic(fmt.Errorf("%w: %s @ %.10f", ErrStarved, e.name, e.time))
		}

		e.time = e.NearestEventTime()
		e.LaunchNearestEvent()
	}
}

// Stop makes Run return after the event being dispatched completes.
func (e *RootEngine) Stop() {
	if !e.running {
		panic(fmt.Errorf("%w: %s", ErrNotRunning, e.name))
	}

	e.running = false
}
