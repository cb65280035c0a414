package timing

import (
	"fmt"
	"math"
)

// A NestedEngine runs a virtual clock inside a container manager. While
// running, its clock advances with the container's; while idle, it is
// frozen. The nested engine keeps a single heartbeat event in the container
// that fires when its own earliest event is due, so the container does not
// need to know about the nested events.
type NestedEngine struct {
	*engineBase

	container Manager
	running   bool

	exteriorReference VTimeInSec
	interiorStart     VTimeInSec

	heartbeat    EventHandle
	hasHeartbeat bool
}

// NewNestedEngine creates an idle engine whose clock reads interiorStart.
func NewNestedEngine(
	name string,
	container Manager,
	interiorStart VTimeInSec,
) *NestedEngine {
	if container == nil {
		panic("timing: nested engine requires a container")
	}

	e := &NestedEngine{
		container:     container,
		interiorStart: interiorStart,
	}
	e.engineBase = newEngineBase(name, e, e.CurrentTime, e.rescheduleHeartbeat)

	return e
}

// CurrentTime returns the interior time. While running, it is the interior
// time at start plus the container time elapsed since start.
func (e *NestedEngine) CurrentTime() VTimeInSec {
	if !e.running {
		return e.interiorStart
	}

	return e.interiorStart + (e.container.CurrentTime() - e.exteriorReference)
}

// IsRunning tells if the clock is advancing.
func (e *NestedEngine) IsRunning() bool {
	return e.running
}

// Start lets the interior clock advance with the container clock. The
// container clock must be finite, so a root container must already be
// running.
func (e *NestedEngine) Start() {
	if e.running {
		panic(fmt.Errorf("%w: %s", ErrAlreadyRunning, e.name))
	}

	now := e.container.CurrentTime()
	if math.IsInf(float64(now), 0) || math.IsNaN(float64(now)) {
		panic(fmt.Errorf("%w: container of %s reads %v",
			ErrNonFiniteTime, e.name, now))
	}

	e.exteriorReference = now
	e.running = true
	e.scheduleHeartbeat()
}

// Stop freezes the interior clock.
func (e *NestedEngine) Stop() {
	if !e.running {
		panic(fmt.Errorf("%w: %s", ErrNotRunning, e.name))
	}

	e.cancelHeartbeat()
	e.interiorStart = e.CurrentTime()
	e.running = false
}

// Remap sets the frozen interior clock. The engine must be idle and the new
// time must not pass the earliest pending event.
func (e *NestedEngine) Remap(interiorTime VTimeInSec) {
	if e.running {
		panic(fmt.Errorf("%w: %s cannot be remapped", ErrAlreadyRunning, e.name))
	}

	if e.RemainingEvents() && interiorTime > e.NearestEventTime() {
		panic(fmt.Errorf("%w: %s to %.10f, nearest event @ %.10f",
			ErrInvalidRemap, e.name, interiorTime, e.NearestEventTime()))
	}

	e.interiorStart = interiorTime
}

// ExteriorTime converts an interior time to the container time at which the
// running engine reaches it.
func (e *NestedEngine) ExteriorTime(interior VTimeInSec) VTimeInSec {
	if !e.running {
		panic(fmt.Errorf("%w: %s has no exterior mapping", ErrNotRunning, e.name))
	}

	return e.exteriorReference + (interior - e.interiorStart)
}

func (e *NestedEngine) scheduleHeartbeat() {
	if !e.running || !e.RemainingEvents() {
		return
	}

	at := e.ExteriorTime(e.NearestEventTime())
	if now := e.container.CurrentTime(); at < now {
		at = now
	}

	e.heartbeat = e.container.AddEvent(
		MustNewTemporalEvent(at, heartbeat{engine: e}))
	e.hasHeartbeat = true
}

func (e *NestedEngine) cancelHeartbeat() {
	if !e.hasHeartbeat {
		return
	}

	e.container.RemoveEvent(e.heartbeat)
	e.hasHeartbeat = false
}

func (e *NestedEngine) rescheduleHeartbeat() {
	if !e.running {
		return
	}

	e.cancelHeartbeat()
	e.scheduleHeartbeat()
}

// heartbeat fires in the container and dispatches the nested engine's
// earliest event.
type heartbeat struct {
	engine *NestedEngine
}

func (h heartbeat) Fire(m Manager) {
	e := h.engine
	e.hasHeartbeat = false

	// Re-anchor so that the interior clock reads exactly the launch time of
	// the event being dispatched.
	e.interiorStart = e.NearestEventTime()
	e.exteriorReference = m.CurrentTime()

	e.LaunchNearestEvent()

	e.rescheduleHeartbeat()
}
