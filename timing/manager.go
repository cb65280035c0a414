package timing

import "github.com/sarchlab/ccd/hooking"

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// A Manager is what event actions see of the engine that dispatches them.
type Manager interface {
	TimeTeller

	// NearestEventTime returns the launch time of the earliest pending
	// event. It panics if there is none.
	NearestEventTime() VTimeInSec

	// RemainingEvents tells if any event is pending.
	RemainingEvents() bool

	// AddEvent schedules an event. It panics if the event is earlier than
	// the current time.
	AddEvent(e TemporalEvent) EventHandle

	// RemoveEvent cancels a pending event. Unknown or stale handles are
	// ignored.
	RemoveEvent(h EventHandle)
}

// An Engine owns a queue of pending events.
type Engine interface {
	Manager
	hooking.Hookable

	// Name returns the name of the engine.
	Name() string

	// PendingEvents returns the number of pending events.
	PendingEvents() int

	// IsRunning tells if the engine is advancing its clock.
	IsRunning() bool
}

// managerView exposes only the Manager methods of an engine, so that actions
// cannot reach into the engine.
type managerView struct {
	b *engineBase
}

func (v managerView) CurrentTime() VTimeInSec {
	return v.b.now()
}

func (v managerView) NearestEventTime() VTimeInSec {
	return v.b.NearestEventTime()
}

func (v managerView) RemainingEvents() bool {
	return v.b.RemainingEvents()
}

func (v managerView) AddEvent(e TemporalEvent) EventHandle {
	return v.b.AddEvent(e)
}

func (v managerView) RemoveEvent(h EventHandle) {
	v.b.RemoveEvent(h)
}
