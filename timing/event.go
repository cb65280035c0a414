// Package timing provides discrete-event engines. A RootEngine drives a
// blocking simulation clock; NestedEngines run independent, pausable clocks
// inside another engine.
package timing

import (
	"fmt"
	"math"

	"github.com/sarchlab/ccd/hooking"
	"github.com/sarchlab/ccd/id"
)

// VTimeInSec is a time in the simulated world, in seconds.
type VTimeInSec = float32

// An Action is what happens when an event is dispatched. It receives the
// manager of the engine that dispatches it.
type Action interface {
	Fire(m Manager)
}

// ActionFunc adapts a function into an Action.
type ActionFunc func(m Manager)

// Fire calls f.
func (f ActionFunc) Fire(m Manager) {
	f(m)
}

// TemporalEvent is an action scheduled for a launch time.
type TemporalEvent struct {
	id         string
	launchTime VTimeInSec
	action     Action
}

// NewTemporalEvent creates an event. The time must be finite.
func NewTemporalEvent(t VTimeInSec, action Action) (TemporalEvent, error) {
	if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
		return TemporalEvent{}, fmt.Errorf("%w: %v", ErrNonFiniteTime, t)
	}

	if isNilAction(action) {
		return TemporalEvent{}, ErrNilAction
	}

	return TemporalEvent{
		id:         id.Generate(),
		launchTime: t,
		action:     action,
	}, nil
}

// MustNewTemporalEvent is like NewTemporalEvent but panics on error.
func MustNewTemporalEvent(t VTimeInSec, action Action) TemporalEvent {
	e, err := NewTemporalEvent(t, action)
	if err != nil {
		panic(err)
	}

	return e
}

// ID returns the unique ID of the event.
func (e TemporalEvent) ID() string {
	return e.id
}

// Time returns the launch time.
func (e TemporalEvent) Time() VTimeInSec {
	return e.launchTime
}

// Action returns what happens when the event is dispatched.
func (e TemporalEvent) Action() Action {
	return e.action
}

// Before tells if e is ordered before o by launch time.
func (e TemporalEvent) Before(o TemporalEvent) bool {
	return e.launchTime < o.launchTime
}

func isNilAction(a Action) bool {
	if a == nil {
		return true
	}

	f, ok := a.(ActionFunc)

	return ok && f == nil
}

var (
	// HookPosBeforeEvent is invoked right before an event is fired.
	HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

	// HookPosAfterEvent is invoked right after an event is fired.
	HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

	// HookPosEventAdded is invoked after an event is added.
	HookPosEventAdded = &hooking.HookPos{Name: "EventAdded"}

	// HookPosEventRemoved is invoked after an event is removed without being
	// fired.
	HookPosEventRemoved = &hooking.HookPos{Name: "EventRemoved"}

	// HookPosNearestChanged is invoked when the earliest pending event may
	// have changed because of an addition or removal.
	HookPosNearestChanged = &hooking.HookPos{Name: "NearestChanged"}
)
