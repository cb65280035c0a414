package timing

import (
	"fmt"

	"github.com/sarchlab/ccd/hooking"
)

// engineBase holds the pending events of an engine and implements the
// Manager operations on top of them. Concrete engines provide the clock and
// react to changes of the earliest pending event.
type engineBase struct {
	hooking.HookableBase

	name   string
	domain hooking.Hookable
	queue  *eventQueue
	view   managerView

	now              func() VTimeInSec
	onNearestChanged func()
}

func newEngineBase(
	name string,
	domain hooking.Hookable,
	now func() VTimeInSec,
	onNearestChanged func(),
) *engineBase {
	b := &engineBase{
		name:             name,
		domain:           domain,
		queue:            newEventQueue(),
		now:              now,
		onNearestChanged: onNearestChanged,
	}
	b.view = managerView{b: b}

	return b
}

// Name returns the name of the engine.
func (b *engineBase) Name() string {
	return b.name
}

// PendingEvents returns the number of pending events.
func (b *engineBase) PendingEvents() int {
	return b.queue.Len()
}

// RemainingEvents tells if any event is pending.
func (b *engineBase) RemainingEvents() bool {
	return b.queue.Len() > 0
}

// NearestEventTime returns the launch time of the earliest pending event.
func (b *engineBase) NearestEventTime() VTimeInSec {
	e, _, ok := b.queue.peek()
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNoPendingEvent, b.name))
	}

	return e.launchTime
}

// AddEvent schedules an event no earlier than the current time.
func (b *engineBase) AddEvent(e TemporalEvent) EventHandle {
	if isNilAction(e.action) {
		panic(fmt.Errorf("%w: %s", ErrNilAction, b.name))
	}

	now := b.now()
	if e.launchTime < now {
		panic(fmt.Errorf("%w: %s, event @ %.10f, now %.10f",
			ErrEventInPast, b.name, e.launchTime, now))
	}

	prev, _, hadPrev := b.queue.peek()
	h := b.queue.add(e)

	b.invokeHook(HookPosEventAdded, e, h)

	if !hadPrev || e.launchTime <= prev.launchTime {
		b.nearestChanged()
	}

	return h
}

// RemoveEvent cancels a pending event.
func (b *engineBase) RemoveEvent(h EventHandle) {
	_, nearest, _ := b.queue.peek()

	e, ok := b.queue.remove(h)
	if !ok {
		return
	}

	b.invokeHook(HookPosEventRemoved, e, h)

	if nearest == h {
		b.nearestChanged()
	}
}

// LaunchNearestEvent removes the earliest pending event and fires it. The
// action may add and remove events, including at the current time.
func (b *engineBase) LaunchNearestEvent() {
	if b.queue.Len() == 0 {
		panic(fmt.Errorf("%w: %s", ErrNoPendingEvent, b.name))
	}

	e, h := b.queue.pop()

	b.invokeHook(HookPosBeforeEvent, e, h)
	e.action.Fire(b.view)
	b.invokeHook(HookPosAfterEvent, e, h)
}

func (b *engineBase) nearestChanged() {
	b.invokeHook(HookPosNearestChanged, nil, nil)

	if b.onNearestChanged != nil {
		b.onNearestChanged()
	}
}

func (b *engineBase) invokeHook(pos *hooking.HookPos, item, detail any) {
	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(hooking.HookCtx{
		Domain: b.domain,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}
