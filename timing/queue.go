package timing

import "container/heap"

// EventHandle refers to an event added to an engine. Handles stay valid
// until the event is dispatched or removed. After that, using the handle is
// a no-op even if its storage has been reused.
type EventHandle struct {
	slot       uint32
	generation uint32
}

// IsZero tells if the handle was never returned by an engine.
func (h EventHandle) IsZero() bool {
	return h.generation == 0
}

type queueSlot struct {
	event      TemporalEvent
	seq        uint64
	heapIndex  int
	generation uint32
	occupied   bool
}

// eventQueue keeps events in an arena of slots and orders the occupied
// slots in a binary heap by launch time, then by insertion order.
type eventQueue struct {
	slots   []queueSlot
	free    []uint32
	order   []uint32
	nextSeq uint64
}

func newEventQueue() *eventQueue {
	return &eventQueue{}
}

func (q *eventQueue) Len() int {
	return len(q.order)
}

func (q *eventQueue) Less(i, j int) bool {
	a := &q.slots[q.order[i]]
	b := &q.slots[q.order[j]]

	if a.event.launchTime != b.event.launchTime {
		return a.event.launchTime < b.event.launchTime
	}

	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) {
	q.order[i], q.order[j] = q.order[j], q.order[i]
	q.slots[q.order[i]].heapIndex = i
	q.slots[q.order[j]].heapIndex = j
}

// Push is for container/heap only. Use add instead.
func (q *eventQueue) Push(x any) {
	slot := x.(uint32)
	q.slots[slot].heapIndex = len(q.order)
	q.order = append(q.order, slot)
}

// Pop is for container/heap only. Use pop instead.
func (q *eventQueue) Pop() any {
	n := len(q.order)
	slot := q.order[n-1]
	q.order = q.order[:n-1]
	q.slots[slot].heapIndex = -1

	return slot
}

func (q *eventQueue) add(e TemporalEvent) EventHandle {
	var slot uint32

	if n := len(q.free); n > 0 {
		slot = q.free[n-1]
		q.free = q.free[:n-1]
	} else {
		q.slots = append(q.slots, queueSlot{})
		slot = uint32(len(q.slots) - 1)
	}

	s := &q.slots[slot]
	s.event = e
	s.seq = q.nextSeq
	s.generation++
	s.occupied = true
	q.nextSeq++

	heap.Push(q, slot)

	return EventHandle{slot: slot, generation: s.generation}
}

func (q *eventQueue) peek() (TemporalEvent, EventHandle, bool) {
	if len(q.order) == 0 {
		return TemporalEvent{}, EventHandle{}, false
	}

	slot := q.order[0]
	s := &q.slots[slot]

	return s.event, EventHandle{slot: slot, generation: s.generation}, true
}

func (q *eventQueue) pop() (TemporalEvent, EventHandle) {
	slot := heap.Pop(q).(uint32)

	return q.release(slot)
}

func (q *eventQueue) contains(h EventHandle) bool {
	if h.IsZero() || int(h.slot) >= len(q.slots) {
		return false
	}

	s := &q.slots[h.slot]

	return s.occupied && s.generation == h.generation
}

func (q *eventQueue) remove(h EventHandle) (TemporalEvent, bool) {
	if !q.contains(h) {
		return TemporalEvent{}, false
	}

	heap.Remove(q, q.slots[h.slot].heapIndex)
	e, _ := q.release(h.slot)

	return e, true
}

func (q *eventQueue) release(slot uint32) (TemporalEvent, EventHandle) {
	s := &q.slots[slot]
	e := s.event
	h := EventHandle{slot: slot, generation: s.generation}

	s.event = TemporalEvent{}
	s.occupied = false
	q.free = append(q.free, slot)

	return e, h
}
