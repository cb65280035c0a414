package tracing

import (
	"fmt"

	"github.com/sarchlab/ccd/datarecording"
	"github.com/sarchlab/ccd/hooking"
	"github.com/sarchlab/ccd/timing"
)

// EventTableName is the table that EventRecorder writes to.
const EventTableName = "engine_events"

type eventEntry struct {
	Engine  string
	EventID string
	Pos     string
	Time    float32
	Now     float32
	Pending int
}

// EventRecorder is a hook that records every addition, removal, and
// dispatch of events into a data recorder.
type EventRecorder struct {
	recorder datarecording.DataRecorder
	err      error
}

// NewEventRecorder creates the event table and returns the hook.
func NewEventRecorder(
	recorder datarecording.DataRecorder,
) (*EventRecorder, error) {
	if err := recorder.CreateTable(EventTableName, eventEntry{}); err != nil {
		return nil, err
	}

	return &EventRecorder{recorder: recorder}, nil
}

// Err returns the first error met while recording.
func (r *EventRecorder) Err() error {
	return r.err
}

// Func records the event.
func (r *EventRecorder) Func(ctx hooking.HookCtx) {
	evt, ok := ctx.Item.(timing.TemporalEvent)
	if !ok {
		return
	}

	engine, ok := ctx.Domain.(timing.Engine)
	if !ok {
		return
	}

	err := r.recorder.InsertData(EventTableName, eventEntry{
		Engine:  engine.Name(),
		EventID: evt.ID(),
		Pos:     ctx.Pos.Name,
		Time:    evt.Time(),
		Now:     engine.CurrentTime(),
		Pending: engine.PendingEvents(),
	})
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("tracing: record event %s: %w", evt.ID(), err)
	}
}
