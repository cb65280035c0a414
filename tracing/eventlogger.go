// Package tracing observes engines and time-of-impact searches, and writes
// what it sees to a logger or a data recorder.
package tracing

import (
	"github.com/sarchlab/ccd/hooking"
	"github.com/sarchlab/ccd/timing"
	"go.uber.org/zap"
)

// EventLogger is a hook that logs every event dispatch at debug level.
type EventLogger struct {
	logger *zap.Logger
}

// NewEventLogger returns a new EventLogger that writes into the logger.
func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != timing.HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(timing.TemporalEvent)
	if !ok {
		return
	}

	fields := []zap.Field{
		zap.String("event", evt.ID()),
		zap.Float32("time", evt.Time()),
	}

	if engine, ok := ctx.Domain.(timing.Engine); ok {
		fields = append(fields,
			zap.String("engine", engine.Name()),
			zap.Int("pending", engine.PendingEvents()),
		)
	}

	h.logger.Debug("dispatch", fields...)
}
