package timing

import "errors"

var (
	// ErrNonFiniteTime is returned when an event time is NaN or infinite.
	ErrNonFiniteTime = errors.New("timing: event time is not finite")

	// ErrNilAction is returned when an event has no action.
	ErrNilAction = errors.New("timing: event action is nil")

	// ErrEventInPast is the panic value when an event is scheduled earlier
	// than the current time.
	ErrEventInPast = errors.New("timing: event is earlier than current time")

	// ErrNoPendingEvent is the panic value when the earliest event of an
	// empty queue is requested.
	ErrNoPendingEvent = errors.New("timing: no pending event")

	// ErrAlreadyRunning is the panic value when starting a running engine.
	ErrAlreadyRunning = errors.New("timing: engine is already running")

	// ErrNotRunning is the panic value when stopping an idle engine.
	ErrNotRunning = errors.New("timing: engine is not running")

	// ErrStarved is the panic value when a running root engine runs out of
	// events without having been stopped.
	ErrStarved = errors.New("timing: running engine has no pending event")

	// ErrInvalidRemap is the panic value when a nested engine clock would be
	// moved past its own pending events.
	ErrInvalidRemap = errors.New("timing: remap passes pending events")
)
