package tracing

import (
	"github.com/sarchlab/ccd/hooking"
	"github.com/sarchlab/ccd/timing"
)

// DispatchCounter counts the events dispatched by each engine it is attached
// to.
type DispatchCounter struct {
	names  []string
	counts map[string]uint64
}

// NewDispatchCounter creates a DispatchCounter.
func NewDispatchCounter() *DispatchCounter {
	return &DispatchCounter{counts: make(map[string]uint64)}
}

// Func counts dispatches.
func (c *DispatchCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != timing.HookPosAfterEvent {
		return
	}

	engine, ok := ctx.Domain.(timing.Engine)
	if !ok {
		return
	}

	name := engine.Name()
	if _, seen := c.counts[name]; !seen {
		c.names = append(c.names, name)
	}

	c.counts[name]++
}

// EngineNames returns the engines seen, in order of first dispatch.
func (c *DispatchCounter) EngineNames() []string {
	return c.names
}

// Count returns the number of dispatches of the named engine.
func (c *DispatchCounter) Count(engine string) uint64 {
	return c.counts[engine]
}
