// Package hooking lets observers attach to the points at which an engine
// adds, removes, and dispatches events.
package hooking

// HookPos names a position at which hooks are invoked.
type HookPos struct {
	Name string
}

// HookCtx describes the site at which a hook is invoked.
type HookCtx struct {
	// Domain is the object that invokes the hook.
	Domain Hookable

	// Pos is where in the domain the hook is invoked.
	Pos *HookPos

	// Item is the object being processed, typically an event.
	Item any

	// Detail carries position-specific extra information.
	Detail any
}

// Hookable defines an object that accepts hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// RemoveHook unregisters a hook. Removing an unknown hook does nothing.
	RemoveHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int
}

//go:generate mockgen -destination "mock_hooking_test.go" -package $GOPACKAGE -write_package_comment=false github.com/sarchlab/ccd/hooking Hook

// Hook is invoked by a hookable object.
type Hook interface {
	// Func determines what to do if the hook is invoked.
	Func(ctx HookCtx)
}

// HookableBase implements Hookable. The zero value is ready to use.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// AcceptHook registers a hook. Registering the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, existing := range h.hookList {
		if existing == hook {
			panic("hooking: duplicated hook")
		}
	}

	h.hookList = append(h.hookList, hook)
}

// RemoveHook unregisters a hook.
func (h *HookableBase) RemoveHook(hook Hook) {
	for i, existing := range h.hookList {
		if existing == hook {
			h.hookList = append(h.hookList[:i:i], h.hookList[i+1:]...)
			return
		}
	}
}

// InvokeHook calls all registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}
