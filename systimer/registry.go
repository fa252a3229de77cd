// systimer/registry.go

package systimer

// Registry creates timers and tracks them until they are deleted, so that the owner can
// stop everything at shutdown.
type Registry struct {
	newHost func() HostTimer
	timers  map[*Timer]struct{}
}

// NewRegistry returns a registry creating hosts with newHost.
func NewRegistry(newHost func() HostTimer) *Registry {
	return &Registry{
		newHost: newHost,
		timers:  make(map[*Timer]struct{}),
	}
}

// Create returns a new tracked timer calling fn(ctx) on every tick. The timer is not started.
func (r *Registry) Create(fn Callback, ctx any) *Timer {
	t := New(r.newHost(), fn, ctx)
	r.timers[t] = struct{}{}
	return t
}

// Delete stops t and forgets it. It reports whether a callback was still armed and
// therefore had to be unregistered.
func (r *Registry) Delete(t *Timer) bool {
	if _, ok := r.timers[t]; !ok {
		return false
	}
	t.Stop()
	delete(r.timers, t)

	if t.Callback() == nil {
		return false
	}
	t.Disarm()
	return true
}

// StopAll deletes every tracked timer.
func (r *Registry) StopAll() {
	for t := range r.timers {
		r.Delete(t)
	}
}

// Len returns the number of tracked timers.
func (r *Registry) Len() int {
	return len(r.timers)
}
