// systimer/timer.go

// Package systimer adapts a host toolkit's repeating timer to the callback shape the
// interpreter expects: a function called with an opaque context on every tick.
//
// Everything here runs on the UI thread; ticks are delivered by the host's event loop
// and never overlap with other UI work.
package systimer

import "time"

// Callback is invoked on each tick with the context it was armed with.
type Callback func(ctx any)

// HostTimer is the toolkit's repeating timer facility.
type HostTimer interface {
	Start(interval time.Duration)
	Stop()
	// OnFired sets the function called on every expiry of the interval.
	OnFired(fn func())
}

// Timer owns one host timer and forwards its ticks to a callback.
// A timer without a callback is disarmed: ticks do nothing.
type Timer struct {
	host HostTimer
	fn   Callback
	ctx  any
}

// New returns a timer bound to host that calls fn(ctx) on every tick. fn may be nil.
func New(host HostTimer, fn Callback, ctx any) *Timer {
	t := &Timer{host: host, fn: fn, ctx: ctx}
	host.OnFired(t.Tick)
	return t
}

// Arm sets the callback and its context.
func (t *Timer) Arm(fn Callback, ctx any) {
	t.fn = fn
	t.ctx = ctx
}

// Disarm clears the callback; later ticks are no-ops.
func (t *Timer) Disarm() {
	t.fn = nil
	t.ctx = nil
}

// Armed reports whether a callback is set.
func (t *Timer) Armed() bool {
	return t.fn != nil
}

// Callback returns the current callback, nil when disarmed. Owners inspect it to decide
// whether the timer still needs to be unregistered.
func (t *Timer) Callback() Callback {
	return t.fn
}

// Tick handles one expiry of the host timer.
func (t *Timer) Tick() {
	if t.fn != nil {
		t.fn(t.ctx)
	}
}

// Start starts the host timer with the given interval.
func (t *Timer) Start(interval time.Duration) {
	t.host.Start(interval)
}

// Stop stops the host timer. The callback is kept.
func (t *Timer) Stop() {
	t.host.Stop()
}
