// systimer/host.go

package systimer

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// TickerHost is a HostTimer backed by time.Ticker. Each expiry is handed to the
// dispatcher, which by default queues it on the fyne event loop.
type TickerHost struct {
	mu       sync.Mutex
	dispatch func(func())
	fired    func()
	stop     chan struct{}
}

// NewTickerHost returns a host delivering ticks on the fyne UI thread.
func NewTickerHost() *TickerHost {
	return NewTickerHostWithDispatcher(fyne.Do)
}

// NewTickerHostWithDispatcher returns a host delivering ticks through dispatch.
func NewTickerHostWithDispatcher(dispatch func(func())) *TickerHost {
	return &TickerHost{dispatch: dispatch}
}

// OnFired sets the tick handler.
func (h *TickerHost) OnFired(fn func()) {
	h.mu.Lock()
	h.fired = fn
	h.mu.Unlock()
}

// Start (re)starts the ticker. A non-positive interval only stops it.
func (h *TickerHost) Start(interval time.Duration) {
	h.Stop()
	if interval <= 0 {
		return
	}

	h.mu.Lock()
	stop := make(chan struct{})
	h.stop = stop
	h.mu.Unlock()

	go h.run(interval, stop)
}

// Stop stops the ticker. Ticks already queued but not yet delivered are dropped.
// Stopping a stopped host is a no-op.
func (h *TickerHost) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stop != nil {
		close(h.stop)
		h.stop = nil
	}
}

// running reports whether the ticker is started.
func (h *TickerHost) running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stop != nil
}

func (h *TickerHost) run(interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.mu.Lock()
			fn := h.fired
			h.mu.Unlock()
			if fn == nil {
				continue
			}
			h.dispatch(func() {
				select {
				case <-stop:
				default:
					fn()
				}
			})
		}
	}
}
