package titles

import (
	"context"
	"time"
)

// DefaultInterval is how long each title stays on screen.
const DefaultInterval = 3 * time.Second

// Ticker is the clock a mounted cycle listens to.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type mountOptions struct {
	newTicker func(time.Duration) Ticker
}

// Option configures Mount.
type Option func(*mountOptions)

// WithTicker replaces the wall clock, mostly for tests.
func WithTicker(fn func(time.Duration) Ticker) Option {
	return func(o *mountOptions) {
		if fn != nil {
			o.newTicker = fn
		}
	}
}

// Mount is a running cycle bound to the lifetime of a view.
type Mount struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Mount starts advancing the cycle every interval until ctx is done or
// Unmount is called. onTick runs on the timer goroutine after each
// advance and receives the mount's context; it must not call Unmount.
func (c *Cycle) Mount(ctx context.Context, interval time.Duration, onTick func(context.Context, Tick), opts ...Option) *Mount {
	o := mountOptions{newTicker: newTimeTicker}
	for _, opt := range opts {
		opt(&o)
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	m := &Mount{cancel: cancel, done: make(chan struct{})}
	ticker := o.newTicker(interval)

	go func() {
		defer close(m.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				// select picks randomly when both are ready.
				if ctx.Err() != nil {
					return
				}
				t := c.Advance()
				if onTick != nil {
					onTick(ctx, t)
				}
			}
		}
	}()

	return m
}

// Unmount stops the timer and waits for it to exit. Safe to call more than once.
func (m *Mount) Unmount() {
	m.cancel()
	<-m.done
}

// Done is closed once the timer has stopped.
func (m *Mount) Done() <-chan struct{} {
	return m.done
}
