// Package clock is the only view of time the booking simulators have.
// Production code uses Real; tests drive Fake by hand.
package clock

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled callback. Calling it more than once is safe.
type CancelFunc func()

// Clock schedules callbacks and reports the current time.
type Clock interface {
	Now() time.Time
	// Every runs fn repeatedly, interval apart, until cancelled.
	Every(interval time.Duration, fn func()) CancelFunc
	// After runs fn once after delay unless cancelled first.
	After(delay time.Duration, fn func()) CancelFunc
}

// Real is a Clock backed by the runtime timers. Callbacks of one Every
// registration run sequentially on a dedicated goroutine.
type Real struct{}

// NewReal returns the wall clock.
func NewReal() Real { return Real{} }

func (Real) Now() time.Time { return time.Now() }

func (Real) Every(interval time.Duration, fn func()) CancelFunc {
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A stop that raced with the tick wins.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (Real) After(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
