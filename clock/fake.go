package clock

import (
	"sort"
	"sync"
	"time"
)

type fakeTimer struct {
	id       uint64
	due      time.Time
	interval time.Duration // zero for one-shot timers
	fn       func()
}

// Fake is a synthetic Clock. Time only moves when Advance is called, and due
// callbacks fire in due-time order (registration order on ties), each one
// seeing Now() equal to its own due time.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	nextID uint64
	timers map[uint64]*fakeTimer
}

// NewFake returns a Fake clock set to start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start, timers: make(map[uint64]*fakeTimer)}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Every(interval time.Duration, fn func()) CancelFunc {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return f.add(interval, interval, fn)
}

func (f *Fake) After(delay time.Duration, fn func()) CancelFunc {
	if delay < 0 {
		delay = 0
	}
	return f.add(delay, 0, fn)
}

func (f *Fake) add(delay, interval time.Duration, fn func()) CancelFunc {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	f.timers[id] = &fakeTimer{id: id, due: f.now.Add(delay), interval: interval, fn: fn}
	return func() {
		f.mu.Lock()
		delete(f.timers, id)
		f.mu.Unlock()
	}
}

// Pending reports how many timers are still scheduled.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// Advance moves time forward by d, firing every callback that falls due.
// Callbacks run without the clock lock held, so they may schedule or cancel.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.earliest(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.now = next.due
		if next.interval > 0 {
			next.due = next.due.Add(next.interval)
		} else {
			delete(f.timers, next.id)
		}
		fn := next.fn
		f.mu.Unlock()

		fn()
	}
}

func (f *Fake) earliest(limit time.Time) *fakeTimer {
	due := make([]*fakeTimer, 0, len(f.timers))
	for _, t := range f.timers {
		if !t.due.After(limit) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	return due[0]
}
