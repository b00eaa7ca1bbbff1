package clock

import (
	"sync"
	"time"
)

//MemClock is a deterministic clock that advances by a fixed step on every read
type MemClock struct {
	curr time.Time
	step time.Duration
	mu   sync.Mutex
}

//NewMemClock creates a clock that first reads 'start' and moves 'step' forward
//after each read
func NewMemClock(start time.Time, step time.Duration) *MemClock {
	return &MemClock{curr: start.UTC(), step: step}
}

//Now returns the current simulated time and advances the clock
func (c *MemClock) Now() (t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t = c.curr
	c.curr = c.curr.Add(c.step)
	return
}

//Set moves the clock to a specific time
func (c *MemClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.curr = t.UTC()
}
