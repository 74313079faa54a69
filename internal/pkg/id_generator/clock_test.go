package id_generator

import (
	"sync"
	"time"
)

// fakeClock 手动拨动的时钟，单位毫秒
type fakeClock struct {
	mu sync.Mutex
	ms int64
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{ms: t.UnixMilli()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.UnixMilli(c.ms)
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms = t.UnixMilli()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms += d.Milliseconds()
}
