package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Explosions and other time-based effects read it so they freeze with the game
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider
	origin time.Time // Source time at creation, also the game time epoch

	paused      bool
	pauseStart  time.Time     // Source time when the current pause began
	pausedTotal time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock over source; nil means system time
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = SystemTimeProvider{}
	}
	return &PausableClock{
		source: source,
		origin: source.Now(),
	}
}

// Now returns current game time: real elapsed minus paused time since creation
func (c *PausableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	at := c.pauseStart
	if !c.paused {
		at = c.source.Now()
	}
	return c.origin.Add(at.Sub(c.origin) - c.pausedTotal)
}

// Pause freezes game time; no-op when already paused
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.source.Now()
}

// Resume continues game time from where it was frozen; no-op when running
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.pausedTotal += c.source.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (c *PausableClock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *PausableClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// PausedTotal returns cumulative pause time including a pause in progress
func (c *PausableClock) PausedTotal() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.pausedTotal
	if c.paused {
		total += c.source.Now().Sub(c.pauseStart)
	}
	return total
}
