// Package fx holds the last known USD/KRW rate for unit conversions.
package fx

import "sync"

// DefaultUSDKRW is used until a real rate has been observed.
const DefaultUSDKRW = 1400.0

// Cache is a single-slot store for the USD/KRW rate. Collection runs write
// it, normalization reads it when no fresher rate is available.
type Cache struct {
	mu   sync.RWMutex
	rate float64
}

// NewCache creates a cache seeded with the default rate.
func NewCache() *Cache {
	return &Cache{rate: DefaultUSDKRW}
}

// Set stores the rate. Non-positive values are ignored.
func (c *Cache) Set(rate float64) {
	if rate <= 0 {
		return
	}
	c.mu.Lock()
	c.rate = rate
	c.mu.Unlock()
}

// Get returns the last stored rate.
func (c *Cache) Get() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}
