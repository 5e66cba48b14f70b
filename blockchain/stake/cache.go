// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "sync"

// Cache holds the two process-wide mutable scalars GetAverageStakeWeight
// depends on: the height the cached value was computed at, and the value
// itself. The original source models this as a pair of file-scope static
// variables; reshaped here as an explicit value so a StakeEngine can own
// one per node process instead of relying on a package-level global.
//
// A Cache's zero value is ready to use and starts cold.
//
// The cache is an optimization only: a stale or racily-cleared cache
// changes performance, never consensus, so the mutex below only needs to
// keep the two fields consistent with each other, not linearize with any
// particular caller's view of chain height.
type Cache struct {
	mu        sync.Mutex
	height    int64
	hasHeight bool
	value     float64
}

// get returns the cached value and true if height matches the last height
// the cache was populated at.
func (c *Cache) get(height int64) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasHeight && c.height == height {
		return c.value, true
	}
	return 0, false
}

// set populates the cache with value at height.
func (c *Cache) set(height int64, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = height
	c.hasHeight = true
	c.value = value
}
