// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "testing"

func TestCacheColdMiss(t *testing.T) {
	var c Cache
	if _, ok := c.get(10); ok {
		t.Fatalf("a zero-value Cache should start cold")
	}
}

func TestCacheHitAtSameHeight(t *testing.T) {
	var c Cache
	c.set(10, 3.5)

	v, ok := c.get(10)
	if !ok || v != 3.5 {
		t.Fatalf("get(10) = (%v, %v), want (3.5, true)", v, ok)
	}
}

func TestCacheMissAtDifferentHeight(t *testing.T) {
	var c Cache
	c.set(10, 3.5)

	if _, ok := c.get(11); ok {
		t.Fatalf("get at a different height should miss")
	}
}

func TestCacheOverwrite(t *testing.T) {
	var c Cache
	c.set(10, 3.5)
	c.set(11, 9.0)

	if _, ok := c.get(10); ok {
		t.Fatalf("setting a new height should invalidate the old one")
	}
	v, ok := c.get(11)
	if !ok || v != 9.0 {
		t.Fatalf("get(11) = (%v, %v), want (9.0, true)", v, ok)
	}
}
