// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cart holds the user's in-progress herb selection while they
// compose a formula. One Cart is constructed at application start and
// passed to the views that need it; it lives in memory only and is never
// persisted.
package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pdiddy/herb-atlas/internal/listing"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

// MaxHerbs is the hard size limit of a cart.
const MaxHerbs = 25

// AlertTTL is how long a transient alert stays visible before clearing
// itself. Tests override this to avoid real waits.
var AlertTTL = 2 * time.Second

// ErrCartFull is returned by Add when the cart already holds MaxHerbs.
var ErrCartFull = errors.New("cart is full")

// Cart is a bounded, name-deduplicated herb selection. Safe for
// concurrent use.
type Cart struct {
	mu       sync.Mutex
	herbs    []types.HerbRecord
	keys     map[string]bool
	alert    string
	alertGen int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{keys: make(map[string]bool)}
}

// Add appends a herb to the cart. Re-adding a herb already present (by
// folded name) is a no-op. A full cart is left unchanged: Add raises the
// transient alert and returns ErrCartFull.
func (c *Cart) Add(h types.HerbRecord) error {
	key := listing.FoldName(h.DisplayName())

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys[key] {
		return nil
	}
	if len(c.herbs) >= MaxHerbs {
		c.setAlertLocked(fmt.Sprintf("A formula holds at most %d herbs.", MaxHerbs))
		return ErrCartFull
	}

	c.keys[key] = true
	c.herbs = append(c.herbs, h)
	return nil
}

// Remove drops the herb with the given name. It reports whether anything
// was removed.
func (c *Cart) Remove(name string) bool {
	key := listing.FoldName(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.keys[key] {
		return false
	}
	delete(c.keys, key)
	for i := range c.herbs {
		if listing.FoldName(c.herbs[i].DisplayName()) == key {
			c.herbs = append(c.herbs[:i], c.herbs[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the cart. The compose action calls it implicitly after
// writing a formula.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.herbs = nil
	c.keys = make(map[string]bool)
}

// Herbs returns a copy of the selection in insertion order.
func (c *Cart) Herbs() []types.HerbRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.HerbRecord, len(c.herbs))
	copy(out, c.herbs)
	return out
}

// Len returns the current selection size.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.herbs)
}

// Alert returns the current transient notice, or "" when none is active.
func (c *Cart) Alert() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alert
}

// setAlertLocked installs a transient alert and schedules its clear. A
// newer alert supersedes any pending clear: the generation check keeps a
// stale timer from wiping a message it does not own.
func (c *Cart) setAlertLocked(msg string) {
	c.alert = msg
	c.alertGen++
	gen := c.alertGen

	time.AfterFunc(AlertTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.alertGen == gen {
			c.alert = ""
		}
	})
}
