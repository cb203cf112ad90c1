// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"sync"

	"github.com/bitmark-inc/tokenledger/constants"
)

// the longest lifetime the host permits for any record, the maximum
// allowed tick advances together with the clock
const maxEntryLifetime = 180 * constants.DayInLedgers

// Clock - manually advanced logical clock
//
// hosted deployments read the real ledger sequence number instead,
// this implementation drives simulations and tests
type Clock struct {
	sync.RWMutex
	current uint64
}

// NewClock - create a clock at the given tick
func NewClock(current uint64) *Clock {
	return &Clock{
		current: current,
	}
}

// CurrentTick - the current ledger sequence number
func (c *Clock) CurrentTick() uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.current
}

// MaxAllowedTick - the highest tick any record may live until
func (c *Clock) MaxAllowedTick() uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.current + maxEntryLifetime
}

// Advance - move the clock forward
func (c *Clock) Advance(ticks uint64) {
	c.Lock()
	c.current += ticks
	c.Unlock()
}

// Set - jump the clock, never backwards
func (c *Clock) Set(tick uint64) {
	c.Lock()
	if tick > c.current {
		c.current = tick
	}
	c.Unlock()
}
