// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// an in-memory record with its live-until tick
//
// liveUntil of zero means the record never expires (instance tier)
type memItem struct {
	value     []byte
	liveUntil uint64
}

// MemStore - tick-expiring in-memory tiered store
type MemStore struct {
	sync.RWMutex
	clock Clock
	tiers [3]map[string]memItem
}

// NewMemStore - create an empty store bound to a clock
func NewMemStore(clock Clock) *MemStore {
	m := &MemStore{
		clock: clock,
	}
	for i := range m.tiers {
		m.tiers[i] = make(map[string]memItem)
	}
	return m
}

// a record is live through its live-until tick inclusive
func (m *MemStore) expired(item memItem) bool {
	return 0 != item.liveUntil && item.liveUntil < m.clock.CurrentTick()
}

func (m *MemStore) initialLiveUntil(tier Tier) uint64 {
	switch tier {
	case Persistent:
		return m.clock.CurrentTick() + InitialPersistentLifetime
	case Temporary:
		return m.clock.CurrentTick() + InitialTemporaryLifetime
	default:
		return 0
	}
}

// Get - fetch a record, nil if missing or expired
func (m *MemStore) Get(tier Tier, key []byte) []byte {
	m.RLock()
	defer m.RUnlock()

	item, ok := m.tiers[tier][string(key)]
	if !ok || m.expired(item) {
		return nil
	}
	value := make([]byte, len(item.value))
	copy(value, item.value)
	return value
}

// Put - store a record, assigning the tier's initial lifetime
//
// overwriting a record resets its lifetime
func (m *MemStore) Put(tier Tier, key []byte, value []byte) {
	m.Lock()
	defer m.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.tiers[tier][string(key)] = memItem{
		value:     stored,
		liveUntil: m.initialLiveUntil(tier),
	}
}

// Delete - remove a record
func (m *MemStore) Delete(tier Tier, key []byte) {
	m.Lock()
	defer m.Unlock()

	delete(m.tiers[tier], string(key))
}

// Has - check a record exists and is not expired
func (m *MemStore) Has(tier Tier, key []byte) bool {
	m.RLock()
	defer m.RUnlock()

	item, ok := m.tiers[tier][string(key)]
	return ok && !m.expired(item)
}

// ExtendTTL - raise the remaining lifetime of a live record
//
// no-op for the instance tier and for missing or expired records
func (m *MemStore) ExtendTTL(tier Tier, key []byte, threshold uint64, extendTo uint64) {
	if Instance == tier {
		return
	}

	m.Lock()
	defer m.Unlock()

	item, ok := m.tiers[tier][string(key)]
	if !ok || m.expired(item) {
		return
	}

	current := m.clock.CurrentTick()
	remaining := item.liveUntil - current
	if remaining < threshold {
		liveUntil := current + extendTo
		if max := m.clock.MaxAllowedTick(); liveUntil > max {
			liveUntil = max
		}
		if liveUntil > item.liveUntil {
			item.liveUntil = liveUntil
			m.tiers[tier][string(key)] = item
		}
	}
}

// Sweep - drop all expired records
//
// the host evicts expired records on its own schedule, this makes
// eviction deterministic for tests
func (m *MemStore) Sweep() {
	m.Lock()
	defer m.Unlock()

	for tier := range m.tiers {
		for key, item := range m.tiers[tier] {
			if m.expired(item) {
				delete(m.tiers[tier], key)
			}
		}
	}
}
