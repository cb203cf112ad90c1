// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/constants"
)

// Tier - storage tier selector
type Tier int

// the three tiers
const (
	Instance Tier = iota
	Persistent
	Temporary
)

// initial lifetimes assigned on Put, in ticks
//
// persistent records must be kept alive by ExtendTTL, temporary
// records are left to expire
const (
	InitialPersistentLifetime = constants.BalanceExtendAmount
	InitialTemporaryLifetime  = constants.DayInLedgers
)

// Clock - monotonically increasing logical clock provided by the host
type Clock interface {

	// CurrentTick - the current ledger sequence number
	CurrentTick() uint64

	// MaxAllowedTick - the highest tick any record may live until
	MaxAllowedTick() uint64
}

// Store - tiered key-value store
//
// Get returns nil for a missing or expired record. ExtendTTL is
// idempotent and only meaningful for the persistent and temporary
// tiers: when the remaining lifetime of the record is below
// threshold ticks it is raised to exactly extendTo ticks, otherwise
// the call is a no-op. A missing or expired record is not revived.
type Store interface {
	Get(tier Tier, key []byte) []byte
	Put(tier Tier, key []byte, value []byte)
	Delete(tier Tier, key []byte)
	Has(tier Tier, key []byte) bool
	ExtendTTL(tier Tier, key []byte, threshold uint64, extendTo uint64)
}

// Element - a binary key-value data item
type Element struct {
	Key   []byte
	Value []byte
}

// String - tier name for logging
func (tier Tier) String() string {
	switch tier {
	case Instance:
		return "instance"
	case Persistent:
		return "persistent"
	case Temporary:
		return "temporary"
	default:
		return "*unknown*"
	}
}

// GetN - read a record and decode as big endian uint64
//
// second value is false if the record is missing
func GetN(s Store, tier Tier, key []byte) (uint64, bool) {
	buffer := s.Get(tier, key)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("storage.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}

// PutN - store a big endian uint64 record
func PutN(s Store, tier Tier, key []byte, n uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	s.Put(tier, key, buffer)
}
