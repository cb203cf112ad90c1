// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - tick based record lifetimes
//
// All values are counts of ledger sequence numbers ("ticks"), not wall
// clock durations. They match the values used by the Stellar Asset
// Contract so that records behave identically on either store.
package constants

// one day worth of ticks assuming a five second close time
const DayInLedgers = 17280

// instance tier records
const (
	InstanceExtendAmount = 7 * DayInLedgers
	InstanceTTLThreshold = InstanceExtendAmount - DayInLedgers
)

// fungible balance records
const (
	BalanceExtendAmount = 30 * DayInLedgers
	BalanceTTLThreshold = BalanceExtendAmount - DayInLedgers
)

// non-fungible owner records
const (
	OwnerExtendAmount = 30 * DayInLedgers
	OwnerTTLThreshold = OwnerExtendAmount - DayInLedgers
)

// per-token records: enumeration indexes and burn markers
const (
	TokenExtendAmount = 30 * DayInLedgers
	TokenTTLThreshold = TokenExtendAmount - DayInLedgers
)
