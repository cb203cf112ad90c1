// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the tiered key-value store
//
// The ledger core reads and writes through the Store interface which
// exposes three tiers:
//
//   instance   - contract wide records, implicitly alive
//   persistent - durable records, evicted unless their time-to-live
//                is periodically extended
//   temporary  - short-lived records, auto-expiring, cheap
//
// Expiry is measured in ledger sequence numbers ("ticks") from the
// host clock, never in wall clock time. A record whose live-until
// tick is below the current tick is treated as absent even if the
// store has not evicted it yet.
//
// Two implementations are provided:
//
//   MemStore   - tick-expiring maps, used by the ledger tests and
//                suitable for hosted simulation
//   LevelStore - LevelDB backed store with batched writes and a
//                write-through cache
//
// LevelStore key layout:
//
// Notes:
// 1. each tier has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. tick      = big endian uint64 (8 bytes)
//
//   I ++ key             - instance tier record
//                          data: value
//   P ++ key             - persistent tier record
//                          data: value
//   T ++ key             - temporary tier record
//                          data: value
//   X ++ tier ++ key     - live-until tick for persistent and temporary
//                          records
//                          data: tick
package storage
