// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fungible - balance and allowance accounting
//
// All state lives in the host store under single byte record-type
// prefixes:
//
//   S                      - total supply (instance)
//                            data: amount
//   C                      - supply cap (instance)
//                            data: amount
//   M                      - token metadata (instance)
//                            data: JSON
//   B ++ owner             - account balance (persistent)
//                            data: amount
//   A ++ owner ++ spender  - allowance (temporary)
//                            data: amount ++ live-until tick
//
// Absence of a balance or allowance record means zero. Allowances
// are written to the temporary tier so the host evicts them once
// their lifetime has elapsed, and their live-until tick is checked
// explicitly as well because eviction is not immediate.
//
// update is the sole mutator of balances and total supply, so the
// invariant total supply == sum of all balances holds after every
// committed operation.
package fungible
