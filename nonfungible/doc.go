// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nonfungible - per-token ownership and approval accounting
//
// All state lives in the host store under single byte record-type
// prefixes:
//
//   O ++ token id            - token owner (persistent)
//                              data: owner
//   N ++ owner               - owned token count (persistent)
//                              data: count
//   P ++ token id            - single approval slot (temporary)
//                              data: approved ++ live-until tick
//   Q ++ owner ++ operator   - operator approval (temporary)
//                              data: live-until tick
//   K                        - next token id counter (instance)
//                              data: count
//   U                        - collection metadata (instance)
//                              data: JSON
//
// A token either has an owner record, has never been minted, or has
// been burned. Update is the sole mutator of owner records and owned
// token counts, so a token resolves to at most one owner after every
// committed operation.
//
// The enumerable and consecutive packages layer their own records on
// top of these primitives, their prefixes are distinct from the ones
// above because all variants share one store.
package nonfungible
