// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package enumerable - non-fungible ledger with owner and global
// token indexes
//
// Wraps the base non-fungible ledger and maintains paired forward and
// reverse maps so tokens can be listed without scanning:
//
//   E                        - total token count (instance)
//                              data: count
//   L ++ owner ++ index      - owner list entry (persistent)
//                              data: token id
//   D ++ token id            - index in owner list (persistent)
//                              data: index
//   G ++ index               - global list entry (persistent)
//                              data: token id
//   H ++ token id            - index in global list (persistent)
//                              data: index
//
// Removal swaps the last entry of a list into the vacated slot, so
// every mutation is a constant number of store operations. Under the
// sequential minting strategy the token id itself is the global
// index, so the G and H records are not written and GetTokenID must
// not be used.
//
// All mutations must go through this package, mixing in calls to the
// base ledger's transfer or burn operations would desynchronise the
// indexes from the owner records.
package enumerable
