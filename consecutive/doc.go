// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consecutive - non-fungible ledger with batch minting over
// sparse ownership records
//
// A batch mint reserves a range of sequential ids but writes a single
// owner record at the first id of the range. The owner of any other
// id in the range is found by scanning backwards to the nearest
// record, so minting cost is constant regardless of batch size.
//
// The package shares the base ledger's owner, balance and approval
// records and adds one of its own:
//
//   R ++ token id   - burn marker (persistent)
//                     data: 0x01
//
// Burned ids must be marked explicitly because the absence of an
// owner record is ambiguous here, it may simply mean the id is
// covered by an earlier boundary record.
//
// When a token leaves its holder by transfer or burn, the ownership
// of the ids above it in the range must not change, so a repair
// record carrying the previous owner is written at the next id if
// that id has no record of its own.
package consecutive
