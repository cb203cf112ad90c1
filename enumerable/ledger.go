// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package enumerable

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/host"
	"github.com/bitmark-inc/tokenledger/nonfungible"
)

// record-type prefixes, distinct from the base ledger's
const (
	prefixTotalSupply = 'E'
	prefixOwnerTokens = 'L'
	prefixOwnerIndex  = 'D'
	prefixGlobalToken = 'G'
	prefixGlobalIndex = 'H'
)

// Ledger - enumerable non-fungible token accounting
//
// the embedded base ledger provides queries and approvals, all
// minting, burning and transferring must use the methods defined
// here so the indexes stay consistent
type Ledger struct {
	*nonfungible.Ledger
	log *logger.L
}

// New - create an enumerable ledger bound to a host environment
func New(env *host.Env) *Ledger {
	return &Ledger{
		Ledger: nonfungible.New(env),
		log:    logger.New("enumerable"),
	}
}

// L ++ owner ++ index
func ownerTokensKey(owner account.Identifier, index uint64) []byte {
	key := make([]byte, 1, 9+account.IdentifierLength)
	key[0] = prefixOwnerTokens
	key = append(key, owner.Bytes()...)
	return append(key, nonfungible.TokenID(index).Bytes()...)
}

// D ++ token id
func ownerIndexKey(id nonfungible.TokenID) []byte {
	key := make([]byte, 1, 9)
	key[0] = prefixOwnerIndex
	return append(key, id.Bytes()...)
}

// G ++ index
func globalTokensKey(index uint64) []byte {
	key := make([]byte, 1, 9)
	key[0] = prefixGlobalToken
	return append(key, nonfungible.TokenID(index).Bytes()...)
}

// H ++ token id
func globalIndexKey(id nonfungible.TokenID) []byte {
	key := make([]byte, 1, 9)
	key[0] = prefixGlobalIndex
	return append(key, id.Bytes()...)
}
