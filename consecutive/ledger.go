// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consecutive

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/host"
	"github.com/bitmark-inc/tokenledger/nonfungible"
)

// R ++ token id, see isBurned
const prefixBurned = 'R'

// Ledger - consecutive non-fungible token accounting
//
// the embedded base ledger provides balances, approvals and metadata,
// ownership queries and all mutations must use the methods defined
// here so the sparse owner records stay consistent
type Ledger struct {
	*nonfungible.Ledger
	log *logger.L
}

// New - create a consecutive ledger bound to a host environment
func New(env *host.Env) *Ledger {
	return &Ledger{
		Ledger: nonfungible.New(env),
		log:    logger.New("consecutive"),
	}
}

// R ++ token id
func burnedKey(id nonfungible.TokenID) []byte {
	key := make([]byte, 1, 9)
	key[0] = prefixBurned
	return append(key, id.Bytes()...)
}

func (l *Ledger) emitTransfer(from account.Identifier, to account.Identifier, id nonfungible.TokenID) {
	l.Env().Emit(host.Event{
		Topics: []interface{}{"transfer", from, to},
		Data:   []interface{}{id},
	})
}

func (l *Ledger) emitBurn(from account.Identifier, id nonfungible.TokenID) {
	l.Env().Emit(host.Event{
		Topics: []interface{}{"burn", from},
		Data:   []interface{}{id},
	})
}

func (l *Ledger) emitConsecutiveMint(to account.Identifier, first nonfungible.TokenID, last nonfungible.TokenID) {
	l.Env().Emit(host.Event{
		Topics: []interface{}{"consecutive_mint", to},
		Data:   []interface{}{first, last},
	})
}
