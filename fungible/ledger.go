// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/host"
)

// record-type prefixes
const (
	prefixTotalSupply = 'S'
	prefixCap         = 'C'
	prefixMetadata    = 'M'
	prefixBalance     = 'B'
	prefixAllowance   = 'A'
)

// Ledger - fungible token accounting over a host environment
type Ledger struct {
	env *host.Env
	log *logger.L
}

// New - create a ledger bound to a host environment
func New(env *host.Env) *Ledger {
	return &Ledger{
		env: env,
		log: logger.New("fungible"),
	}
}

// instance tier key for a singleton record
func singletonKey(prefix byte) []byte {
	return []byte{prefix}
}

// B ++ owner
func balanceKey(owner account.Identifier) []byte {
	key := make([]byte, 1, 1+account.IdentifierLength)
	key[0] = prefixBalance
	return append(key, owner.Bytes()...)
}

// A ++ owner ++ spender
func allowanceKey(owner account.Identifier, spender account.Identifier) []byte {
	key := make([]byte, 1, 1+2*account.IdentifierLength)
	key[0] = prefixAllowance
	key = append(key, owner.Bytes()...)
	return append(key, spender.Bytes()...)
}

// event emission, best-effort

func (l *Ledger) emitTransfer(from account.Identifier, to account.Identifier, amount int64) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"transfer", from, to},
		Data:   []interface{}{amount},
	})
}

func (l *Ledger) emitMint(to account.Identifier, amount int64) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"mint", to},
		Data:   []interface{}{amount},
	})
}

func (l *Ledger) emitBurn(from account.Identifier, amount int64) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"burn", from},
		Data:   []interface{}{amount},
	})
}

func (l *Ledger) emitApprove(owner account.Identifier, spender account.Identifier, amount int64, liveUntil uint64) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"approve", owner, spender},
		Data:   []interface{}{amount, liveUntil},
	})
}
