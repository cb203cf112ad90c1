// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/host"
)

// TokenID - non-fungible token identifier
type TokenID uint64

// record-type prefixes
const (
	prefixOwner            = 'O'
	prefixBalance          = 'N'
	prefixApproval         = 'P'
	prefixOperatorApproval = 'Q'
	prefixTokenCounter     = 'K'
	prefixMetadata         = 'U'
)

// Ledger - non-fungible token accounting over a host environment
type Ledger struct {
	env *host.Env
	log *logger.L
}

// New - create a ledger bound to a host environment
func New(env *host.Env) *Ledger {
	return &Ledger{
		env: env,
		log: logger.New("nonfungible"),
	}
}

// Env - the host environment this ledger is bound to
func (l *Ledger) Env() *host.Env {
	return l.env
}

// Bytes - token id as a big endian storage key part
func (id TokenID) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// String - decimal representation, as used in token URIs
func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// instance tier key for a singleton record
func singletonKey(prefix byte) []byte {
	return []byte{prefix}
}

// O ++ token id
func ownerKey(id TokenID) []byte {
	key := make([]byte, 1, 9)
	key[0] = prefixOwner
	return append(key, id.Bytes()...)
}

// N ++ owner
func balanceKey(owner account.Identifier) []byte {
	key := make([]byte, 1, 1+account.IdentifierLength)
	key[0] = prefixBalance
	return append(key, owner.Bytes()...)
}

// P ++ token id
func approvalKey(id TokenID) []byte {
	key := make([]byte, 1, 9)
	key[0] = prefixApproval
	return append(key, id.Bytes()...)
}

// Q ++ owner ++ operator
func operatorKey(owner account.Identifier, operator account.Identifier) []byte {
	key := make([]byte, 1, 1+2*account.IdentifierLength)
	key[0] = prefixOperatorApproval
	key = append(key, owner.Bytes()...)
	return append(key, operator.Bytes()...)
}

// event emission, best-effort

func (l *Ledger) emitTransfer(from account.Identifier, to account.Identifier, id TokenID) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"transfer", from, to},
		Data:   []interface{}{id},
	})
}

func (l *Ledger) emitMint(to account.Identifier, id TokenID) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"mint", to},
		Data:   []interface{}{id},
	})
}

func (l *Ledger) emitBurn(from account.Identifier, id TokenID) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"burn", from},
		Data:   []interface{}{id},
	})
}

func (l *Ledger) emitApprove(owner account.Identifier, id TokenID, approved account.Identifier, liveUntil uint64) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"approve", owner, id},
		Data:   []interface{}{approved, liveUntil},
	})
}

func (l *Ledger) emitApproveForAll(owner account.Identifier, operator account.Identifier, liveUntil uint64) {
	l.env.Emit(host.Event{
		Topics: []interface{}{"approve_for_all", owner},
		Data:   []interface{}{operator, liveUntil},
	})
}
