// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// AllowanceData - granted amount and the tick at which it expires
type AllowanceData struct {
	Amount    int64  `json:"amount"`
	LiveUntil uint64 `json:"liveUntil"`
}

// packed allowance record: amount ++ live-until tick
const allowancePackLength = 16

func packAllowance(data AllowanceData) []byte {
	buffer := make([]byte, allowancePackLength)
	binary.BigEndian.PutUint64(buffer[:8], uint64(data.Amount))
	binary.BigEndian.PutUint64(buffer[8:], data.LiveUntil)
	return buffer
}

func unpackAllowance(buffer []byte) AllowanceData {
	if allowancePackLength != len(buffer) {
		logger.Panicf("fungible: truncated allowance record: %x", buffer)
	}
	return AllowanceData{
		Amount:    int64(binary.BigEndian.Uint64(buffer[:8])),
		LiveUntil: binary.BigEndian.Uint64(buffer[8:]),
	}
}

// AllowanceData - the stored allowance record without expiry check,
// both values default to zero
func (l *Ledger) AllowanceData(owner account.Identifier, spender account.Identifier) AllowanceData {
	buffer := l.env.Store().Get(storage.Temporary, allowanceKey(owner, spender))
	if nil == buffer {
		return AllowanceData{}
	}
	return unpackAllowance(buffer)
}

// Allowance - the amount spender may spend on behalf of owner
//
// a record whose live-until tick has passed counts as zero even if
// the store has not evicted it yet
func (l *Ledger) Allowance(owner account.Identifier, spender account.Identifier) int64 {
	allowance := l.AllowanceData(owner, spender)

	if allowance.LiveUntil < l.env.CurrentTick() {
		return 0
	}

	return allowance.Amount
}

// Approve - set the allowance of spender over owner's tokens,
// overriding any previous allowance
//
// authorization for owner is required
func (l *Ledger) Approve(owner account.Identifier, spender account.Identifier, amount int64, liveUntil uint64) error {
	err := l.env.RequireAuth(owner)
	if nil != err {
		return err
	}
	err = l.SetAllowance(owner, spender, amount, liveUntil)
	if nil != err {
		return err
	}
	l.emitApprove(owner, spender, amount, liveUntil)
	return nil
}

// SetAllowance - store an allowance without authorization or event
// emission
//
// liveUntil must not exceed the maximum allowed tick and, for a
// positive amount, must not lie in the past. The record's lifetime
// in the temporary tier is extended to exactly liveUntil minus the
// current tick, so an allowance can never outlive the maximum
// storage lifetime the host permits.
func (l *Ledger) SetAllowance(owner account.Identifier, spender account.Identifier, amount int64, liveUntil uint64) error {
	if amount < 0 {
		return fault.LessThanZero
	}

	currentTick := l.env.CurrentTick()

	if liveUntil > l.env.MaxAllowedTick() || (amount > 0 && liveUntil < currentTick) {
		return fault.InvalidLiveUntilLedger
	}

	key := allowanceKey(owner, spender)
	l.env.Store().Put(storage.Temporary, key, packAllowance(AllowanceData{
		Amount:    amount,
		LiveUntil: liveUntil,
	}))

	if amount > 0 {
		// cannot underflow because of the check above
		//
		// note 1 is not added to the lifetime, matching the asset
		// contract behaviour this accounting mirrors
		liveFor := liveUntil - currentTick

		l.env.Store().ExtendTTL(storage.Temporary, key, liveFor, liveFor)
	}

	return nil
}

// SpendAllowance - deduct amount from spender's allowance
func (l *Ledger) SpendAllowance(owner account.Identifier, spender account.Identifier, amount int64) error {
	if amount < 0 {
		return fault.LessThanZero
	}

	allowance := l.AllowanceData(owner, spender)

	if allowance.Amount < amount {
		return fault.InsufficientAllowance
	}

	if amount > 0 {
		return l.SetAllowance(owner, spender, allowance.Amount-amount, allowance.LiveUntil)
	}

	return nil
}
