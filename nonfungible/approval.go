// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// ApprovalData - the single approval slot of a token
type ApprovalData struct {
	Approved  account.Identifier
	LiveUntil uint64
}

const approvalDataLength = account.IdentifierLength + 8

func packApprovalData(data ApprovalData) []byte {
	buffer := make([]byte, approvalDataLength)
	copy(buffer, data.Approved.Bytes())
	binary.BigEndian.PutUint64(buffer[account.IdentifierLength:], data.LiveUntil)
	return buffer
}

func unpackApprovalData(buffer []byte) ApprovalData {
	if approvalDataLength != len(buffer) {
		logger.Panicf("approval record truncated: %d bytes", len(buffer))
	}
	var data ApprovalData
	copy(data.Approved[:], buffer[:account.IdentifierLength])
	data.LiveUntil = binary.BigEndian.Uint64(buffer[account.IdentifierLength:])
	return data
}

// Approve - set the approval slot of a token
//
// authorization for approver is required, approver must be the owner
// of the token or one of the owner's operators
//
// a zero liveUntil clears the slot
func (l *Ledger) Approve(approver account.Identifier, approved account.Identifier, id TokenID, liveUntil uint64) error {
	err := l.env.RequireAuth(approver)
	if nil != err {
		return err
	}
	owner, err := l.OwnerOf(id)
	if nil != err {
		return err
	}
	err = l.ApproveForOwner(owner, approver, approved, id, liveUntil)
	if nil != err {
		return err
	}
	l.emitApprove(owner, id, approved, liveUntil)
	return nil
}

// ApproveForOwner - low level approval slot write
//
// no authorization is performed, but approver must be owner or one of
// the owner's operators
func (l *Ledger) ApproveForOwner(owner account.Identifier, approver account.Identifier, approved account.Identifier, id TokenID, liveUntil uint64) error {
	if approver != owner && !l.IsApprovedForAll(owner, approver) {
		return fault.InvalidApprover
	}
	store := l.env.Store()
	if 0 == liveUntil {
		store.Delete(storage.Temporary, approvalKey(id))
		return nil
	}
	current := l.env.CurrentTick()
	if liveUntil < current || liveUntil > l.env.MaxAllowedTick() {
		return fault.InvalidLiveUntilLedger
	}
	key := approvalKey(id)
	store.Put(storage.Temporary, key, packApprovalData(ApprovalData{
		Approved:  approved,
		LiveUntil: liveUntil,
	}))
	// note 1 is not added to the lifetime, matching the asset
	// contract behaviour this accounting mirrors
	liveFor := liveUntil - current
	store.ExtendTTL(storage.Temporary, key, liveFor, liveFor)
	return nil
}

// GetApproved - the account in the approval slot of a token
//
// an absent or expired slot yields ok == false
func (l *Ledger) GetApproved(id TokenID) (account.Identifier, bool) {
	buffer := l.env.Store().Get(storage.Temporary, approvalKey(id))
	if nil == buffer {
		return account.Identifier{}, false
	}
	data := unpackApprovalData(buffer)
	if data.LiveUntil < l.env.CurrentTick() {
		return account.Identifier{}, false
	}
	return data.Approved, true
}

// ClearApproval - remove the approval slot of a token
func (l *Ledger) ClearApproval(id TokenID) {
	l.env.Store().Delete(storage.Temporary, approvalKey(id))
}

// ApproveForAll - grant or revoke an operator over all of owner's
// tokens
//
// authorization for owner is required, a zero liveUntil revokes the
// operator
func (l *Ledger) ApproveForAll(owner account.Identifier, operator account.Identifier, liveUntil uint64) error {
	err := l.env.RequireAuth(owner)
	if nil != err {
		return err
	}
	store := l.env.Store()
	key := operatorKey(owner, operator)
	if 0 == liveUntil {
		store.Delete(storage.Temporary, key)
		l.emitApproveForAll(owner, operator, liveUntil)
		return nil
	}
	current := l.env.CurrentTick()
	if liveUntil < current || liveUntil > l.env.MaxAllowedTick() {
		return fault.InvalidLiveUntilLedger
	}
	storage.PutN(store, storage.Temporary, key, liveUntil)
	// see the lifetime note in ApproveForOwner
	liveFor := liveUntil - current
	store.ExtendTTL(storage.Temporary, key, liveFor, liveFor)
	l.emitApproveForAll(owner, operator, liveUntil)
	return nil
}

// IsApprovedForAll - true if operator currently holds an unexpired
// approval over all of owner's tokens
func (l *Ledger) IsApprovedForAll(owner account.Identifier, operator account.Identifier) bool {
	liveUntil, ok := storage.GetN(l.env.Store(), storage.Temporary, operatorKey(owner, operator))
	if !ok {
		return false
	}
	return liveUntil >= l.env.CurrentTick()
}

// CheckSpenderApproval - ensure spender may move a token held by
// owner
//
// spender qualifies as the owner itself, the account in a live
// approval slot for the token, or a live operator of the owner
func (l *Ledger) CheckSpenderApproval(spender account.Identifier, owner account.Identifier, id TokenID) error {
	if spender == owner {
		return nil
	}
	if approved, ok := l.GetApproved(id); ok && approved == spender {
		return nil
	}
	if l.IsApprovedForAll(owner, spender) {
		return nil
	}
	return fault.InsufficientApproval
}
