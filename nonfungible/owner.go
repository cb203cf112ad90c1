// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible

import (
	"math"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/constants"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// OwnerOf - the account holding a token
//
// reading a live owner record extends its lifetime
func (l *Ledger) OwnerOf(id TokenID) (account.Identifier, error) {
	store := l.env.Store()
	key := ownerKey(id)
	buffer := store.Get(storage.Persistent, key)
	if nil == buffer {
		return account.Identifier{}, fault.NonExistentToken
	}
	store.ExtendTTL(storage.Persistent, key, constants.OwnerTTLThreshold, constants.OwnerExtendAmount)
	var owner account.Identifier
	err := account.IdentifierFromBytes(&owner, buffer)
	if nil != err {
		l.log.Criticalf("corrupt owner record for token: %d", id)
		return account.Identifier{}, err
	}
	return owner, nil
}

// HasOwner - true if a token currently has an owner record
//
// unlike OwnerOf this does not extend the record lifetime
func (l *Ledger) HasOwner(id TokenID) bool {
	return l.env.Store().Has(storage.Persistent, ownerKey(id))
}

// SetOwner - write the owner record for a token
//
// low level primitive shared with the consecutive variant, callers
// are responsible for balance bookkeeping
func (l *Ledger) SetOwner(id TokenID, owner account.Identifier) {
	l.env.Store().Put(storage.Persistent, ownerKey(id), owner.Bytes())
}

// RemoveOwner - delete the owner record for a token
func (l *Ledger) RemoveOwner(id TokenID) {
	l.env.Store().Delete(storage.Persistent, ownerKey(id))
}

// Balance - number of tokens held by an account
//
// reading a live balance record extends its lifetime
func (l *Ledger) Balance(owner account.Identifier) uint64 {
	store := l.env.Store()
	key := balanceKey(owner)
	n, ok := storage.GetN(store, storage.Persistent, key)
	if !ok {
		return 0
	}
	store.ExtendTTL(storage.Persistent, key, constants.BalanceTTLThreshold, constants.BalanceExtendAmount)
	return n
}

// IncreaseBalance - add amount to the owned token count of an account
func (l *Ledger) IncreaseBalance(owner account.Identifier, amount uint64) error {
	balance := l.Balance(owner)
	if balance > math.MaxUint64-amount {
		return fault.MathOverflow
	}
	storage.PutN(l.env.Store(), storage.Persistent, balanceKey(owner), balance+amount)
	return nil
}

// DecreaseBalance - subtract amount from the owned token count of an
// account
func (l *Ledger) DecreaseBalance(owner account.Identifier, amount uint64) error {
	balance := l.Balance(owner)
	if balance < amount {
		return fault.MathOverflow
	}
	storage.PutN(l.env.Store(), storage.Persistent, balanceKey(owner), balance-amount)
	return nil
}

// Update - the sole mutator of owner records and owned token counts
//
//   from == nil               mint
//   to == nil                 burn
//   from != nil && to != nil  transfer
//
// when from is set it must match the current owner record, the
// approval slot for the token is cleared so stale approvals cannot
// outlive a transfer
func (l *Ledger) Update(from *account.Identifier, to *account.Identifier, id TokenID) error {
	if nil != from {
		owner, err := l.OwnerOf(id)
		if nil != err {
			return err
		}
		if owner != *from {
			return fault.IncorrectOwner
		}
		err = l.DecreaseBalance(*from, 1)
		if nil != err {
			return err
		}
		l.ClearApproval(id)
	}
	if nil != to {
		err := l.IncreaseBalance(*to, 1)
		if nil != err {
			return err
		}
		l.SetOwner(id, *to)
	} else {
		l.RemoveOwner(id)
	}
	return nil
}

// Mint - create a token with a caller chosen id
//
// no authorization is performed, the caller must restrict access
func (l *Ledger) Mint(to account.Identifier, id TokenID) error {
	if l.HasOwner(id) {
		return fault.TokenIDInUse
	}
	err := l.Update(nil, &to, id)
	if nil != err {
		return err
	}
	l.emitMint(to, id)
	return nil
}

// SequentialMint - create a token with the next id from the counter
//
// no authorization is performed, the caller must restrict access
func (l *Ledger) SequentialMint(to account.Identifier) (TokenID, error) {
	id, err := l.IncrementTokenID(1)
	if nil != err {
		return 0, err
	}
	err = l.Update(nil, &to, id)
	if nil != err {
		return 0, err
	}
	l.emitMint(to, id)
	return id, nil
}
