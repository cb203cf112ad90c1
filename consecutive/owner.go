// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consecutive

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/constants"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/nonfungible"
	"github.com/bitmark-inc/tokenledger/storage"
)

// isBurned - true if a burn marker exists for the id
//
// reading a live marker extends its lifetime, markers must outlive
// the surrounding owner records or a burned id would appear owned
// again
func (l *Ledger) isBurned(id nonfungible.TokenID) bool {
	store := l.Env().Store()
	key := burnedKey(id)
	if !store.Has(storage.Persistent, key) {
		return false
	}
	store.ExtendTTL(storage.Persistent, key, constants.TokenTTLThreshold, constants.TokenExtendAmount)
	return true
}

func (l *Ledger) markBurned(id nonfungible.TokenID) {
	l.Env().Store().Put(storage.Persistent, burnedKey(id), []byte{0x01})
}

// OwnerOf - the account holding a token
//
// ids at or beyond the mint counter and burned ids do not exist, any
// other id resolves by scanning backwards to the nearest owner record
func (l *Ledger) OwnerOf(id nonfungible.TokenID) (account.Identifier, error) {
	max := l.NextTokenID()
	burned := l.isBurned(id)
	if uint64(id) >= uint64(max) || burned {
		return account.Identifier{}, fault.NonExistentToken
	}

	for i := id; ; i -= 1 {
		owner, err := l.Ledger.OwnerOf(i)
		if nil == err {
			return owner, nil
		}
		if 0 == i {
			break
		}
	}
	return account.Identifier{}, fault.NonExistentToken
}

// BatchMint - create amount tokens with consecutive ids for to,
// returning the last id of the range
//
// only one owner record is written, at the first id of the range
//
// no authorization is performed, the caller must restrict access
func (l *Ledger) BatchMint(to account.Identifier, amount uint64) (nonfungible.TokenID, error) {
	if 0 == amount {
		return 0, fault.MathOverflow
	}
	firstID, err := l.IncrementTokenID(amount)
	if nil != err {
		return 0, err
	}
	l.SetOwner(firstID, to)
	err = l.IncreaseBalance(to, amount)
	if nil != err {
		return 0, err
	}
	lastID := firstID + nonfungible.TokenID(amount) - 1
	l.emitConsecutiveMint(to, firstID, lastID)
	return lastID, nil
}

// Update - the sole mutator of the sparse owner records
//
// differs from the base ledger's update in two ways, burned ids are
// marked explicitly, and the previous owner is written at the next id
// so the rest of the minted range keeps its holder
func (l *Ledger) Update(from *account.Identifier, to *account.Identifier, id nonfungible.TokenID) error {
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
		l.setOwnerFor(*from, id+1)
	}
	if nil != to {
		err := l.IncreaseBalance(*to, 1)
		if nil != err {
			return err
		}
		l.SetOwner(id, *to)
	} else {
		l.RemoveOwner(id)
		l.markBurned(id)
	}
	return nil
}

// setOwnerFor - conditional repair write of an owner record
//
// the record is written only when the id is inside the minted range,
// has no record of its own and has not been burned, otherwise the id
// already resolves correctly and must not be touched
func (l *Ledger) setOwnerFor(to account.Identifier, id nonfungible.TokenID) {
	max := l.NextTokenID()

	// reading through the base ledger extends the lifetime of an
	// existing record, matching the burn marker read below
	_, err := l.Ledger.OwnerOf(id)
	hasOwner := nil == err

	burned := l.isBurned(id)

	if uint64(id) < uint64(max) && !hasOwner && !burned {
		l.SetOwner(id, to)
	}
}
