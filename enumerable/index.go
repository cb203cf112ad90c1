// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package enumerable

import (
	"math"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/constants"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/nonfungible"
	"github.com/bitmark-inc/tokenledger/storage"
)

// TotalSupply - number of tokens currently in existence
func (l *Ledger) TotalSupply() uint64 {
	n, _ := storage.GetN(l.Env().Store(), storage.Instance, []byte{prefixTotalSupply})
	return n
}

// GetOwnerTokenID - the token id at index in owner's local list
//
// enumerate all of an owner's tokens by iterating index over
// [0, Balance(owner))
func (l *Ledger) GetOwnerTokenID(owner account.Identifier, index uint64) (nonfungible.TokenID, error) {
	store := l.Env().Store()
	key := ownerTokensKey(owner, index)
	n, ok := storage.GetN(store, storage.Persistent, key)
	if !ok {
		return 0, fault.TokenNotFoundInOwnerList
	}
	store.ExtendTTL(storage.Persistent, key, constants.OwnerTTLThreshold, constants.OwnerExtendAmount)
	return nonfungible.TokenID(n), nil
}

// GetTokenID - the token id at index in the global list
//
// only meaningful under the non-sequential minting strategy, with
// sequential ids the token id itself is the global index and no
// global records exist
func (l *Ledger) GetTokenID(index uint64) (nonfungible.TokenID, error) {
	store := l.Env().Store()
	key := globalTokensKey(index)
	n, ok := storage.GetN(store, storage.Persistent, key)
	if !ok {
		return 0, fault.TokenNotFoundInGlobalList
	}
	store.ExtendTTL(storage.Persistent, key, constants.TokenTTLThreshold, constants.TokenExtendAmount)
	return nonfungible.TokenID(n), nil
}

// incrementTotalSupply - returns the total before the increment,
// which is the global index of the token being added
func (l *Ledger) incrementTotalSupply() (uint64, error) {
	totalSupply := l.TotalSupply()
	if math.MaxUint64 == totalSupply {
		return 0, fault.TokenIDsAreDepleted
	}
	storage.PutN(l.Env().Store(), storage.Instance, []byte{prefixTotalSupply}, totalSupply+1)
	return totalSupply, nil
}

// decrementTotalSupply - returns the total after the decrement,
// which is the global index of the last remaining list entry
func (l *Ledger) decrementTotalSupply() (uint64, error) {
	totalSupply := l.TotalSupply()
	if 0 == totalSupply {
		return 0, fault.MathOverflow
	}
	storage.PutN(l.Env().Store(), storage.Instance, []byte{prefixTotalSupply}, totalSupply-1)
	return totalSupply - 1, nil
}

// addToOwnerEnumeration - append a token to owner's local list
//
// called after the owner's balance has been incremented, so the new
// last index is balance - 1
func (l *Ledger) addToOwnerEnumeration(owner account.Identifier, id nonfungible.TokenID) error {
	balance := l.Balance(owner)
	if 0 == balance {
		return fault.MathOverflow
	}
	index := balance - 1
	store := l.Env().Store()
	storage.PutN(store, storage.Persistent, ownerTokensKey(owner, index), uint64(id))
	storage.PutN(store, storage.Persistent, ownerIndexKey(id), index)
	return nil
}

// removeFromOwnerEnumeration - delete a token from owner's local
// list, swapping the last entry into the vacated slot
//
// called after the owner's balance has been decremented, so the old
// last index equals the current balance
func (l *Ledger) removeFromOwnerEnumeration(owner account.Identifier, id nonfungible.TokenID) error {
	store := l.Env().Store()
	indexKey := ownerIndexKey(id)
	removedIndex, ok := storage.GetN(store, storage.Persistent, indexKey)
	if !ok {
		return fault.TokenNotFoundInOwnerList
	}
	store.ExtendTTL(storage.Persistent, indexKey, constants.TokenTTLThreshold, constants.TokenExtendAmount)

	lastIndex := l.Balance(owner)
	if removedIndex != lastIndex {
		lastTokenID, err := l.GetOwnerTokenID(owner, lastIndex)
		if nil != err {
			return err
		}
		storage.PutN(store, storage.Persistent, ownerTokensKey(owner, removedIndex), uint64(lastTokenID))
		storage.PutN(store, storage.Persistent, ownerIndexKey(lastTokenID), removedIndex)
	}

	store.Delete(storage.Persistent, ownerTokensKey(owner, lastIndex))
	store.Delete(storage.Persistent, indexKey)
	return nil
}

// addToGlobalEnumeration - append a token to the global list at the
// given index
func (l *Ledger) addToGlobalEnumeration(id nonfungible.TokenID, index uint64) {
	store := l.Env().Store()
	storage.PutN(store, storage.Persistent, globalTokensKey(index), uint64(id))
	storage.PutN(store, storage.Persistent, globalIndexKey(id), index)
}

// removeFromGlobalEnumeration - delete a token from the global list,
// swapping the entry at lastIndex into the vacated slot
//
// the swap is performed unconditionally, when the removed token is
// itself the last entry the swap is a self assignment and the
// deletions still leave the list consistent
func (l *Ledger) removeFromGlobalEnumeration(id nonfungible.TokenID, lastIndex uint64) error {
	store := l.Env().Store()
	indexKey := globalIndexKey(id)
	removedIndex, ok := storage.GetN(store, storage.Persistent, indexKey)
	if !ok {
		return fault.TokenNotFoundInGlobalList
	}
	store.ExtendTTL(storage.Persistent, indexKey, constants.TokenTTLThreshold, constants.TokenExtendAmount)

	lastTokenID, err := l.GetTokenID(lastIndex)
	if nil != err {
		return err
	}
	storage.PutN(store, storage.Persistent, globalTokensKey(removedIndex), uint64(lastTokenID))
	storage.PutN(store, storage.Persistent, globalIndexKey(lastTokenID), removedIndex)

	store.Delete(storage.Persistent, globalTokensKey(lastIndex))
	store.Delete(storage.Persistent, indexKey)
	return nil
}
