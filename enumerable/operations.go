// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package enumerable

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/nonfungible"
)

// SequentialMint - create a token with the next sequential id
//
// the global list records are not written, sequential ids act as
// their own global index
//
// no authorization is performed, the caller must restrict access
func (l *Ledger) SequentialMint(to account.Identifier) (nonfungible.TokenID, error) {
	id, err := l.Ledger.SequentialMint(to)
	if nil != err {
		return 0, err
	}
	err = l.addToOwnerEnumeration(to, id)
	if nil != err {
		return 0, err
	}
	_, err = l.incrementTotalSupply()
	if nil != err {
		return 0, err
	}
	return id, nil
}

// NonSequentialMint - create a token with a caller chosen id and
// record it in both enumerations
//
// no authorization is performed, the caller must restrict access
func (l *Ledger) NonSequentialMint(to account.Identifier, id nonfungible.TokenID) error {
	err := l.Mint(to, id)
	if nil != err {
		return err
	}
	err = l.addToOwnerEnumeration(to, id)
	if nil != err {
		return err
	}
	index, err := l.incrementTotalSupply()
	if nil != err {
		return err
	}
	l.addToGlobalEnumeration(id, index)
	return nil
}

// SequentialBurn - destroy a sequentially minted token
//
// authorization for from is required
func (l *Ledger) SequentialBurn(from account.Identifier, id nonfungible.TokenID) error {
	err := l.Burn(from, id)
	if nil != err {
		return err
	}
	err = l.removeFromOwnerEnumeration(from, id)
	if nil != err {
		return err
	}
	_, err = l.decrementTotalSupply()
	return err
}

// SequentialBurnFrom - destroy a sequentially minted token using
// spender's approval
//
// authorization for spender is required
func (l *Ledger) SequentialBurnFrom(spender account.Identifier, from account.Identifier, id nonfungible.TokenID) error {
	err := l.BurnFrom(spender, from, id)
	if nil != err {
		return err
	}
	err = l.removeFromOwnerEnumeration(from, id)
	if nil != err {
		return err
	}
	_, err = l.decrementTotalSupply()
	return err
}

// NonSequentialBurn - destroy a token and remove it from both
// enumerations
//
// authorization for from is required
func (l *Ledger) NonSequentialBurn(from account.Identifier, id nonfungible.TokenID) error {
	err := l.Burn(from, id)
	if nil != err {
		return err
	}
	err = l.removeFromOwnerEnumeration(from, id)
	if nil != err {
		return err
	}
	lastIndex, err := l.decrementTotalSupply()
	if nil != err {
		return err
	}
	return l.removeFromGlobalEnumeration(id, lastIndex)
}

// NonSequentialBurnFrom - destroy a token using spender's approval
// and remove it from both enumerations
//
// authorization for spender is required
func (l *Ledger) NonSequentialBurnFrom(spender account.Identifier, from account.Identifier, id nonfungible.TokenID) error {
	err := l.BurnFrom(spender, from, id)
	if nil != err {
		return err
	}
	err = l.removeFromOwnerEnumeration(from, id)
	if nil != err {
		return err
	}
	lastIndex, err := l.decrementTotalSupply()
	if nil != err {
		return err
	}
	return l.removeFromGlobalEnumeration(id, lastIndex)
}

// Transfer - move a token between accounts keeping the owner lists
// consistent
//
// authorization for from is required
func (l *Ledger) Transfer(from account.Identifier, to account.Identifier, id nonfungible.TokenID) error {
	err := l.Ledger.Transfer(from, to, id)
	if nil != err {
		return err
	}
	err = l.removeFromOwnerEnumeration(from, id)
	if nil != err {
		return err
	}
	return l.addToOwnerEnumeration(to, id)
}

// TransferFrom - move a token using the approval mechanism keeping
// the owner lists consistent
//
// authorization for spender is required
func (l *Ledger) TransferFrom(spender account.Identifier, from account.Identifier, to account.Identifier, id nonfungible.TokenID) error {
	err := l.Ledger.TransferFrom(spender, from, to, id)
	if nil != err {
		return err
	}
	err = l.removeFromOwnerEnumeration(from, id)
	if nil != err {
		return err
	}
	return l.addToOwnerEnumeration(to, id)
}
