// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible

import (
	"github.com/bitmark-inc/tokenledger/account"
)

// Transfer - move amount of tokens from one account to another
//
// authorization for from is required
func (l *Ledger) Transfer(from account.Identifier, to account.Identifier, amount int64) error {
	err := l.env.RequireAuth(from)
	if nil != err {
		return err
	}
	err = l.Update(&from, &to, amount)
	if nil != err {
		return err
	}
	l.emitTransfer(from, to, amount)
	return nil
}

// TransferFrom - move amount of tokens using the allowance
// mechanism, deducting amount from spender's allowance
//
// authorization for spender is required
func (l *Ledger) TransferFrom(spender account.Identifier, from account.Identifier, to account.Identifier, amount int64) error {
	err := l.env.RequireAuth(spender)
	if nil != err {
		return err
	}
	err = l.SpendAllowance(from, spender, amount)
	if nil != err {
		return err
	}
	err = l.Update(&from, &to, amount)
	if nil != err {
		return err
	}
	l.emitTransfer(from, to, amount)
	return nil
}

// Mint - create amount of tokens for to, growing the total supply
//
// no authorization is performed, the caller must restrict access
func (l *Ledger) Mint(to account.Identifier, amount int64) error {
	err := l.Update(nil, &to, amount)
	if nil != err {
		return err
	}
	l.emitMint(to, amount)
	return nil
}

// Burn - destroy amount of tokens held by from, shrinking the total
// supply
//
// authorization for from is required
func (l *Ledger) Burn(from account.Identifier, amount int64) error {
	err := l.env.RequireAuth(from)
	if nil != err {
		return err
	}
	err = l.Update(&from, nil, amount)
	if nil != err {
		return err
	}
	l.emitBurn(from, amount)
	return nil
}

// BurnFrom - destroy amount of tokens held by from using spender's
// allowance
//
// authorization for spender is required
func (l *Ledger) BurnFrom(spender account.Identifier, from account.Identifier, amount int64) error {
	err := l.env.RequireAuth(spender)
	if nil != err {
		return err
	}
	err = l.SpendAllowance(from, spender, amount)
	if nil != err {
		return err
	}
	err = l.Update(&from, nil, amount)
	if nil != err {
		return err
	}
	l.emitBurn(from, amount)
	return nil
}
