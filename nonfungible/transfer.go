// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible

import (
	"github.com/bitmark-inc/tokenledger/account"
)

// Transfer - move a token from one account to another
//
// authorization for from is required
func (l *Ledger) Transfer(from account.Identifier, to account.Identifier, id TokenID) error {
	err := l.env.RequireAuth(from)
	if nil != err {
		return err
	}
	err = l.Update(&from, &to, id)
	if nil != err {
		return err
	}
	l.emitTransfer(from, to, id)
	return nil
}

// TransferFrom - move a token on behalf of its owner using the
// approval mechanism
//
// authorization for spender is required
func (l *Ledger) TransferFrom(spender account.Identifier, from account.Identifier, to account.Identifier, id TokenID) error {
	err := l.env.RequireAuth(spender)
	if nil != err {
		return err
	}
	err = l.CheckSpenderApproval(spender, from, id)
	if nil != err {
		return err
	}
	err = l.Update(&from, &to, id)
	if nil != err {
		return err
	}
	l.emitTransfer(from, to, id)
	return nil
}

// Burn - destroy a token held by from
//
// authorization for from is required
func (l *Ledger) Burn(from account.Identifier, id TokenID) error {
	err := l.env.RequireAuth(from)
	if nil != err {
		return err
	}
	err = l.Update(&from, nil, id)
	if nil != err {
		return err
	}
	l.emitBurn(from, id)
	return nil
}

// BurnFrom - destroy a token on behalf of its owner using the
// approval mechanism
//
// authorization for spender is required
func (l *Ledger) BurnFrom(spender account.Identifier, from account.Identifier, id TokenID) error {
	err := l.env.RequireAuth(spender)
	if nil != err {
		return err
	}
	err = l.CheckSpenderApproval(spender, from, id)
	if nil != err {
		return err
	}
	err = l.Update(&from, nil, id)
	if nil != err {
		return err
	}
	l.emitBurn(from, id)
	return nil
}
