// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consecutive

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/nonfungible"
)

// Transfer - move a token from one account to another
//
// authorization for from is required
func (l *Ledger) Transfer(from account.Identifier, to account.Identifier, id nonfungible.TokenID) error {
	err := l.Env().RequireAuth(from)
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
func (l *Ledger) TransferFrom(spender account.Identifier, from account.Identifier, to account.Identifier, id nonfungible.TokenID) error {
	err := l.Env().RequireAuth(spender)
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
func (l *Ledger) Burn(from account.Identifier, id nonfungible.TokenID) error {
	err := l.Env().RequireAuth(from)
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
func (l *Ledger) BurnFrom(spender account.Identifier, from account.Identifier, id nonfungible.TokenID) error {
	err := l.Env().RequireAuth(spender)
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

// Approve - set the approval slot of a token
//
// ownership is resolved through the sparse records, otherwise the
// behaviour matches the base ledger
func (l *Ledger) Approve(approver account.Identifier, approved account.Identifier, id nonfungible.TokenID, liveUntil uint64) error {
	err := l.Env().RequireAuth(approver)
	if nil != err {
		return err
	}
	owner, err := l.OwnerOf(id)
	if nil != err {
		return err
	}
	return l.ApproveForOwner(owner, approver, approved, id, liveUntil)
}

// TokenURI - base URI with the decimal token id appended
//
// the token must currently exist under the sparse ownership rules
func (l *Ledger) TokenURI(id nonfungible.TokenID) (string, error) {
	_, err := l.OwnerOf(id)
	if nil != err {
		return "", err
	}
	metadata, err := l.Metadata()
	if nil != err {
		return "", err
	}
	if "" == metadata.BaseURI {
		return "", nil
	}
	return metadata.BaseURI + id.String(), nil
}
