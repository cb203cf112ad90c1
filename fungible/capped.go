// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// SetCap - set the maximum supply of tokens
//
// normally called once when the ledger is constructed
func (l *Ledger) SetCap(cap int64) error {
	if cap < 0 {
		return fault.InvalidCap
	}
	storage.PutN(l.env.Store(), storage.Instance, singletonKey(prefixCap), uint64(cap))
	return nil
}

// Cap - the maximum supply of tokens
func (l *Ledger) Cap() (int64, error) {
	n, ok := storage.GetN(l.env.Store(), storage.Instance, singletonKey(prefixCap))
	if !ok {
		return 0, fault.CapNotSet
	}
	return int64(n), nil
}

// CheckCap - ensure that minting amount more tokens will not push
// the total supply beyond the cap
func (l *Ledger) CheckCap(amount int64) error {
	cap, err := l.Cap()
	if nil != err {
		return err
	}
	if cap < amount+l.TotalSupply() {
		return fault.ExceededCap
	}
	return nil
}

// MintCapped - mint with the cap enforced
func (l *Ledger) MintCapped(to account.Identifier, amount int64) error {
	err := l.CheckCap(amount)
	if nil != err {
		return err
	}
	return l.Mint(to, amount)
}
