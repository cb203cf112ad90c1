// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible

import (
	"math"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/constants"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// TotalSupply - the amount of tokens in circulation, zero if no
// supply is recorded
func (l *Ledger) TotalSupply() int64 {
	n, _ := storage.GetN(l.env.Store(), storage.Instance, singletonKey(prefixTotalSupply))
	return int64(n)
}

func (l *Ledger) setTotalSupply(amount int64) {
	storage.PutN(l.env.Store(), storage.Instance, singletonKey(prefixTotalSupply), uint64(amount))
}

// Balance - the amount of tokens held by owner, zero if no balance
// record exists
//
// reading a live balance keeps its record alive
func (l *Ledger) Balance(owner account.Identifier) int64 {
	key := balanceKey(owner)
	n, ok := storage.GetN(l.env.Store(), storage.Persistent, key)
	if !ok {
		return 0
	}
	l.env.Store().ExtendTTL(storage.Persistent, key, constants.BalanceTTLThreshold, constants.BalanceExtendAmount)
	return int64(n)
}

func (l *Ledger) setBalance(owner account.Identifier, amount int64) {
	storage.PutN(l.env.Store(), storage.Persistent, balanceKey(owner), uint64(amount))
}

// Update - transfer amount from one account to another, minting when
// from is nil and burning when to is nil
//
// this is the sole mutator of balances and total supply
func (l *Ledger) Update(from *account.Identifier, to *account.Identifier, amount int64) error {
	if amount < 0 {
		return fault.LessThanZero
	}

	if nil != from {
		fromBalance := l.Balance(*from)
		if fromBalance < amount {
			return fault.InsufficientBalance
		}
		// cannot underflow because of the check above
		l.setBalance(*from, fromBalance-amount)
	} else {
		// minting, the supply grows
		totalSupply := l.TotalSupply()
		if totalSupply > math.MaxInt64-amount {
			return fault.MathOverflow
		}
		l.setTotalSupply(totalSupply + amount)
	}

	if nil != to {
		// cannot overflow because balance + amount is at most total supply
		l.setBalance(*to, l.Balance(*to)+amount)
	} else {
		// burning, the supply shrinks
		//
		// cannot underflow because amount <= from balance <= total supply
		l.setTotalSupply(l.TotalSupply() - amount)
	}

	return nil
}
