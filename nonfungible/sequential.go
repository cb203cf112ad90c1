// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible

import (
	"math"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// NextTokenID - the id the counter will hand out next
func (l *Ledger) NextTokenID() TokenID {
	n, _ := storage.GetN(l.env.Store(), storage.Instance, singletonKey(prefixTokenCounter))
	return TokenID(n)
}

// IncrementTokenID - advance the token id counter by amount and
// return its previous value, which is the first id of the reserved
// range
func (l *Ledger) IncrementTokenID(amount uint64) (TokenID, error) {
	current := l.NextTokenID()
	if uint64(current) > math.MaxUint64-amount {
		return 0, fault.MathOverflow
	}
	storage.PutN(l.env.Store(), storage.Instance, singletonKey(prefixTokenCounter), uint64(current)+amount)
	return current, nil
}
