// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
)

// AuthorizeAll - accepts every authorization request
//
// for simulations where the host has already verified the proofs
type AuthorizeAll struct{}

// RequireAuth - always succeeds
func (AuthorizeAll) RequireAuth(account.Identifier) error {
	return nil
}

// AuthorizeNone - rejects every authorization request
type AuthorizeNone struct{}

// RequireAuth - always fails
func (AuthorizeNone) RequireAuth(account.Identifier) error {
	return fault.NotAuthorised
}
