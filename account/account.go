// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - opaque account identifiers
//
// An account is identified by a fixed length byte string assigned by
// the host environment. The ledger core never inspects the contents,
// it only uses the bytes to build storage keys. The text form is
// base58 for log and JSON output.
package account

import (
	"encoding/json"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/tokenledger/fault"
)

// IdentifierLength - number of bytes in an account identifier
const IdentifierLength = 32

// Identifier - host assigned account identifier
type Identifier [IdentifierLength]byte

// Bytes - byte slice for storage key construction
func (id Identifier) Bytes() []byte {
	return id[:]
}

// String - base58 encoding of the identifier
func (id Identifier) String() string {
	return base58.Encode(id[:])
}

// MarshalText - base58 encoded identifier for JSON
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - decode a base58 identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	buffer, err := base58.Decode(string(s))
	if nil != err {
		return fault.InvalidAccount
	}
	return IdentifierFromBytes(id, buffer)
}

// IdentifierFromBytes - convert a byte slice of the correct length
func IdentifierFromBytes(id *Identifier, buffer []byte) error {
	if IdentifierLength != len(buffer) {
		return fault.InvalidAccount
	}
	copy(id[:], buffer)
	return nil
}

// IdentifierFromString - decode a base58 identifier
func IdentifierFromString(s string) (Identifier, error) {
	var id Identifier
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// ensure the JSON interfaces are satisfied
var _ json.Marshaler = Identifier{}

// MarshalJSON - identifier as a JSON string
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON - identifier from a JSON string
func (id *Identifier) UnmarshalJSON(s []byte) error {
	var text string
	err := json.Unmarshal(s, &text)
	if nil != err {
		return err
	}
	return id.UnmarshalText([]byte(text))
}
