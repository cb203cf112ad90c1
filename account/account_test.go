// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
)

func makeIdentifier(fill byte) account.Identifier {
	var id account.Identifier
	for i := 0; i < account.IdentifierLength; i += 1 {
		id[i] = fill
	}
	return id
}

func TestStringRoundTrip(t *testing.T) {
	id := makeIdentifier(0x42)

	decoded, err := account.IdentifierFromString(id.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, id, decoded, "wrong identifier")
}

func TestFromBytes(t *testing.T) {
	var id account.Identifier

	err := account.IdentifierFromBytes(&id, make([]byte, account.IdentifierLength))
	assert.Nil(t, err, "wrong error")

	err = account.IdentifierFromBytes(&id, make([]byte, 7))
	assert.Equal(t, fault.InvalidAccount, err, "wrong error for short buffer")
}

func TestJSONRoundTrip(t *testing.T) {
	id := makeIdentifier(0x99)

	buffer, err := json.Marshal(id)
	assert.Nil(t, err, "marshal error")

	var decoded account.Identifier
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, id, decoded, "wrong identifier")
}

func TestInvalidBase58(t *testing.T) {
	_, err := account.IdentifierFromString("0OIl+/=")
	assert.Equal(t, fault.InvalidAccount, err, "wrong error")
}
