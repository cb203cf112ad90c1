// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// Metadata - display attributes of the token
type Metadata struct {
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
}

// SetMetadata - store the token display attributes
//
// normally called once when the ledger is constructed
func (l *Ledger) SetMetadata(metadata Metadata) {
	buffer, err := json.Marshal(metadata)
	logger.PanicIfError("fungible.SetMetadata", err)
	l.env.Store().Put(storage.Instance, singletonKey(prefixMetadata), buffer)
}

// Metadata - the stored display attributes
func (l *Ledger) Metadata() (Metadata, error) {
	buffer := l.env.Store().Get(storage.Instance, singletonKey(prefixMetadata))
	if nil == buffer {
		return Metadata{}, fault.UnsetMetadata
	}
	var metadata Metadata
	err := json.Unmarshal(buffer, &metadata)
	logger.PanicIfError("fungible.Metadata", err)
	return metadata, nil
}

// Decimals - number of decimals used to display amounts
func (l *Ledger) Decimals() (uint32, error) {
	metadata, err := l.Metadata()
	return metadata.Decimals, err
}

// Name - the token name
func (l *Ledger) Name() (string, error) {
	metadata, err := l.Metadata()
	return metadata.Name, err
}

// Symbol - the token symbol
func (l *Ledger) Symbol() (string, error) {
	metadata, err := l.Metadata()
	return metadata.Symbol, err
}
