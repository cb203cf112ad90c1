// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// Metadata - display attributes of the collection
type Metadata struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	BaseURI string `json:"base_uri"`
}

// SetMetadata - store the collection display attributes
//
// normally called once when the ledger is constructed
func (l *Ledger) SetMetadata(metadata Metadata) {
	buffer, err := json.Marshal(metadata)
	logger.PanicIfError("nonfungible.SetMetadata", err)
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
	logger.PanicIfError("nonfungible.Metadata", err)
	return metadata, nil
}

// Name - the collection name
func (l *Ledger) Name() (string, error) {
	metadata, err := l.Metadata()
	return metadata.Name, err
}

// Symbol - the collection symbol
func (l *Ledger) Symbol() (string, error) {
	metadata, err := l.Metadata()
	return metadata.Symbol, err
}

// TokenURI - base URI with the decimal token id appended
//
// the token must currently exist
func (l *Ledger) TokenURI(id TokenID) (string, error) {
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
