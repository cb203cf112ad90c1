// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fungible_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fungible"
	"github.com/bitmark-inc/tokenledger/host"
	"github.com/bitmark-inc/tokenledger/storage"
)

const testingDirName = "testing"

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

// a fresh ledger over an in-memory store with all proofs accepted
func newTestLedger() (*fungible.Ledger, *host.Clock, *host.Recorder) {
	clock := host.NewClock(100)
	store := storage.NewMemStore(clock)
	recorder := new(host.Recorder)
	env := host.New(store, clock, host.AuthorizeAll{}, recorder)
	return fungible.New(env), clock, recorder
}

func makeAccount(seed byte) account.Identifier {
	var id account.Identifier
	for i := range id {
		id[i] = seed
	}
	return id
}

var (
	alice = makeAccount(1)
	bob   = makeAccount(2)
	carol = makeAccount(3)
)
