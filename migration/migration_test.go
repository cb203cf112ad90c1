// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/host"
	"github.com/bitmark-inc/tokenledger/migration"
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

func newTestState() *migration.State {
	clock := host.NewClock(100)
	store := storage.NewMemStore(clock)
	env := host.New(store, clock, host.AuthorizeAll{}, nil)
	return migration.New(env)
}

func TestInitialState(t *testing.T) {
	s := newTestState()

	assert.Equal(t, migration.Initial, s.Current(), "wrong initial state")
	assert.True(t, s.CanMigrate(), "migration not allowed initially")
	assert.False(t, s.CanRollback(), "rollback allowed initially")
}

func TestMigrationCycle(t *testing.T) {
	s := newTestState()

	err := s.CompleteMigration()
	assert.Nil(t, err, "complete migration error")
	assert.Equal(t, migration.Migrated, s.Current(), "wrong state after migration")

	// a migration runs at most once per cycle
	err = s.CompleteMigration()
	assert.Equal(t, fault.MigrationNotAllowed, err, "repeated migration allowed")

	assert.True(t, s.CanRollback(), "rollback not allowed after migration")

	err = s.CompleteRollback()
	assert.Nil(t, err, "complete rollback error")
	assert.Equal(t, migration.RolledBack, s.Current(), "wrong state after rollback")

	err = s.CompleteRollback()
	assert.Equal(t, fault.RollbackNotAllowed, err, "repeated rollback allowed")
	err = s.CompleteMigration()
	assert.Equal(t, fault.MigrationNotAllowed, err, "migration from rolled back state allowed")
}

func TestStartMigrationResets(t *testing.T) {
	s := newTestState()

	err := s.CompleteMigration()
	assert.Nil(t, err, "complete migration error")

	// a new upgrade cycle begins from the initial state
	s.StartMigration()
	assert.Equal(t, migration.Initial, s.Current(), "start migration did not reset")
	assert.True(t, s.CanMigrate(), "migration not allowed after reset")

	err = s.CompleteMigration()
	assert.Nil(t, err, "complete migration error after reset")
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "Initial", migration.Initial.String(), "wrong string")
	assert.Equal(t, "Migrated", migration.Migrated.String(), "wrong string")
	assert.Equal(t, "RolledBack", migration.RolledBack.String(), "wrong string")
	assert.Equal(t, "*Unknown*", migration.Flag(9).String(), "wrong string")
}
