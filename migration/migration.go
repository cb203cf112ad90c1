// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package migration - upgrade state tracking for a ledger's stored
// data
//
// A single instance tier record gates data migration after a code
// upgrade. Migration is only allowed from the initial state and
// rollback only after a completed migration, so each can run at most
// once per upgrade cycle.
package migration

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/host"
	"github.com/bitmark-inc/tokenledger/storage"
)

// Flag - the upgrade state of the stored data
type Flag uint8

// possible states
const (
	Initial Flag = iota
	Migrated
	RolledBack
)

// Z - upgrade state record (instance)
var stateKey = []byte{'Z'}

// State - upgrade state bound to a host environment
type State struct {
	env *host.Env
	log *logger.L
}

// New - create an upgrade state tracker bound to a host environment
func New(env *host.Env) *State {
	return &State{
		env: env,
		log: logger.New("migration"),
	}
}

// String - printable form of a flag
func (f Flag) String() string {
	switch f {
	case Initial:
		return "Initial"
	case Migrated:
		return "Migrated"
	case RolledBack:
		return "RolledBack"
	default:
		return "*Unknown*"
	}
}

// Current - the stored upgrade state, an absent record is Initial
func (s *State) Current() Flag {
	buffer := s.env.Store().Get(storage.Instance, stateKey)
	if nil == buffer || 1 != len(buffer) {
		return Initial
	}
	return Flag(buffer[0])
}

func (s *State) set(flag Flag) {
	s.env.Store().Put(storage.Instance, stateKey, []byte{byte(flag)})
	s.log.Infof("state changed to: %s", flag)
}

// StartMigration - reset the state to Initial, beginning a new
// migration cycle
func (s *State) StartMigration() {
	s.set(Initial)
}

// CanMigrate - true only in the Initial state
func (s *State) CanMigrate() bool {
	return Initial == s.Current()
}

// CanRollback - true only after a completed migration
func (s *State) CanRollback() bool {
	return Migrated == s.Current()
}

// CompleteMigration - record that the data migration has run
func (s *State) CompleteMigration() error {
	if !s.CanMigrate() {
		return fault.MigrationNotAllowed
	}
	s.set(Migrated)
	return nil
}

// CompleteRollback - record that the migration has been rolled back
func (s *State) CompleteRollback() error {
	if !s.CanRollback() {
		return fault.RollbackNotAllowed
	}
	s.set(RolledBack)
	return nil
}
