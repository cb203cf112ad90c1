// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - the execution environment surrounding the ledgers
//
// The host serialises invocations, commits or aborts all writes of an
// invocation atomically and verifies authorization proofs. The ledger
// core only sees this package: a tiered store, a logical clock, an
// authorizer and a best-effort event sink.
package host

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/storage"
)

// Authorizer - verify that the caller can act for an account
//
// RequireAuth returns nil when the proof is valid, any error aborts
// the invocation
type Authorizer interface {
	RequireAuth(id account.Identifier) error
}

// Event - structured notification, not read back by the core
type Event struct {
	Topics []interface{}
	Data   []interface{}
}

// Emitter - best-effort event sink
type Emitter interface {
	Emit(event Event)
}

// Env - everything a ledger needs from the host
type Env struct {
	store  storage.Store
	clock  storage.Clock
	auth   Authorizer
	events Emitter
}

// New - bind the host facilities together
//
// a nil emitter discards all events
func New(store storage.Store, clock storage.Clock, auth Authorizer, events Emitter) *Env {
	if nil == events {
		events = discard{}
	}
	return &Env{
		store:  store,
		clock:  clock,
		auth:   auth,
		events: events,
	}
}

// Store - the tiered key-value store
func (e *Env) Store() storage.Store {
	return e.store
}

// CurrentTick - the current ledger sequence number
func (e *Env) CurrentTick() uint64 {
	return e.clock.CurrentTick()
}

// MaxAllowedTick - the highest tick any record may live until
func (e *Env) MaxAllowedTick() uint64 {
	return e.clock.MaxAllowedTick()
}

// RequireAuth - abort the invocation unless the caller proves
// authority over the account
func (e *Env) RequireAuth(id account.Identifier) error {
	return e.auth.RequireAuth(id)
}

// Emit - send a structured notification
func (e *Env) Emit(event Event) {
	e.events.Emit(event)
}

// discards all events
type discard struct{}

func (discard) Emit(Event) {}
