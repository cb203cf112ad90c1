// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/host"
	"github.com/bitmark-inc/tokenledger/storage"
)

func makeAccount(seed byte) account.Identifier {
	var id account.Identifier
	for i := range id {
		id[i] = seed
	}
	return id
}

func TestClock(t *testing.T) {
	clock := host.NewClock(100)
	assert.Equal(t, uint64(100), clock.CurrentTick(), "wrong initial tick")
	assert.True(t, clock.MaxAllowedTick() > clock.CurrentTick(), "max tick not beyond current")

	clock.Advance(50)
	assert.Equal(t, uint64(150), clock.CurrentTick(), "wrong tick after advance")

	// the clock never moves backwards
	clock.Set(10)
	assert.Equal(t, uint64(150), clock.CurrentTick(), "clock moved backwards")

	clock.Set(1000)
	assert.Equal(t, uint64(1000), clock.CurrentTick(), "wrong tick after set")

	// the maximum allowed tick advances with the clock
	assert.True(t, clock.MaxAllowedTick() > uint64(1000), "max tick did not advance")
}

func TestEnvAuth(t *testing.T) {
	clock := host.NewClock(100)
	store := storage.NewMemStore(clock)
	alice := makeAccount(1)

	env := host.New(store, clock, host.AuthorizeAll{}, nil)
	assert.Nil(t, env.RequireAuth(alice), "authorize all rejected")

	env = host.New(store, clock, host.AuthorizeNone{}, nil)
	assert.Equal(t, fault.NotAuthorised, env.RequireAuth(alice), "authorize none accepted")
}

func TestEnvMockAuth(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	clock := host.NewClock(100)
	store := storage.NewMemStore(clock)
	alice := makeAccount(1)
	bob := makeAccount(2)

	auth := host.NewMockAuthorizer(ctl)
	auth.EXPECT().RequireAuth(alice).Return(nil).Times(1)
	auth.EXPECT().RequireAuth(bob).Return(fault.NotAuthorised).Times(1)

	env := host.New(store, clock, auth, nil)
	assert.Nil(t, env.RequireAuth(alice), "valid proof rejected")
	assert.Equal(t, fault.NotAuthorised, env.RequireAuth(bob), "invalid proof accepted")
}

func TestRecorder(t *testing.T) {
	clock := host.NewClock(100)
	store := storage.NewMemStore(clock)
	recorder := new(host.Recorder)

	env := host.New(store, clock, host.AuthorizeAll{}, recorder)
	env.Emit(host.Event{
		Topics: []interface{}{"transfer"},
		Data:   []interface{}{int64(5)},
	})

	events := recorder.Events()
	assert.Equal(t, 1, len(events), "wrong event count")
	assert.Equal(t, "transfer", events[0].Topics[0], "wrong event topic")

	// a nil emitter discards events without panicking
	env = host.New(store, clock, host.AuthorizeAll{}, nil)
	env.Emit(host.Event{Topics: []interface{}{"mint"}})
}
