// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

// LogEmitter - writes events to a logger channel
type LogEmitter struct {
	log *logger.L
}

// NewLogEmitter - emitter on its own logger channel
func NewLogEmitter(tag string) *LogEmitter {
	return &LogEmitter{
		log: logger.New(tag),
	}
}

// Emit - log the event
func (l *LogEmitter) Emit(event Event) {
	l.log.Infof("event: topics: %v  data: %v", event.Topics, event.Data)
}

// Recorder - captures events for test assertions
type Recorder struct {
	sync.Mutex
	events []Event
}

// Emit - record the event
func (r *Recorder) Emit(event Event) {
	r.Lock()
	r.events = append(r.events, event)
	r.Unlock()
}

// Events - all events emitted so far
func (r *Recorder) Events() []Event {
	r.Lock()
	defer r.Unlock()

	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}
