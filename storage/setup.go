// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
)

// one pool per tier plus the live-until index
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Instance   *poolHandle `prefix:"I"`
	Persistent *poolHandle `prefix:"P"`
	Temporary  *poolHandle `prefix:"T"`
	LiveUntil  *poolHandle `prefix:"X"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentStoreVersion = 0x100

// LevelStore - LevelDB backed tiered store
type LevelStore struct {
	sync.RWMutex
	clock  Clock
	db     *leveldb.DB
	access Access
	pool   pools
	log    *logger.L
}

// NewLevelStore - open up the database connection
//
// the store appends its own suffix to the database path so several
// stores can share a configuration directory
func NewLevelStore(clock Clock, database string) (*LevelStore, error) {

	name := database + "-ledger.leveldb"

	db, version, err := getDB(name, false)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentStoreVersion {
		db.Close()
		return nil, fmt.Errorf("ledger database version: %d > current version: %d", version, currentStoreVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(db, currentStoreVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	s := &LevelStore{
		clock:  clock,
		db:     db,
		access: newAccess(db),
		log:    logger.New("storage"),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			db.Close()
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &poolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return s, nil
}

// Close - close the database connection
func (s *LevelStore) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Begin - start a batched transaction
func (s *LevelStore) Begin() error {
	return s.access.Begin()
}

// Commit - atomically flush all pending writes
func (s *LevelStore) Commit() error {
	return s.access.Commit()
}

// Abort - discard all pending writes
func (s *LevelStore) Abort() {
	s.access.Abort()
}

func (s *LevelStore) tierPool(tier Tier) *poolHandle {
	switch tier {
	case Instance:
		return s.pool.Instance
	case Persistent:
		return s.pool.Persistent
	case Temporary:
		return s.pool.Temporary
	default:
		logger.Panicf("storage: invalid tier: %d", tier)
		return nil
	}
}

// key into the live-until pool: tier prefix ++ key
func (s *LevelStore) ttlKey(tier Tier, key []byte) []byte {
	ttlKey := make([]byte, 1, len(key)+1)
	ttlKey[0] = s.tierPool(tier).prefix
	return append(ttlKey, key...)
}

// read the live-until tick, zero and false when no record
func (s *LevelStore) liveUntil(tier Tier, key []byte) (uint64, bool) {
	buffer := s.pool.LiveUntil.get(s.ttlKey(tier, key))
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("storage: truncated live-until record for: %x", key)
	}
	return binary.BigEndian.Uint64(buffer), true
}

func (s *LevelStore) putLiveUntil(tier Tier, key []byte, liveUntil uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, liveUntil)
	s.pool.LiveUntil.put(s.ttlKey(tier, key), buffer)
}

// a record is live through its live-until tick inclusive
func (s *LevelStore) expired(tier Tier, key []byte) bool {
	if Instance == tier {
		return false
	}
	liveUntil, ok := s.liveUntil(tier, key)
	if !ok {
		// records without a live-until entry predate the clock,
		// treat as still alive rather than lose data
		return false
	}
	return liveUntil < s.clock.CurrentTick()
}

// Get - fetch a record, nil if missing or expired
func (s *LevelStore) Get(tier Tier, key []byte) []byte {
	s.RLock()
	defer s.RUnlock()

	if s.expired(tier, key) {
		return nil
	}
	return s.tierPool(tier).get(key)
}

// Put - store a record, assigning the tier's initial lifetime
func (s *LevelStore) Put(tier Tier, key []byte, value []byte) {
	s.Lock()
	defer s.Unlock()

	s.tierPool(tier).put(key, value)

	switch tier {
	case Persistent:
		s.putLiveUntil(tier, key, s.clock.CurrentTick()+InitialPersistentLifetime)
	case Temporary:
		s.putLiveUntil(tier, key, s.clock.CurrentTick()+InitialTemporaryLifetime)
	}
}

// Delete - remove a record and its live-until entry
func (s *LevelStore) Delete(tier Tier, key []byte) {
	s.Lock()
	defer s.Unlock()

	s.tierPool(tier).remove(key)
	if Instance != tier {
		s.pool.LiveUntil.remove(s.ttlKey(tier, key))
	}
}

// Has - check a record exists and is not expired
func (s *LevelStore) Has(tier Tier, key []byte) bool {
	s.RLock()
	defer s.RUnlock()

	if s.expired(tier, key) {
		return false
	}
	return s.tierPool(tier).has(key)
}

// ExtendTTL - raise the remaining lifetime of a live record
//
// no-op for the instance tier and for missing or expired records
func (s *LevelStore) ExtendTTL(tier Tier, key []byte, threshold uint64, extendTo uint64) {
	if Instance == tier {
		return
	}

	s.Lock()
	defer s.Unlock()

	liveUntil, ok := s.liveUntil(tier, key)
	current := s.clock.CurrentTick()
	if !ok || liveUntil < current {
		return
	}

	remaining := liveUntil - current
	if remaining < threshold {
		newLiveUntil := current + extendTo
		if max := s.clock.MaxAllowedTick(); newLiveUntil > max {
			newLiveUntil = max
		}
		if newLiveUntil > liveUntil {
			s.putLiveUntil(tier, key, newLiveUntil)
		}
	}
}

// Sweep - physically remove all expired records
//
// scans the live-until pool and deletes each expired record together
// with its live-until entry, committed as a single batch
func (s *LevelStore) Sweep() error {
	s.Lock()
	defer s.Unlock()

	current := s.clock.CurrentTick()
	batch := new(leveldb.Batch)

	iter := s.access.Iterator(s.pool.LiveUntil.keyRange())
	for iter.Next() {
		if 8 != len(iter.Value()) {
			logger.Panicf("storage: truncated live-until record for: %x", iter.Key())
		}
		liveUntil := binary.BigEndian.Uint64(iter.Value())
		if liveUntil >= current {
			continue
		}

		// iter.Key() = X ++ tier ++ key, the data key is tier ++ key
		dataKey := make([]byte, len(iter.Key())-1)
		copy(dataKey, iter.Key()[1:])

		ttlKey := make([]byte, len(iter.Key()))
		copy(ttlKey, iter.Key())

		batch.Delete(dataKey)
		batch.Delete(ttlKey)
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return err
	}

	return s.db.Write(batch, nil)
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
