// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - batched access to the underlying database
//
// writes accumulate in a batch and become visible to readers through
// the write-through cache, Commit flushes the batch atomically
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// cache entry operations
const (
	dbPut = iota
	dbDelete
)

const (
	cacheCleanupInterval = 1 * time.Minute
	cacheExpiration      = 2 * time.Minute
)

// pending write recorded in the cache
type cachedWrite struct {
	op    int
	value []byte
}

// write-through cache in front of the batch so that reads inside an
// open transaction observe their own writes
type writeCache struct {
	c *cache.Cache
}

func newWriteCache() *writeCache {
	return &writeCache{
		c: cache.New(cacheCleanupInterval, cacheExpiration),
	}
}

func (w *writeCache) set(op int, key []byte, value []byte) {
	w.c.Set(string(key), cachedWrite{op: op, value: value}, cacheExpiration)
}

// second value is false when the key is not cached or was deleted
func (w *writeCache) get(key []byte) ([]byte, bool) {
	obj, found := w.c.Get(string(key))
	if !found {
		return nil, false
	}
	write := obj.(cachedWrite)
	if dbDelete == write.op {
		return nil, false
	}
	return write.value, true
}

// true when a delete for the key is pending
func (w *writeCache) deleted(key []byte) bool {
	obj, found := w.c.Get(string(key))
	if !found {
		return false
	}
	return dbDelete == obj.(cachedWrite).op
}

func (w *writeCache) clear() {
	w.c.Flush()
}

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache *writeCache
}

func newAccess(db *leveldb.DB) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: newWriteCache(),
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fmt.Errorf("batch already in use")
	}

	d.inUse = true
	return nil
}

func (d *accessData) Put(key []byte, value []byte) {
	d.cache.set(dbPut, key, value)
	d.batch.Put(key, value)
}

func (d *accessData) Delete(key []byte) {
	d.cache.set(dbDelete, key, []byte{})
	d.batch.Delete(key)
}

func (d *accessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	if nil != err {
		return err
	}
	d.batch.Reset()
	d.cache.clear()
	d.inUse = false
	return nil
}

func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.clear()
	d.inUse = false
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	if value, found := d.cache.get(key); found {
		return value, nil
	}
	if d.cache.deleted(key) {
		return nil, leveldb.ErrNotFound
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	if _, found := d.cache.get(key); found {
		return true, nil
	}
	if d.cache.deleted(key) {
		return false, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
