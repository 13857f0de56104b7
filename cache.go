// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

import (
	"container/list"
	"hash/maphash"
	"sync"
)

// Cache bounds and policy defaults (C4).
const (
	defaultCacheEntries = 64 * 1024
	defaultCacheMaxLen  = 64
)

// StringCache is a process-wide bounded interner mapping decoded string
// bytes to a single shared Go string. It is safe for concurrent use: hashing
// happens before the lock is taken, and the critical section is limited to a
// single map probe plus, on a miss, one insert and at most one eviction.
// Hits and misses take the same mutex.
//
// The cache is keyed by the raw decoded bytes, not by any previously
// constructed host string, so a lookup can succeed before the caller builds
// anything durable from the decoded bytes.
type StringCache struct {
	mu       sync.Mutex
	seed     maphash.Seed
	maxLen   int
	capacity int
	table    map[uint64]*list.Element // hash -> LRU node
	order    *list.List               // front = most recently used
}

type cacheEntry struct {
	hash  uint64
	value string
}

// NewStringCache constructs an empty cache with the default entry and
// string-length bounds.
func NewStringCache() *StringCache {
	return &StringCache{
		seed:     maphash.MakeSeed(),
		maxLen:   defaultCacheMaxLen,
		capacity: defaultCacheEntries,
		table:    make(map[uint64]*list.Element),
		order:    list.New(),
	}
}

// globalCache is the default process-wide cache instance consulted by
// decode operations that request interning but were not handed an explicit
// *StringCache.
var globalCache = NewStringCache()

// hashOf computes the table key for raw string bytes.
func (sc *StringCache) hashOf(b []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(sc.seed)
	h.Write(b)
	return h.Sum64()
}

// Intern returns a shared string equal to b, inserting it into the cache if
// it was not already present. Strings longer than the configured maximum
// length bypass the cache entirely and are simply copied.
func (sc *StringCache) Intern(b []byte) string {
	if len(b) > sc.maxLen {
		return string(b)
	}
	h := sc.hashOf(b)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if el, ok := sc.table[h]; ok {
		if entry := el.Value.(*cacheEntry); entry.hash == h && entry.value == string(b) {
			sc.order.MoveToFront(el)
			return entry.value
		}
		// Hash collision between distinct strings: evict the stale entry's
		// list node before inserting the new one, so it never lingers in
		// order unreachable from table (which would let a later eviction
		// delete the wrong hash's live entry).
		sc.order.Remove(el)
		delete(sc.table, h)
	}

	v := string(b)
	entry := &cacheEntry{hash: h, value: v}
	el := sc.order.PushFront(entry)
	sc.table[h] = el

	if sc.order.Len() > sc.capacity {
		oldest := sc.order.Back()
		sc.order.Remove(oldest)
		delete(sc.table, oldest.Value.(*cacheEntry).hash)
	}
	return v
}

// Clear empties the cache.
func (sc *StringCache) Clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.table = make(map[uint64]*list.Element)
	sc.order.Init()
}

// Usage reports the current number of interned entries.
func (sc *StringCache) Usage() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.order.Len()
}

// CacheClear empties the default process-wide string cache.
func CacheClear() { globalCache.Clear() }

// CacheUsage reports the number of entries held in the default process-wide
// string cache.
func CacheUsage() int { return globalCache.Usage() }
